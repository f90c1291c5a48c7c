package model

import "time"

type PriceSource string

const (
	PriceSourceLive   PriceSource = "live"
	PriceSourceStatic PriceSource = "static"
)

type Provenance string

const (
	ProvenanceLive     Provenance = "live"
	ProvenanceFallback Provenance = "fallback"
)

type PricingEntry struct {
	SKU              string      `json:"sku"`
	Tier             string      `json:"tier"`
	MonthlyPrice     float64     `json:"price"`
	HourlyPrice      float64     `json:"hourly_price"`
	Currency         string      `json:"currency"`
	Region           string      `json:"region"`
	Source           PriceSource `json:"source"`
	MeterName        string      `json:"meter_name,omitempty"`
	ProductName      string      `json:"product_name,omitempty"`
	OriginalUSDPrice float64     `json:"original_usd_price"`
	UpdatedAt        time.Time   `json:"last_updated"`
}

type PricingTable struct {
	Region     string                  `json:"region"`
	Currency   string                  `json:"currency"`
	Provenance Provenance              `json:"source"`
	Entries    map[string]PricingEntry `json:"pricing"`
	UpdatedAt  time.Time               `json:"updated_at"`
}

// RetailPriceItem is one line item of the live price list.
type RetailPriceItem struct {
	CurrencyCode  string  `json:"currencyCode"`
	RetailPrice   float64 `json:"retailPrice"`
	UnitPrice     float64 `json:"unitPrice"`
	ArmRegionName string  `json:"armRegionName"`
	MeterName     string  `json:"meterName"`
	ProductName   string  `json:"productName"`
	SkuName       string  `json:"skuName"`
	ServiceName   string  `json:"serviceName"`
	UnitOfMeasure string  `json:"unitOfMeasure"`
	Type          string  `json:"type"`
	ArmSkuName    string  `json:"armSkuName"`
}
