package pricing

import (
	"context"
	"time"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/provider"
	"github.com/rs/zerolog"
)

const (
	ServiceName   = "Azure App Service"
	HoursPerMonth = 24 * 30
	BaseCurrency  = "USD"
)

type service struct {
	source provider.PriceSource
	logger zerolog.Logger
	now    func() time.Time
}

type PricingService interface {
	Resolve(ctx context.Context, region, currency string) (model.PricingTable, error)
	ResolveSKU(ctx context.Context, sku, region, currency string) (model.PricingEntry, error)
}

// skuInfo describes one internal App Service SKU.
type skuInfo struct {
	Name       string
	Tier       string
	Aliases    []string
	MinMonthly float64
	MaxMonthly float64
	StaticUSD  float64
}

func (s skuInfo) hasBand() bool {
	return s.MaxMonthly > 0
}
