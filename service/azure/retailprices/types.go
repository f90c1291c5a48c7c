package azureretailprices

import (
	"net/http"
	"time"

	"github.com/elC0mpa/azure-advisor/model"
)

const (
	DefaultEndpoint = "https://prices.azure.com/api/retail/prices"
	DefaultMaxPages = 20
	DefaultTimeout  = 30 * time.Second
)

type service struct {
	endpoint string
	maxPages int
	client   *http.Client
}

type Options struct {
	Endpoint string
	MaxPages int
	Timeout  time.Duration
}

type retailPriceResponse struct {
	BillingCurrency string                  `json:"BillingCurrency"`
	Items           []model.RetailPriceItem `json:"Items"`
	NextPageLink    string                  `json:"NextPageLink"`
	Count           int                     `json:"Count"`
}
