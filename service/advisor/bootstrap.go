package advisor

import (
	"github.com/elC0mpa/azure-advisor/config"
	"github.com/elC0mpa/azure-advisor/service/azure"
	azureretailprices "github.com/elC0mpa/azure-advisor/service/azure/retailprices"
	"github.com/elC0mpa/azure-advisor/service/provider"
	"github.com/rs/zerolog"
)

// NewFromConfig wires the advisor against live Azure clients. An offline
// pricing config leaves the price source nil so every table is static.
func NewFromConfig(cfg *config.Config, logger zerolog.Logger) *service {
	var priceSource provider.PriceSource
	if !cfg.Pricing.Offline {
		priceSource = azureretailprices.NewService(azureretailprices.Options{
			Endpoint: cfg.Pricing.Endpoint,
			MaxPages: cfg.Pricing.MaxPages,
			Timeout:  cfg.Pricing.Timeout,
		})
	}

	return NewService(Options{
		Factory:            azure.NewFactory(),
		PriceSource:        priceSource,
		Scan:               cfg.Scan(),
		MonitorRPS:         cfg.Monitor.RequestsPerSecond,
		RemediationTimeout: cfg.Remediation.Timeout,
		Logger:             logger,
	})
}
