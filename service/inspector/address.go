package inspector

import (
	"context"
	"fmt"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/provider"
	"github.com/rs/zerolog"
)

func NewUnattachedAddressInspector(logger zerolog.Logger) *UnattachedAddressInspector {
	return &UnattachedAddressInspector{
		logger: logger.With().Str("inspector", "idle-address").Logger(),
	}
}

func (i *UnattachedAddressInspector) Name() string             { return "idle-address" }
func (i *UnattachedAddressInspector) Category() model.Category { return model.CategoryIdleAddress }

// Inspect flags every public IP without an IP configuration. The monthly
// cost is a flat configured figure.
func (i *UnattachedAddressInspector) Inspect(ctx context.Context, clients *provider.Clients, cfg model.ScanConfig) ([]model.Finding, error) {
	addresses, err := clients.Network.ListPublicIPs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list public ip addresses: %w", err)
	}

	cost := cfg.PublicIP.MonthlyCostUSD
	if cost <= 0 {
		cost = model.DefaultPublicIPMonthlyUSD
	}

	var findings []model.Finding
	for _, address := range addresses {
		if address.Attached() {
			continue
		}
		i.logger.Debug().Str("resource_id", address.Descriptor.ID).Msg("unattached public ip")
		findings = append(findings, model.UnattachedAddressFinding{
			Address:        address,
			MonthlyCostUSD: cost,
		})
	}

	return findings, nil
}
