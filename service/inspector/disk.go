package inspector

import (
	"context"
	"fmt"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/provider"
	"github.com/rs/zerolog"
)

func NewUnattachedDiskInspector(logger zerolog.Logger) *UnattachedDiskInspector {
	return &UnattachedDiskInspector{
		logger: logger.With().Str("inspector", "unattached-disk").Logger(),
	}
}

func (i *UnattachedDiskInspector) Name() string             { return "unattached-disk" }
func (i *UnattachedDiskInspector) Category() model.Category { return model.CategoryUnattachedDisk }

func (i *UnattachedDiskInspector) Inspect(ctx context.Context, clients *provider.Clients, cfg model.ScanConfig) ([]model.Finding, error) {
	disks, err := clients.Compute.ListUnattachedDisks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unattached disks: %w", err)
	}

	var findings []model.Finding
	for _, disk := range disks {
		findings = append(findings, model.UnattachedDiskFinding{
			Disk:           disk,
			MonthlyCostUSD: DiskMonthlyCost(disk, cfg.Disk),
		})
	}

	return findings, nil
}

// DiskMonthlyCost estimates the monthly cost of a disk from its size and the
// per-GB rate of its SKU. Unknown SKUs fall back to the Standard_LRS rate.
func DiskMonthlyCost(disk model.Disk, cfg model.DiskConfig) float64 {
	rate, ok := cfg.MonthlyUSDPerGB[disk.SKU]
	if !ok {
		rate = cfg.MonthlyUSDPerGB["Standard_LRS"]
	}
	return float64(disk.SizeGB) * rate
}
