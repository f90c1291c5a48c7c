package normalizer

import (
	"fmt"
	"strings"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/pricing"
	"github.com/elC0mpa/azure-advisor/telemetry"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// New returns a normalizer reporting savings in currency. An unsupported
// currency falls back to USD.
func New(currency string, logger zerolog.Logger) *normalizer {
	logger = logger.With().Str("component", "normalizer").Logger()

	currency = strings.ToUpper(currency)
	if _, err := pricing.Convert(1, pricing.BaseCurrency, currency); err != nil || currency == "" {
		if currency != "" {
			logger.Warn().Str("currency", currency).Msg("unsupported currency, reporting savings in USD")
		}
		currency = pricing.BaseCurrency
	}

	return &normalizer{currency: currency, logger: logger}
}

// RecommendationID is stable for one resource within one category.
func RecommendationID(category model.Category, resourceID string) string {
	return uuid.NewSHA1(recommendationNamespace, []byte(string(category)+"|"+strings.ToLower(resourceID))).String()
}

// NormalizeAll converts findings, dropping any whose resource id does not
// parse. Duplicate ids are collapsed.
func (n *normalizer) NormalizeAll(findings []model.Finding) []model.Recommendation {
	seen := make(map[string]bool, len(findings))
	recs := make([]model.Recommendation, 0, len(findings))

	for _, finding := range findings {
		rec, err := n.Normalize(finding)
		if err != nil {
			n.logger.Warn().
				Err(err).
				Str("category", string(finding.FindingCategory())).
				Msg("dropping finding")
			telemetry.FindingsDroppedTotal.WithLabelValues(string(finding.FindingCategory())).Inc()
			continue
		}
		if seen[rec.ID] {
			continue
		}
		seen[rec.ID] = true
		recs = append(recs, rec)
	}

	return recs
}

func (n *normalizer) Normalize(finding model.Finding) (model.Recommendation, error) {
	d, err := model.ParseResourceID(finding.Resource().ID)
	if err != nil {
		return model.Recommendation{}, err
	}
	// keep the enriched fields of the inspector's descriptor
	src := finding.Resource()
	d.DisplayName, d.Location = src.DisplayName, src.Location

	var rec model.Recommendation
	switch f := finding.(type) {
	case model.IdleVMFinding:
		rec = n.idleVM(d, f)
	case model.UnattachedAddressFinding:
		rec = n.unattachedAddress(d, f)
	case model.IdlePlanFinding:
		rec = n.idlePlan(d, f)
	case model.UnattachedDiskFinding:
		rec = n.unattachedDisk(d, f)
	default:
		return model.Recommendation{}, fmt.Errorf("unsupported finding type %T", finding)
	}

	rec.ID = RecommendationID(rec.Category, d.ID)
	rec.Name = d.Name
	rec.ImpactedField = d.FullType()
	rec.ImpactedValue = d.Name
	rec.ResourceMetadata = model.ResourceMetadata{
		ResourceID:    d.ID,
		Source:        Source,
		Location:      d.Location,
		ResourceGroup: d.ResourceGroup,
	}
	return rec, nil
}

func (n *normalizer) idleVM(d model.ResourceDescriptor, f model.IdleVMFinding) model.Recommendation {
	vm := f.VM
	return model.Recommendation{
		Category:          model.CategoryIdleVM,
		Impact:            model.ImpactHigh,
		Problem:           fmt.Sprintf("Virtual machine '%s' averaged %.2f%% CPU over the last %d days", d.Name, vm.CPUAverage, vm.DaysAnalyzed),
		Solution:          "Deallocate the virtual machine or resize it to a smaller size",
		PotentialBenefits: "Compute charges stop while the machine is deallocated",
		Currency:          n.currency,
		ExtendedProperties: map[string]any{
			"vm_size":         vm.Size,
			"cpu_average":     vm.CPUAverage,
			"cpu_threshold":   vm.CPUThreshold,
			"days_analyzed":   vm.DaysAnalyzed,
			"samples":         vm.Samples,
			"telemetry_known": vm.TelemetryKnown,
		},
		ActionDetails: model.ActionDetails{
			Action:               "deallocate",
			ResourceType:         "virtual_machine",
			EstimatedTimeMinutes: 5,
			RiskLevel:            "Medium",
			Automated:            true,
		},
	}
}

func (n *normalizer) unattachedAddress(d model.ResourceDescriptor, f model.UnattachedAddressFinding) model.Recommendation {
	savings := n.convert(f.MonthlyCostUSD)
	return model.Recommendation{
		Category:                model.CategoryIdleAddress,
		Impact:                  model.ImpactMedium,
		Problem:                 fmt.Sprintf("Public IP address '%s' is not attached to any resource", d.Name),
		Solution:                "Delete the unused public IP address or attach it to a resource",
		PotentialBenefits:       n.benefits(savings),
		EstimatedMonthlySavings: savings,
		Currency:                n.currency,
		ExtendedProperties: map[string]any{
			"ip_address":                 f.Address.IPAddress,
			"allocation_method":          f.Address.AllocationMethod,
			"sku":                        f.Address.SKU,
			"estimated_monthly_cost_usd": f.MonthlyCostUSD,
		},
		ActionDetails: model.ActionDetails{
			Action:               "delete",
			ResourceType:         "public_ip",
			EstimatedTimeMinutes: 2,
			RiskLevel:            "Low",
			Automated:            true,
		},
	}
}

func (n *normalizer) idlePlan(d model.ResourceDescriptor, f model.IdlePlanFinding) model.Recommendation {
	savings := n.convert(f.Estimate.OriginalUSDPrice)
	return model.Recommendation{
		Category:                model.CategoryIdleServicePlan,
		Impact:                  model.ImpactHigh,
		Problem:                 fmt.Sprintf("App Service plan '%s' hosts no applications", d.Name),
		Solution:                fmt.Sprintf("Move the plan to the %s (%s) tier or delete it", f.TargetSKU, f.TargetTier),
		PotentialBenefits:       n.benefits(savings),
		EstimatedMonthlySavings: savings,
		Currency:                n.currency,
		ExtendedProperties: map[string]any{
			"current_sku":                f.Plan.SKU.Name,
			"current_tier":               f.Plan.SKU.Tier,
			"recommended_sku":            f.TargetSKU,
			"recommended_tier":           f.TargetTier,
			"apps_count":                 f.AppCount,
			"estimated_monthly_cost_usd": f.Estimate.OriginalUSDPrice,
			"price_source":               string(f.Estimate.Source),
			"optimization_type":          "sku_downgrade",
		},
		ActionDetails: model.ActionDetails{
			Action:               "update_sku",
			ResourceType:         "app_service_plan",
			TargetSKU:            f.TargetSKU,
			TargetTier:           f.TargetTier,
			EstimatedTimeMinutes: 5,
			RiskLevel:            "Low",
			Automated:            true,
		},
	}
}

func (n *normalizer) unattachedDisk(d model.ResourceDescriptor, f model.UnattachedDiskFinding) model.Recommendation {
	savings := n.convert(f.MonthlyCostUSD)
	return model.Recommendation{
		Category:                model.CategoryUnattachedDisk,
		Impact:                  model.ImpactMedium,
		Problem:                 fmt.Sprintf("Managed disk '%s' (%d GB) is not attached to any virtual machine", d.Name, f.Disk.SizeGB),
		Solution:                "Snapshot the disk if its data is needed, then delete it",
		PotentialBenefits:       n.benefits(savings),
		EstimatedMonthlySavings: savings,
		Currency:                n.currency,
		ExtendedProperties: map[string]any{
			"size_gb":                    f.Disk.SizeGB,
			"sku":                        f.Disk.SKU,
			"disk_state":                 f.Disk.State,
			"estimated_monthly_cost_usd": f.MonthlyCostUSD,
		},
		ActionDetails: model.ActionDetails{
			Action:               "delete",
			ResourceType:         "managed_disk",
			EstimatedTimeMinutes: 2,
			RiskLevel:            "Medium",
			Automated:            false,
		},
	}
}

func (n *normalizer) convert(usd float64) float64 {
	v, _ := pricing.Convert(usd, pricing.BaseCurrency, n.currency)
	return v
}

func (n *normalizer) benefits(amount float64) string {
	symbol := map[string]string{"USD": "$", "EUR": "€", "TRY": "₺"}[n.currency]
	if symbol == "" {
		symbol = n.currency + " "
	}
	return fmt.Sprintf("~%s%.2f/month savings", symbol, amount)
}
