package inspector

import (
	"context"
	"fmt"
	"strings"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/pricing"
	"github.com/elC0mpa/azure-advisor/service/provider"
	"github.com/elC0mpa/azure-advisor/telemetry"
	"github.com/rs/zerolog"
)

func NewIdleServicePlanInspector(pricingService pricing.PricingService, logger zerolog.Logger) *IdleServicePlanInspector {
	return &IdleServicePlanInspector{
		pricing: pricingService,
		logger:  logger.With().Str("inspector", "idle-service-plan").Logger(),
	}
}

func (i *IdleServicePlanInspector) Name() string             { return "idle-service-plan" }
func (i *IdleServicePlanInspector) Category() model.Category { return model.CategoryIdleServicePlan }

// CountAppsOnPlan counts apps whose parent plan is planID. ARM ids compare
// case-insensitively.
func CountAppsOnPlan(apps []model.WebApp, planID string) int {
	count := 0
	for _, app := range apps {
		if strings.EqualFold(app.ServerFarmID, planID) {
			count++
		}
	}
	return count
}

func (i *IdleServicePlanInspector) Inspect(ctx context.Context, clients *provider.Clients, cfg model.ScanConfig) ([]model.Finding, error) {
	plans, err := clients.AppService.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list app service plans: %w", err)
	}

	targetSKU, targetTier := cfg.ServicePlan.TargetSKU, cfg.ServicePlan.TargetTier
	if targetSKU == "" {
		targetSKU, targetTier = "F1", "Free"
	}

	appsByGroup := make(map[string][]model.WebApp)
	tables := make(map[string]model.PricingTable)

	var findings []model.Finding
	for _, plan := range plans {
		d := plan.Descriptor

		groupKey := strings.ToLower(d.ResourceGroup)
		apps, ok := appsByGroup[groupKey]
		if !ok {
			apps, err = clients.AppService.ListWebApps(ctx, d.ResourceGroup)
			if err != nil {
				i.skip(d, err, "failed to list web apps")
				continue
			}
			appsByGroup[groupKey] = apps
		}

		count := CountAppsOnPlan(apps, d.ID)
		if count > 0 {
			continue
		}

		estimate, err := i.estimate(ctx, tables, plan, cfg)
		if err != nil {
			i.skip(d, err, "failed to price plan")
			continue
		}

		findings = append(findings, model.IdlePlanFinding{
			Plan:       plan,
			AppCount:   count,
			Estimate:   estimate,
			TargetSKU:  targetSKU,
			TargetTier: targetTier,
		})
	}

	return findings, nil
}

// estimate prices the plan's current SKU in USD. An SKU missing from the
// catalog yields a zero estimate rather than dropping the finding.
func (i *IdleServicePlanInspector) estimate(ctx context.Context, tables map[string]model.PricingTable, plan model.ServicePlan, cfg model.ScanConfig) (model.PricingEntry, error) {
	region := plan.Descriptor.Location
	if region == "" {
		region = cfg.Region
	}
	region = normalizeRegion(region)

	table, ok := tables[region]
	if !ok {
		var err error
		table, err = i.pricing.Resolve(ctx, region, pricing.BaseCurrency)
		if err != nil {
			return model.PricingEntry{}, err
		}
		tables[region] = table
	}

	for sku, entry := range table.Entries {
		if strings.EqualFold(sku, plan.SKU.Name) {
			return entry, nil
		}
	}

	i.logger.Warn().
		Str("resource_id", plan.Descriptor.ID).
		Str("sku", plan.SKU.Name).
		Err(model.ErrUnknownSKU).
		Msg("plan sku not in pricing catalog, savings unknown")
	return model.PricingEntry{
		SKU:      plan.SKU.Name,
		Tier:     plan.SKU.Tier,
		Currency: pricing.BaseCurrency,
		Region:   region,
		Source:   model.PriceSourceStatic,
	}, nil
}

func (i *IdleServicePlanInspector) skip(d model.ResourceDescriptor, err error, msg string) {
	i.logger.Warn().Err(err).Str("resource_id", d.ID).Msg(msg)
	telemetry.ResourcesSkippedTotal.WithLabelValues(i.Name()).Inc()
}

// normalizeRegion turns display names such as "West Europe" into ARM
// region names such as "westeurope".
func normalizeRegion(region string) string {
	return strings.ToLower(strings.ReplaceAll(region, " ", ""))
}
