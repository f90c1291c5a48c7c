package advisor

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/inspector"
	"github.com/elC0mpa/azure-advisor/service/metrics"
	"github.com/elC0mpa/azure-advisor/service/normalizer"
	"github.com/elC0mpa/azure-advisor/service/pricing"
	"github.com/elC0mpa/azure-advisor/service/provider"
	"github.com/elC0mpa/azure-advisor/service/remediation"
	"github.com/elC0mpa/azure-advisor/telemetry"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Factory            provider.ClientFactory
	PriceSource        provider.PriceSource
	Scan               model.ScanConfig
	MonitorRPS         float64
	RemediationTimeout time.Duration
	Logger             zerolog.Logger
}

func NewService(opts Options) *service {
	logger := opts.Logger.With().Str("component", "advisor").Logger()
	pricingService := pricing.NewService(opts.PriceSource, opts.Logger)
	idleVM := inspector.NewIdleVMInspector(metrics.NewLimiter(opts.MonitorRPS), opts.Logger)

	return &service{
		factory:     opts.Factory,
		pricing:     pricingService,
		remediation: remediation.NewService(opts.RemediationTimeout, opts.Logger),
		idleVM:      idleVM,
		inspectors: []inspector.Inspector{
			idleVM,
			inspector.NewUnattachedAddressInspector(opts.Logger),
			inspector.NewIdleServicePlanInspector(pricingService, opts.Logger),
			inspector.NewUnattachedDiskInspector(opts.Logger),
		},
		scan:   opts.Scan,
		logger: logger,
	}
}

func (s *service) clients(bundle model.CredentialBundle) (*provider.Clients, error) {
	if err := bundle.Validate(); err != nil {
		return nil, err
	}
	clients, err := s.factory.NewClients(bundle)
	if err != nil {
		return nil, fmt.Errorf("failed to create azure clients: %w", err)
	}
	return clients, nil
}

// ListRecommendations runs every inspector against the subscription and
// returns normalized recommendations sorted by savings. Failing to
// authenticate is an error; a failing inspector only loses its own results.
func (s *service) ListRecommendations(ctx context.Context, bundle model.CredentialBundle) ([]model.Recommendation, error) {
	clients, err := s.clients(bundle)
	if err != nil {
		return nil, err
	}

	if _, err := clients.Identity.GetAccountInfo(ctx); err != nil {
		return nil, fmt.Errorf("failed to authenticate against subscription %s: %w", bundle.SubscriptionID, err)
	}

	var (
		mu       sync.Mutex
		findings []model.Finding
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, insp := range s.inspectors {
		g.Go(func() error {
			found, err := insp.Inspect(gctx, clients, s.scan)
			if err != nil {
				s.logger.Error().Err(err).Str("inspector", insp.Name()).Msg("inspector failed")
				telemetry.InspectorFailuresTotal.WithLabelValues(insp.Name()).Inc()
				return nil
			}

			mu.Lock()
			findings = append(findings, found...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recs := normalizer.New(s.scan.Currency, s.logger).NormalizeAll(findings)
	sortRecommendations(recs)
	s.record(recs)

	return recs, nil
}

// ListVMs lists every running VM with its CPU verdict. Non-positive
// arguments fall back to the configured values.
func (s *service) ListVMs(ctx context.Context, bundle model.CredentialBundle, cpuThreshold float64, lookbackDays int) ([]model.VMUtilization, error) {
	clients, err := s.clients(bundle)
	if err != nil {
		return nil, err
	}

	cfg := s.scan.IdleVM
	if cpuThreshold > 0 {
		cfg.CPUThreshold = cpuThreshold
	}
	if lookbackDays > 0 {
		cfg.LookbackDays = lookbackDays
	}

	rows, err := s.idleVM.Analyze(ctx, clients, cfg)
	if err != nil {
		return nil, err
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CPUAverage < rows[j].CPUAverage
	})
	return rows, nil
}

func (s *service) DeallocateVM(ctx context.Context, bundle model.CredentialBundle, resourceID string) model.RemediationResult {
	clients, err := s.clients(bundle)
	if err != nil {
		return model.Failed(err.Error())
	}
	return s.remediation.DeallocateVM(ctx, clients, resourceID)
}

func (s *service) UpdatePlanSKU(ctx context.Context, bundle model.CredentialBundle, resourceGroup, planName string, target model.PlanSKU) model.RemediationResult {
	clients, err := s.clients(bundle)
	if err != nil {
		return model.Failed(err.Error())
	}
	return s.remediation.UpdatePlanSKU(ctx, clients, resourceGroup, planName, target)
}

func (s *service) DeletePlan(ctx context.Context, bundle model.CredentialBundle, resourceGroup, planName string) model.RemediationResult {
	clients, err := s.clients(bundle)
	if err != nil {
		return model.Failed(err.Error())
	}
	return s.remediation.DeletePlan(ctx, clients, resourceGroup, planName)
}

func (s *service) DeletePublicIP(ctx context.Context, bundle model.CredentialBundle, resourceID string) model.RemediationResult {
	clients, err := s.clients(bundle)
	if err != nil {
		return model.Failed(err.Error())
	}
	return s.remediation.DeletePublicIP(ctx, clients, resourceID)
}

// ResolvePricing needs no credentials; the retail price list is public.
func (s *service) ResolvePricing(ctx context.Context, region, currency string) (model.PricingTable, error) {
	if region == "" {
		region = s.scan.Region
	}
	if currency == "" {
		currency = s.scan.Currency
	}
	return s.pricing.Resolve(ctx, region, currency)
}

func (s *service) ListServicePlans(ctx context.Context, bundle model.CredentialBundle) ([]model.ServicePlan, error) {
	clients, err := s.clients(bundle)
	if err != nil {
		return nil, err
	}
	return clients.AppService.ListPlans(ctx)
}

func (s *service) GetCostDetails(ctx context.Context, bundle model.CredentialBundle, days int) (*model.CostDetails, error) {
	clients, err := s.clients(bundle)
	if err != nil {
		return nil, err
	}
	return clients.Cost.GetCostDetails(ctx, days)
}

func (s *service) GetAccountInfo(ctx context.Context, bundle model.CredentialBundle) (*model.AccountInfo, error) {
	clients, err := s.clients(bundle)
	if err != nil {
		return nil, err
	}
	return clients.Identity.GetAccountInfo(ctx)
}

func (s *service) record(recs []model.Recommendation) {
	savings := make(map[model.Category]float64)
	for _, insp := range s.inspectors {
		savings[insp.Category()] = 0
	}
	for _, rec := range recs {
		telemetry.RecommendationsTotal.WithLabelValues(string(rec.Category)).Inc()
		savings[rec.Category] += rec.EstimatedMonthlySavings
	}
	for category, amount := range savings {
		telemetry.PotentialSavings.WithLabelValues(string(category)).Set(amount)
	}

	s.logger.Info().Int("recommendations", len(recs)).Msg("scan completed")
}

func sortRecommendations(recs []model.Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].EstimatedMonthlySavings != recs[j].EstimatedMonthlySavings {
			return recs[i].EstimatedMonthlySavings > recs[j].EstimatedMonthlySavings
		}
		return recs[i].ID < recs[j].ID
	})
}
