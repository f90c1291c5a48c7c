package advisor

import (
	"context"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/inspector"
	"github.com/elC0mpa/azure-advisor/service/pricing"
	"github.com/elC0mpa/azure-advisor/service/provider"
	"github.com/elC0mpa/azure-advisor/service/remediation"
	"github.com/rs/zerolog"
)

type service struct {
	factory     provider.ClientFactory
	pricing     pricing.PricingService
	remediation remediation.RemediationService
	idleVM      *inspector.IdleVMInspector
	inspectors  []inspector.Inspector
	scan        model.ScanConfig
	logger      zerolog.Logger
}

// AdvisorService is the operation surface shared by the CLI, the MCP server
// and the HTTP API.
type AdvisorService interface {
	ListRecommendations(ctx context.Context, bundle model.CredentialBundle) ([]model.Recommendation, error)
	ListVMs(ctx context.Context, bundle model.CredentialBundle, cpuThreshold float64, lookbackDays int) ([]model.VMUtilization, error)
	DeallocateVM(ctx context.Context, bundle model.CredentialBundle, resourceID string) model.RemediationResult
	UpdatePlanSKU(ctx context.Context, bundle model.CredentialBundle, resourceGroup, planName string, target model.PlanSKU) model.RemediationResult
	DeletePlan(ctx context.Context, bundle model.CredentialBundle, resourceGroup, planName string) model.RemediationResult
	DeletePublicIP(ctx context.Context, bundle model.CredentialBundle, resourceID string) model.RemediationResult
	ResolvePricing(ctx context.Context, region, currency string) (model.PricingTable, error)
	ListServicePlans(ctx context.Context, bundle model.CredentialBundle) ([]model.ServicePlan, error)
	GetCostDetails(ctx context.Context, bundle model.CredentialBundle, days int) (*model.CostDetails, error)
	GetAccountInfo(ctx context.Context, bundle model.CredentialBundle) (*model.AccountInfo, error)
}
