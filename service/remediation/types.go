package remediation

import (
	"context"
	"time"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/provider"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds every remediation, including provider polling.
const DefaultTimeout = 15 * time.Minute

const (
	ActionDeallocateVM   = "deallocate_vm"
	ActionUpdatePlanSKU  = "update_plan_sku"
	ActionDeletePlan     = "delete_plan"
	ActionDeletePublicIP = "delete_public_ip"
)

type service struct {
	timeout time.Duration
	logger  zerolog.Logger
}

type RemediationService interface {
	DeallocateVM(ctx context.Context, clients *provider.Clients, resourceID string) model.RemediationResult
	UpdatePlanSKU(ctx context.Context, clients *provider.Clients, resourceGroup, planName string, target model.PlanSKU) model.RemediationResult
	DeletePlan(ctx context.Context, clients *provider.Clients, resourceGroup, planName string) model.RemediationResult
	DeletePublicIP(ctx context.Context, clients *provider.Clients, resourceID string) model.RemediationResult
}
