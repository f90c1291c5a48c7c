// Package advisortest provides an in-memory AdvisorService for transport tests.
package advisortest

import (
	"context"
	"sync"

	"github.com/elC0mpa/azure-advisor/model"
)

// Call records one invocation of the fake.
type Call struct {
	Op     string
	Bundle model.CredentialBundle
	Args   []any
}

// Advisor returns canned values and records every call.
type Advisor struct {
	Recommendations []model.Recommendation
	VMs             []model.VMUtilization
	Plans           []model.ServicePlan
	Pricing         model.PricingTable
	Cost            *model.CostDetails
	Account         *model.AccountInfo
	Result          model.RemediationResult
	Err             error

	mu    sync.Mutex
	calls []Call
}

func (a *Advisor) record(op string, bundle model.CredentialBundle, args ...any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls = append(a.calls, Call{Op: op, Bundle: bundle, Args: args})
}

func (a *Advisor) Calls() []Call {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Call(nil), a.calls...)
}

func (a *Advisor) ListRecommendations(_ context.Context, bundle model.CredentialBundle) ([]model.Recommendation, error) {
	a.record("ListRecommendations", bundle)
	return a.Recommendations, a.Err
}

func (a *Advisor) ListVMs(_ context.Context, bundle model.CredentialBundle, cpuThreshold float64, lookbackDays int) ([]model.VMUtilization, error) {
	a.record("ListVMs", bundle, cpuThreshold, lookbackDays)
	return a.VMs, a.Err
}

func (a *Advisor) DeallocateVM(_ context.Context, bundle model.CredentialBundle, resourceID string) model.RemediationResult {
	a.record("DeallocateVM", bundle, resourceID)
	return a.Result
}

func (a *Advisor) UpdatePlanSKU(_ context.Context, bundle model.CredentialBundle, resourceGroup, planName string, target model.PlanSKU) model.RemediationResult {
	a.record("UpdatePlanSKU", bundle, resourceGroup, planName, target)
	return a.Result
}

func (a *Advisor) DeletePlan(_ context.Context, bundle model.CredentialBundle, resourceGroup, planName string) model.RemediationResult {
	a.record("DeletePlan", bundle, resourceGroup, planName)
	return a.Result
}

func (a *Advisor) DeletePublicIP(_ context.Context, bundle model.CredentialBundle, resourceID string) model.RemediationResult {
	a.record("DeletePublicIP", bundle, resourceID)
	return a.Result
}

func (a *Advisor) ResolvePricing(_ context.Context, region, currency string) (model.PricingTable, error) {
	a.record("ResolvePricing", model.CredentialBundle{}, region, currency)
	return a.Pricing, a.Err
}

func (a *Advisor) ListServicePlans(_ context.Context, bundle model.CredentialBundle) ([]model.ServicePlan, error) {
	a.record("ListServicePlans", bundle)
	return a.Plans, a.Err
}

func (a *Advisor) GetCostDetails(_ context.Context, bundle model.CredentialBundle, days int) (*model.CostDetails, error) {
	a.record("GetCostDetails", bundle, days)
	return a.Cost, a.Err
}

func (a *Advisor) GetAccountInfo(_ context.Context, bundle model.CredentialBundle) (*model.AccountInfo, error) {
	a.record("GetAccountInfo", bundle)
	return a.Account, a.Err
}
