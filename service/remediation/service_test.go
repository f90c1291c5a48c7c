package remediation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/provider/providertest"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeallocateVM(t *testing.T) {
	vm := providertest.VM("compute", "web-01")
	sub := &providertest.Subscription{VMs: []model.VirtualMachine{vm}}

	result := NewService(time.Minute, zerolog.Nop()).DeallocateVM(context.Background(), sub.Clients(), vm.Descriptor.ID)

	assert.True(t, result.Success, result.Message)
	assert.Equal(t, []string{"compute/web-01"}, sub.Deallocated)
}

func TestDeallocateVMMalformedID(t *testing.T) {
	sub := &providertest.Subscription{}
	svc := NewService(time.Minute, zerolog.Nop())

	for _, id := range []string{
		"",
		"web-01",
		"/subscriptions/s/resourceGroups/rg/providers/Microsoft.Compute",
		providertest.ResourceID("rg", model.TypePublicIPAddress, "ip"),
	} {
		result := svc.DeallocateVM(context.Background(), sub.Clients(), id)
		assert.False(t, result.Success, id)
		assert.Contains(t, result.Message, "malformed resource id", id)
	}
	assert.Empty(t, sub.Deallocated)
}

func TestDeallocateVMTimeout(t *testing.T) {
	vm := providertest.VM("compute", "slow")
	sub := &providertest.Subscription{Delay: time.Second}

	result := NewService(20*time.Millisecond, zerolog.Nop()).DeallocateVM(context.Background(), sub.Clients(), vm.Descriptor.ID)

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "timed out")
	assert.Empty(t, sub.Deallocated)
}

func TestDeallocateVMProviderError(t *testing.T) {
	vm := providertest.VM("compute", "web-01")
	sub := &providertest.Subscription{DeallocErr: errors.New("AuthorizationFailed")}

	result := NewService(time.Minute, zerolog.Nop()).DeallocateVM(context.Background(), sub.Clients(), vm.Descriptor.ID)

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "AuthorizationFailed")
}

func TestNormalizeSKU(t *testing.T) {
	got := NormalizeSKU(model.PlanSKU{Name: "P1V3"})
	assert.Equal(t, model.PlanSKU{Name: "P1V3", Tier: "PremiumV3", Family: "P", Size: "P1V3", Capacity: 1}, got)

	got = NormalizeSKU(model.PlanSKU{Name: "F1", Tier: "Free", Capacity: 3})
	assert.Equal(t, "F", got.Family)
	assert.Equal(t, int32(3), got.Capacity)
}

func TestUpdatePlanSKUIsIdempotent(t *testing.T) {
	plan := providertest.Plan("web", "plan", "B1")
	sub := &providertest.Subscription{Plans: []model.ServicePlan{plan}}
	svc := NewService(time.Minute, zerolog.Nop())
	target := model.PlanSKU{Name: "F1", Tier: "Free"}

	first := svc.UpdatePlanSKU(context.Background(), sub.Clients(), "web", "plan", target)
	require.True(t, first.Success, first.Message)
	assert.Equal(t, true, first.Details["changed"])

	second := svc.UpdatePlanSKU(context.Background(), sub.Clients(), "web", "plan", target)
	require.True(t, second.Success, second.Message)
	assert.Equal(t, false, second.Details["changed"])

	assert.Len(t, sub.SKUUpdates, 1)
	assert.Equal(t, "F1", sub.Plans[0].SKU.Name)
}

func TestUpdatePlanSKUFailures(t *testing.T) {
	svc := NewService(time.Minute, zerolog.Nop())

	missing := &providertest.Subscription{}
	result := svc.UpdatePlanSKU(context.Background(), missing.Clients(), "web", "ghost", model.PlanSKU{Name: "F1"})
	assert.False(t, result.Success)

	result = svc.UpdatePlanSKU(context.Background(), missing.Clients(), "web", "ghost", model.PlanSKU{})
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "target sku")

	plan := providertest.Plan("web", "plan", "S1")
	rejected := &providertest.Subscription{Plans: []model.ServicePlan{plan}, UpdateErr: errors.New("Conflict")}
	result = svc.UpdatePlanSKU(context.Background(), rejected.Clients(), "web", "plan", model.PlanSKU{Name: "B1"})
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Conflict")
}

func TestDeletePlanRefusesPlanWithApps(t *testing.T) {
	plan := providertest.Plan("web", "busy", "S1")
	sub := &providertest.Subscription{
		Plans: []model.ServicePlan{plan},
		Apps:  []model.WebApp{providertest.App(plan, "site")},
	}

	result := NewService(time.Minute, zerolog.Nop()).DeletePlan(context.Background(), sub.Clients(), "web", "busy")

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "1 application")
	assert.Equal(t, 1, result.Details["app_count"])
	assert.Empty(t, sub.DeletedPlans)
}

func TestDeletePlanHonoursNumberOfSites(t *testing.T) {
	plan := providertest.Plan("web", "busy", "S1")
	plan.NumberOfSites = 2
	sub := &providertest.Subscription{Plans: []model.ServicePlan{plan}}

	result := NewService(time.Minute, zerolog.Nop()).DeletePlan(context.Background(), sub.Clients(), "web", "busy")

	assert.False(t, result.Success)
	assert.Empty(t, sub.DeletedPlans)
}

func TestDeletePlanPrecheckFailure(t *testing.T) {
	plan := providertest.Plan("web", "p", "S1")
	sub := &providertest.Subscription{Plans: []model.ServicePlan{plan}, AppsErr: errors.New("throttled")}

	result := NewService(time.Minute, zerolog.Nop()).DeletePlan(context.Background(), sub.Clients(), "web", "p")

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "not deleting")
	assert.Empty(t, sub.DeletedPlans)
}

func TestDeletePlanEmpty(t *testing.T) {
	plan := providertest.Plan("web", "empty", "B1")
	sub := &providertest.Subscription{Plans: []model.ServicePlan{plan}}

	result := NewService(time.Minute, zerolog.Nop()).DeletePlan(context.Background(), sub.Clients(), "web", "empty")

	assert.True(t, result.Success, result.Message)
	assert.Equal(t, []string{"web/empty"}, sub.DeletedPlans)
}

func TestDeletePublicIP(t *testing.T) {
	orphan := providertest.PublicIP("net", "orphan", false)
	used := providertest.PublicIP("net", "used", true)
	sub := &providertest.Subscription{Addresses: []model.PublicIP{orphan, used}}
	svc := NewService(time.Minute, zerolog.Nop())

	result := svc.DeletePublicIP(context.Background(), sub.Clients(), used.Descriptor.ID)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "attached")

	result = svc.DeletePublicIP(context.Background(), sub.Clients(), orphan.Descriptor.ID)
	assert.True(t, result.Success, result.Message)
	assert.Equal(t, []string{"net/orphan"}, sub.DeletedIPs)
}
