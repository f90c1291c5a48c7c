package orchestrator

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/elC0mpa/azure-advisor/config"
	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/advisor/advisortest"
	"github.com/elC0mpa/azure-advisor/service/flag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(fake *advisortest.Advisor) (*service, *bytes.Buffer) {
	cfg := config.Default()
	cfg.Credentials = model.CredentialBundle{TenantID: "t", ClientID: "c", ClientSecret: "s", SubscriptionID: "sub"}
	out := &bytes.Buffer{}
	return NewService(fake, cfg, out), out
}

func TestOrchestrateRecommendationsJSON(t *testing.T) {
	fake := &advisortest.Advisor{Recommendations: []model.Recommendation{
		{ID: "a", Category: model.CategoryIdleAddress, EstimatedMonthlySavings: 2.5, Currency: "USD"},
	}}
	s, out := newTestService(fake)

	err := s.Orchestrate(model.Flags{Command: flag.CommandRecommendations, Output: "json"})
	require.NoError(t, err)

	var decoded struct {
		Recommendations []model.Recommendation      `json:"recommendations"`
		Summary         model.RecommendationSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Len(t, decoded.Recommendations, 1)
	assert.Equal(t, 2.5, decoded.Summary.TotalSavings)
	assert.Equal(t, "sub", fake.Calls()[0].Bundle.SubscriptionID)
}

func TestOrchestrateVMsUsesConfiguredThreshold(t *testing.T) {
	fake := &advisortest.Advisor{}
	s, _ := newTestService(fake)
	s.cfg.IdleVM.CPUThreshold = 12
	s.cfg.IdleVM.LookbackDays = 3

	require.NoError(t, s.Orchestrate(model.Flags{Command: flag.CommandVMs, Output: "json"}))

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []any{12.0, 3}, calls[0].Args)
}

func TestOrchestrateRemediationRequiresConfirmation(t *testing.T) {
	fake := &advisortest.Advisor{}
	s, _ := newTestService(fake)

	err := s.Orchestrate(model.Flags{Command: flag.CommandDeleteIP, ResourceID: "/x", Output: "json"})

	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Empty(t, fake.Calls())
}

func TestOrchestrateRemediationFailure(t *testing.T) {
	fake := &advisortest.Advisor{Result: model.Failed("address is attached")}
	s, out := newTestService(fake)

	err := s.Orchestrate(model.Flags{Command: flag.CommandDeleteIP, ResourceID: "/x", Yes: true, Output: "json"})

	assert.Error(t, err)
	assert.Contains(t, out.String(), "address is attached")
}

func TestOrchestrateUpdatePlanPassesTarget(t *testing.T) {
	fake := &advisortest.Advisor{Result: model.Succeeded("updated", nil)}
	s, _ := newTestService(fake)
	target := model.PlanSKU{Name: "B1", Capacity: 1}

	err := s.Orchestrate(model.Flags{
		Command: flag.CommandUpdatePlan, ResourceGroup: "rg", PlanName: "plan", TargetSKU: target, Yes: true, Output: "json",
	})

	require.NoError(t, err)
	assert.Equal(t, []any{"rg", "plan", target}, fake.Calls()[0].Args)
}

func TestOrchestratePropagatesErrors(t *testing.T) {
	fake := &advisortest.Advisor{Err: errors.New("boom")}
	s, _ := newTestService(fake)

	assert.Error(t, s.Orchestrate(model.Flags{Command: flag.CommandCost, Days: 30, Output: "json"}))
	assert.Error(t, s.Orchestrate(model.Flags{Command: flag.CommandPricing, Output: "json"}))
}
