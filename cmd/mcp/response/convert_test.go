package response

import (
	"testing"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertCostDetailsSortsByAmount(t *testing.T) {
	info := ConvertCostDetails(&model.CostDetails{
		TotalCost:            100,
		CostsByService:       map[string]float64{"Storage": 20, "Virtual Machines": 80},
		CostsByResourceGroup: map[string]float64{"rg-a": 50, "rg-b": 50},
		FromDate:             "2026-09-01",
		ToDate:               "2026-09-30",
	})

	require.NotNil(t, info)
	assert.Equal(t, "USD", info.Currency)
	assert.Equal(t, "Virtual Machines", info.Services[0].Name)
	assert.InDelta(t, 80.0, info.Services[0].Percent, 0.001)
	assert.Equal(t, "rg-a", info.ResourceGroups[0].Name)
}

func TestConvertCostDetailsNil(t *testing.T) {
	assert.Nil(t, ConvertCostDetails(nil))
}

func TestConvertVMsCountsVerdicts(t *testing.T) {
	report := ConvertVMs([]model.VMUtilization{
		{Verdict: model.VerdictIdle},
		{Verdict: model.VerdictHealthy},
		{Verdict: model.VerdictUnknown},
		{Verdict: model.VerdictIdle},
	}, 5, 7)

	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 2, report.Idle)
	assert.Equal(t, 1, report.Unknown)
}

func TestConvertRecommendationsEmpty(t *testing.T) {
	report := ConvertRecommendations(nil)

	assert.NotNil(t, report.Recommendations)
	assert.Equal(t, 0, report.Summary.Total)
}

func TestConvertServicePlansCountsEmpty(t *testing.T) {
	report := ConvertServicePlans([]model.ServicePlan{{NumberOfSites: 0}, {NumberOfSites: 3}})

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Empty)
}
