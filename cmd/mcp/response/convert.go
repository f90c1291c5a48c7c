package response

import (
	"sort"

	"github.com/elC0mpa/azure-advisor/model"
)

// ConvertAccountInfo converts model.AccountInfo to response.AccountInfo
func ConvertAccountInfo(info *model.AccountInfo) *AccountInfo {
	if info == nil {
		return nil
	}
	return &AccountInfo{
		Provider:    info.Provider,
		AccountID:   info.AccountID,
		AccountName: info.AccountName,
		State:       info.State,
	}
}

// ConvertCostDetails flattens the cost maps into slices sorted by amount
func ConvertCostDetails(details *model.CostDetails) *CostInfo {
	if details == nil {
		return nil
	}

	currency := details.Currency
	if currency == "" {
		currency = "USD"
	}

	return &CostInfo{
		StartDate:      details.FromDate,
		EndDate:        details.ToDate,
		Services:       sortedCosts(details.CostsByService, details.TotalCost),
		ResourceGroups: sortedCosts(details.CostsByResourceGroup, details.TotalCost),
		Total:          details.TotalCost,
		Currency:       currency,
	}
}

func sortedCosts(groups map[string]float64, total float64) []ServiceCost {
	costs := make([]ServiceCost, 0, len(groups))
	for name, amount := range groups {
		percent := 0.0
		if total > 0 {
			percent = amount / total * 100
		}
		costs = append(costs, ServiceCost{Name: name, Amount: amount, Percent: percent})
	}

	sort.Slice(costs, func(i, j int) bool {
		if costs[i].Amount == costs[j].Amount {
			return costs[i].Name < costs[j].Name
		}
		return costs[i].Amount > costs[j].Amount
	})

	return costs
}

func ConvertRecommendations(recs []model.Recommendation) *RecommendationReport {
	if recs == nil {
		recs = []model.Recommendation{}
	}
	return &RecommendationReport{
		Summary:         model.Summarize(recs),
		Recommendations: recs,
	}
}

func ConvertVMs(vms []model.VMUtilization, cpuThreshold float64, lookbackDays int) *VMReport {
	report := &VMReport{
		Total:        len(vms),
		CPUThreshold: cpuThreshold,
		LookbackDays: lookbackDays,
		VMs:          vms,
	}
	if report.VMs == nil {
		report.VMs = []model.VMUtilization{}
	}
	for _, vm := range vms {
		switch vm.Verdict {
		case model.VerdictIdle:
			report.Idle++
		case model.VerdictUnknown:
			report.Unknown++
		}
	}
	return report
}

func ConvertServicePlans(plans []model.ServicePlan) *ServicePlanReport {
	report := &ServicePlanReport{Total: len(plans), Plans: plans}
	if report.Plans == nil {
		report.Plans = []model.ServicePlan{}
	}
	for _, plan := range plans {
		if plan.NumberOfSites == 0 {
			report.Empty++
		}
	}
	return report
}
