package response

import "github.com/elC0mpa/azure-advisor/model"

// AccountInfo represents the subscription identity
type AccountInfo struct {
	Provider    string `json:"provider"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	State       string `json:"state"`
}

// ServiceCost represents cost for a single service or resource group
type ServiceCost struct {
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

// CostInfo represents cost data for a time period
type CostInfo struct {
	StartDate      string        `json:"start_date"`
	EndDate        string        `json:"end_date"`
	Services       []ServiceCost `json:"services"`
	ResourceGroups []ServiceCost `json:"resource_groups"`
	Total          float64       `json:"total"`
	Currency       string        `json:"currency"`
}

// RecommendationReport is the payload of the recommendation tool
type RecommendationReport struct {
	Summary         model.RecommendationSummary `json:"summary"`
	Recommendations []model.Recommendation      `json:"recommendations"`
}

// VMReport lists VM utilization with idle counts
type VMReport struct {
	Total        int                   `json:"total"`
	Idle         int                   `json:"idle"`
	Unknown      int                   `json:"unknown"`
	CPUThreshold float64               `json:"cpu_threshold"`
	LookbackDays int                   `json:"lookback_days"`
	VMs          []model.VMUtilization `json:"vms"`
}

// ServicePlanReport lists App Service plans with the empty ones counted
type ServicePlanReport struct {
	Total int                 `json:"total"`
	Empty int                 `json:"empty"`
	Plans []model.ServicePlan `json:"plans"`
}
