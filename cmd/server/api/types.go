package api

import "github.com/elC0mpa/azure-advisor/model"

type vmListRequest struct {
	model.CredentialBundle
	CPUThreshold   *float64 `json:"cpu_threshold"`
	DaysForMetrics *int     `json:"days_for_metrics"`
}

type stopVMRequest struct {
	Credentials model.CredentialBundle `json:"credentials"`
	VMID        string                 `json:"vm_id"`
}

type costDetailsRequest struct {
	Credentials    model.CredentialBundle `json:"credentials"`
	Scope          string                 `json:"scope"`
	TimePeriodDays *int                   `json:"time_period_days"`
}

type updatePlanSKURequest struct {
	Credentials       model.CredentialBundle `json:"credentials"`
	ResourceGroupName string                 `json:"resource_group_name"`
	PlanName          string                 `json:"plan_name"`
	TargetSKUName     string                 `json:"target_sku_name"`
	TargetSKUTier     string                 `json:"target_sku_tier"`
	TargetSKUFamily   string                 `json:"target_sku_family"`
	TargetSKUSize     string                 `json:"target_sku_size"`
	TargetSKUCapacity *int32                 `json:"target_sku_capacity"`
}

type deletePlanRequest struct {
	Credentials       model.CredentialBundle `json:"credentials"`
	ResourceGroupName string                 `json:"resource_group_name"`
	PlanName          string                 `json:"plan_name"`
}

type deletePublicIPRequest struct {
	Credentials model.CredentialBundle `json:"credentials"`
	ResourceID  string                 `json:"resource_id"`
}

type pricingResponse struct {
	Success   bool                          `json:"success"`
	Region    string                        `json:"region"`
	Currency  string                        `json:"currency"`
	Source    model.Provenance              `json:"source"`
	Pricing   map[string]model.PricingEntry `json:"pricing"`
	UpdatedAt string                        `json:"updated_at,omitempty"`
}
