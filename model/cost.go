package model

// AccountInfo represents the subscription a credential bundle resolves to
type AccountInfo struct {
	Provider    string `json:"provider"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	State       string `json:"state"`
}

// CostDetails contains actual cost for a time period
type CostDetails struct {
	TotalCost            float64            `json:"total_cost"`
	Currency             string             `json:"currency"`
	CostsByService       map[string]float64 `json:"costs_by_service"`
	CostsByResourceGroup map[string]float64 `json:"costs_by_resource_group"`
	FromDate             string             `json:"from_date"`
	ToDate               string             `json:"to_date"`
}

// ServiceCost represents cost for a single service or resource group
type ServiceCost struct {
	Name   string
	Amount float64
	Unit   string
}
