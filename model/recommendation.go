package model

type Category string

const (
	CategoryIdleVM          Category = "idle-vm"
	CategoryIdleAddress     Category = "idle-address"
	CategoryIdleServicePlan Category = "idle-service-plan"
	CategoryUnattachedDisk  Category = "unattached-disk"
)

type Impact string

const (
	ImpactHigh   Impact = "High"
	ImpactMedium Impact = "Medium"
	ImpactLow    Impact = "Low"
)

// Recommendation is the uniform output record of an analysis run.
type Recommendation struct {
	ID                      string           `json:"id"`
	Name                    string           `json:"name"`
	Category                Category         `json:"category"`
	Impact                  Impact           `json:"impact"`
	ImpactedField           string           `json:"impacted_field"`
	ImpactedValue           string           `json:"impacted_value"`
	Problem                 string           `json:"short_description_problem"`
	Solution                string           `json:"short_description_solution"`
	PotentialBenefits       string           `json:"potential_benefits"`
	EstimatedMonthlySavings float64          `json:"estimated_monthly_savings"`
	Currency                string           `json:"currency"`
	ExtendedProperties      map[string]any   `json:"extended_properties"`
	ResourceMetadata        ResourceMetadata `json:"resource_metadata"`
	ActionDetails           ActionDetails    `json:"action_details"`
}

type ResourceMetadata struct {
	ResourceID    string `json:"resource_id"`
	Source        string `json:"source"`
	Location      string `json:"location"`
	ResourceGroup string `json:"resource_group"`
}

type ActionDetails struct {
	Action               string `json:"action"`
	ResourceType         string `json:"resource_type"`
	TargetSKU            string `json:"target_sku,omitempty"`
	TargetTier           string `json:"target_tier,omitempty"`
	EstimatedTimeMinutes int    `json:"estimated_time_minutes"`
	RiskLevel            string `json:"risk_level"`
	Automated            bool   `json:"automated"`
}

// RecommendationSummary aggregates a run for display.
type RecommendationSummary struct {
	Total        int                  `json:"total"`
	TotalSavings float64              `json:"total_monthly_savings"`
	Currency     string               `json:"currency"`
	ByCategory   map[Category]int     `json:"by_category"`
	SavingsBy    map[Category]float64 `json:"savings_by_category"`
}

func Summarize(recs []Recommendation) RecommendationSummary {
	summary := RecommendationSummary{
		Total:      len(recs),
		Currency:   "USD",
		ByCategory: make(map[Category]int),
		SavingsBy:  make(map[Category]float64),
	}
	for _, r := range recs {
		summary.ByCategory[r.Category]++
		summary.SavingsBy[r.Category] += r.EstimatedMonthlySavings
		summary.TotalSavings += r.EstimatedMonthlySavings
		if r.Currency != "" {
			summary.Currency = r.Currency
		}
	}
	return summary
}
