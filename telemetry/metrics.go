package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	InspectorFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_inspector_failures_total",
		Help: "Inspectors aborted because a top-level listing failed",
	}, []string{"inspector"})

	ResourcesSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_resources_skipped_total",
		Help: "Resources skipped by an inspector after a per-resource failure",
	}, []string{"inspector"})

	RecommendationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_recommendations_total",
		Help: "Recommendations produced, by category",
	}, []string{"category"})

	FindingsDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_findings_dropped_total",
		Help: "Findings dropped during normalization",
	}, []string{"category"})

	PricingFallbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_pricing_fallback_total",
		Help: "Pricing resolutions served from the static table",
	}, []string{"region"})

	PricingRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_pricing_rejected_total",
		Help: "Live prices discarded for falling outside the plausibility band",
	}, []string{"sku"})

	MetricQueryFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_metric_query_failures_total",
		Help: "Azure Monitor queries that failed and were reported as zero",
	}, []string{"metric"})

	RemediationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_remediation_total",
		Help: "Remediation actions by outcome",
	}, []string{"action", "outcome"})

	PotentialSavings = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "advisor_potential_monthly_savings",
		Help: "Estimated monthly savings of the last scan, by category",
	}, []string{"category"})
)
