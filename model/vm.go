package model

import "time"

// UtilizationSample is one interval average. A nil Average means the
// interval had no data.
type UtilizationSample struct {
	Timestamp time.Time
	Average   *float64
}

// Utilization is the reduced statistic for one resource metric.
type Utilization struct {
	Average float64
	Samples int
	// Known is false when no sample entered the mean, either because the
	// query failed or because the window held no data.
	Known bool
	Err   error
}

type Verdict string

const (
	VerdictIdle    Verdict = "idle"
	VerdictHealthy Verdict = "healthy"
	// VerdictUnknown marks a running VM left unclassified for lack of telemetry.
	VerdictUnknown Verdict = "unknown"
)

// VMUtilization is one row of the detailed VM listing.
type VMUtilization struct {
	Descriptor     ResourceDescriptor `json:"descriptor"`
	Size           string             `json:"vm_size"`
	PowerState     PowerState         `json:"power_state"`
	CPUAverage     float64            `json:"cpu_average"`
	Samples        int                `json:"samples"`
	TelemetryKnown bool               `json:"telemetry_known"`
	Verdict        Verdict            `json:"verdict"`
	Recommendation string             `json:"recommendation"`
	DaysAnalyzed   int                `json:"days_analyzed"`
	CPUThreshold   float64            `json:"cpu_threshold"`
}
