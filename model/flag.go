package model

type Flags struct {
	Command    string
	ConfigPath string
	Output     string

	// Analysis flags
	CPUThreshold float64
	LookbackDays int
	Region       string
	Currency     string
	Days         int

	// Remediation flags
	ResourceID    string
	ResourceGroup string
	PlanName      string
	TargetSKU     PlanSKU
	Yes           bool
}
