package model

type MissingTelemetryPolicy string

const (
	// MissingTelemetryIdle treats a VM without CPU samples as 0% utilized.
	MissingTelemetryIdle MissingTelemetryPolicy = "idle"
	// MissingTelemetrySkip leaves VMs without CPU samples unclassified.
	MissingTelemetrySkip MissingTelemetryPolicy = "skip"
)

const (
	DefaultCPUThreshold       = 5.0
	DefaultLookbackDays       = 7
	DefaultPublicIPMonthlyUSD = 2.50
	CPUMetricName             = "Percentage CPU"
)

// ScanConfig carries the tuning parameters of every inspector.
type ScanConfig struct {
	Region      string            `yaml:"-"`
	Currency    string            `yaml:"-"`
	IdleVM      IdleVMConfig      `yaml:"idle_vm"`
	PublicIP    PublicIPConfig    `yaml:"public_ip"`
	ServicePlan ServicePlanConfig `yaml:"service_plan"`
	Disk        DiskConfig        `yaml:"disk"`
}

type IdleVMConfig struct {
	CPUThreshold     float64                `yaml:"cpu_threshold"`
	LookbackDays     int                    `yaml:"lookback_days"`
	MissingTelemetry MissingTelemetryPolicy `yaml:"missing_telemetry"`
	Concurrency      int                    `yaml:"concurrency"`
}

type PublicIPConfig struct {
	MonthlyCostUSD float64 `yaml:"monthly_cost_usd"`
}

type ServicePlanConfig struct {
	TargetSKU  string `yaml:"target_sku"`
	TargetTier string `yaml:"target_tier"`
}

type DiskConfig struct {
	// MonthlyUSDPerGB is keyed by disk SKU, e.g. Premium_LRS.
	MonthlyUSDPerGB map[string]float64 `yaml:"monthly_usd_per_gb"`
}

func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		Region:   "westeurope",
		Currency: "USD",
		IdleVM: IdleVMConfig{
			CPUThreshold:     DefaultCPUThreshold,
			LookbackDays:     DefaultLookbackDays,
			MissingTelemetry: MissingTelemetryIdle,
			Concurrency:      8,
		},
		PublicIP: PublicIPConfig{MonthlyCostUSD: DefaultPublicIPMonthlyUSD},
		ServicePlan: ServicePlanConfig{
			TargetSKU:  "F1",
			TargetTier: "Free",
		},
		Disk: DiskConfig{
			MonthlyUSDPerGB: map[string]float64{
				"Standard_LRS":    0.05,
				"StandardSSD_LRS": 0.075,
				"StandardSSD_ZRS": 0.094,
				"Premium_LRS":     0.135,
				"Premium_ZRS":     0.169,
				"PremiumV2_LRS":   0.12,
				"UltraSSD_LRS":    0.12,
			},
		},
	}
}
