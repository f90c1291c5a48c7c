package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/pricing"
	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration shared by the CLI, the MCP server and
// the HTTP API.
type Config struct {
	Region      string                  `yaml:"region"`
	Currency    string                  `yaml:"currency"`
	Credentials model.CredentialBundle  `yaml:"credentials"`
	IdleVM      model.IdleVMConfig      `yaml:"idle_vm"`
	PublicIP    model.PublicIPConfig    `yaml:"public_ip"`
	ServicePlan model.ServicePlanConfig `yaml:"service_plan"`
	Disk        model.DiskConfig        `yaml:"disk"`
	Monitor     MonitorConfig           `yaml:"monitor"`
	Pricing     PricingConfig           `yaml:"pricing"`
	Remediation RemediationConfig       `yaml:"remediation"`
	Server      ServerConfig            `yaml:"server"`
	Log         LogConfig               `yaml:"log"`
}

type MonitorConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

type PricingConfig struct {
	Endpoint string        `yaml:"endpoint"`
	MaxPages int           `yaml:"max_pages"`
	Timeout  time.Duration `yaml:"timeout"`
	// Offline skips the live price list and always uses the static table.
	Offline bool `yaml:"offline"`
}

type RemediationConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() *Config {
	scan := model.DefaultScanConfig()
	return &Config{
		Region:      scan.Region,
		Currency:    scan.Currency,
		IdleVM:      scan.IdleVM,
		PublicIP:    scan.PublicIP,
		ServicePlan: scan.ServicePlan,
		Disk:        scan.Disk,
		Monitor:     MonitorConfig{RequestsPerSecond: 10},
		Pricing: PricingConfig{
			Endpoint: "https://prices.azure.com/api/retail/prices",
			MaxPages: 20,
			Timeout:  30 * time.Second,
		},
		Remediation: RemediationConfig{Timeout: 15 * time.Minute},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 20 * time.Minute,
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	set(&c.Credentials.TenantID, "AZURE_TENANT_ID")
	set(&c.Credentials.ClientID, "AZURE_CLIENT_ID")
	set(&c.Credentials.ClientSecret, "AZURE_CLIENT_SECRET")
	set(&c.Credentials.SubscriptionID, "AZURE_SUBSCRIPTION_ID")
	set(&c.Region, "ADVISOR_REGION")
	set(&c.Currency, "ADVISOR_CURRENCY")
	set(&c.Log.Level, "ADVISOR_LOG_LEVEL")
	set(&c.Server.Addr, "ADVISOR_ADDR")
}

// Validate checks tuning values. Credentials are optional here because the
// HTTP API receives them per request.
func (c *Config) Validate() error {
	var errs []error

	if c.Region == "" {
		errs = append(errs, errors.New("region is required"))
	}
	c.Currency = strings.ToUpper(c.Currency)
	if _, err := pricing.Convert(1, pricing.BaseCurrency, c.Currency); err != nil {
		errs = append(errs, fmt.Errorf("currency: %w", err))
	}
	if c.IdleVM.CPUThreshold <= 0 || c.IdleVM.CPUThreshold > 100 {
		errs = append(errs, fmt.Errorf("idle_vm.cpu_threshold must be in (0, 100], got %v", c.IdleVM.CPUThreshold))
	}
	if c.IdleVM.LookbackDays <= 0 || c.IdleVM.LookbackDays > 93 {
		errs = append(errs, fmt.Errorf("idle_vm.lookback_days must be in [1, 93], got %d", c.IdleVM.LookbackDays))
	}
	switch c.IdleVM.MissingTelemetry {
	case model.MissingTelemetryIdle, model.MissingTelemetrySkip:
	default:
		errs = append(errs, fmt.Errorf("idle_vm.missing_telemetry must be %q or %q", model.MissingTelemetryIdle, model.MissingTelemetrySkip))
	}
	if c.IdleVM.Concurrency <= 0 {
		errs = append(errs, errors.New("idle_vm.concurrency must be positive"))
	}
	if c.PublicIP.MonthlyCostUSD < 0 {
		errs = append(errs, errors.New("public_ip.monthly_cost_usd must not be negative"))
	}
	if c.ServicePlan.TargetSKU == "" {
		errs = append(errs, errors.New("service_plan.target_sku is required"))
	}
	if c.Monitor.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("monitor.requests_per_second must not be negative"))
	}
	if c.Remediation.Timeout <= 0 {
		errs = append(errs, errors.New("remediation.timeout must be positive"))
	}

	return errors.Join(errs...)
}

// Scan returns the inspector configuration.
func (c *Config) Scan() model.ScanConfig {
	return model.ScanConfig{
		Region:      c.Region,
		Currency:    c.Currency,
		IdleVM:      c.IdleVM,
		PublicIP:    c.PublicIP,
		ServicePlan: c.ServicePlan,
		Disk:        c.Disk,
	}
}

// HasCredentials reports whether a full bundle was configured.
func (c *Config) HasCredentials() bool {
	return c.Credentials.Validate() == nil
}
