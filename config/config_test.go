package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "advisor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "westeurope", cfg.Region)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, model.DefaultCPUThreshold, cfg.IdleVM.CPUThreshold)
	assert.Equal(t, model.DefaultLookbackDays, cfg.IdleVM.LookbackDays)
	assert.Equal(t, 15*time.Minute, cfg.Remediation.Timeout)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
region: northeurope
currency: eur
idle_vm:
  cpu_threshold: 10
  lookback_days: 14
  missing_telemetry: skip
remediation:
  timeout: 5m
log:
  level: debug
  format: console
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "northeurope", cfg.Region)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, 10.0, cfg.IdleVM.CPUThreshold)
	assert.Equal(t, 14, cfg.IdleVM.LookbackDays)
	assert.Equal(t, model.MissingTelemetrySkip, cfg.IdleVM.MissingTelemetry)
	// untouched keys keep their defaults
	assert.Equal(t, 8, cfg.IdleVM.Concurrency)
	assert.Equal(t, 5*time.Minute, cfg.Remediation.Timeout)
	assert.Equal(t, "console", cfg.Log.Format)

	scan := cfg.Scan()
	assert.Equal(t, "EUR", scan.Currency)
	assert.Equal(t, "F1", scan.ServicePlan.TargetSKU)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("AZURE_TENANT_ID", "tenant")
	t.Setenv("AZURE_CLIENT_ID", "client")
	t.Setenv("AZURE_CLIENT_SECRET", "secret")
	t.Setenv("AZURE_SUBSCRIPTION_ID", "sub")
	t.Setenv("ADVISOR_REGION", "eastus")
	t.Setenv("ADVISOR_ADDR", ":9090")

	cfg, err := Load(writeConfig(t, "region: westus\n"))
	require.NoError(t, err)

	assert.Equal(t, "eastus", cfg.Region)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.True(t, cfg.HasCredentials())
	assert.Equal(t, "sub", cfg.Credentials.SubscriptionID)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "region: [unclosed"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing region", mutate: func(c *Config) { c.Region = "" }, wantErr: "region is required"},
		{name: "unsupported currency", mutate: func(c *Config) { c.Currency = "GBP" }, wantErr: "unsupported currency"},
		{name: "zero threshold", mutate: func(c *Config) { c.IdleVM.CPUThreshold = 0 }, wantErr: "cpu_threshold"},
		{name: "long lookback", mutate: func(c *Config) { c.IdleVM.LookbackDays = 365 }, wantErr: "lookback_days"},
		{name: "bad policy", mutate: func(c *Config) { c.IdleVM.MissingTelemetry = "guess" }, wantErr: "missing_telemetry"},
		{name: "no timeout", mutate: func(c *Config) { c.Remediation.Timeout = 0 }, wantErr: "remediation.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
