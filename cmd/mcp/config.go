package main

import (
	"os"

	"github.com/elC0mpa/azure-advisor/config"
)

// LoadConfig reads the optional ADVISOR_CONFIG file and the environment.
// Credentials come from AZURE_TENANT_ID, AZURE_CLIENT_ID,
// AZURE_CLIENT_SECRET and AZURE_SUBSCRIPTION_ID.
func LoadConfig() (*config.Config, error) {
	return config.Load(os.Getenv("ADVISOR_CONFIG"))
}
