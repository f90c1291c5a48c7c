package azuremonitor

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/monitor/armmonitor"
)

type service struct {
	metricsClient *armmonitor.MetricsClient
}

// Credential is passed to allow reuse across services
type Credential = azcore.TokenCredential
