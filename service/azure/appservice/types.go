package azureappservice

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
)

type service struct {
	subscriptionID string
	plansClient    *armappservice.PlansClient
	webAppsClient  *armappservice.WebAppsClient
}

// Credential is passed to allow reuse across services
type Credential = azcore.TokenCredential
