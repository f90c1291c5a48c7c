package azureconfig

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
)

type service struct {
	subscriptionID string
	credential     azcore.TokenCredential
	clientOptions  *arm.ClientOptions
}

type ConfigService interface {
	GetCredential() azcore.TokenCredential
	GetSubscriptionID() string
	GetClientOptions() *arm.ClientOptions
}
