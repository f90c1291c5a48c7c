package azureconfig

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/elC0mpa/azure-advisor/model"
)

// NewService builds a client secret credential from the caller's bundle.
// Nothing is cached: every call to NewService authenticates independently.
func NewService(bundle model.CredentialBundle) (*service, error) {
	if err := bundle.Validate(); err != nil {
		return nil, err
	}

	credential, err := azidentity.NewClientSecretCredential(bundle.TenantID, bundle.ClientID, bundle.ClientSecret, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}

	return &service{
		subscriptionID: bundle.SubscriptionID,
		credential:     credential,
		clientOptions: &arm.ClientOptions{
			ClientOptions: policy.ClientOptions{
				Telemetry: policy.TelemetryOptions{ApplicationID: "azure-advisor"},
			},
		},
	}, nil
}

func (s *service) GetCredential() azcore.TokenCredential {
	return s.credential
}

func (s *service) GetSubscriptionID() string {
	return s.subscriptionID
}

func (s *service) GetClientOptions() *arm.ClientOptions {
	return s.clientOptions
}
