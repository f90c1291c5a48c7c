package azureidentity

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/elC0mpa/azure-advisor/model"
)

func NewService(subscriptionID string, credential Credential, options *arm.ClientOptions) (*service, error) {
	client, err := armsubscriptions.NewClient(credential, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriptions client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		client:         client,
	}, nil
}

// GetAccountInfo implements provider.IdentityService. It is also the
// authentication probe: a bad secret or unreachable endpoint fails here.
func (s *service) GetAccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	subscription, err := s.GetSubscriptionInfo(ctx)
	if err != nil {
		return nil, err
	}

	displayName := s.subscriptionID
	if subscription.DisplayName != nil {
		displayName = *subscription.DisplayName
	}

	state := "Unknown"
	if subscription.State != nil {
		state = string(*subscription.State)
	}

	return &model.AccountInfo{
		Provider:    "azure",
		AccountID:   s.subscriptionID,
		AccountName: displayName,
		State:       state,
	}, nil
}

// GetSubscriptionInfo returns detailed Azure subscription information
func (s *service) GetSubscriptionInfo(ctx context.Context) (*armsubscriptions.Subscription, error) {
	resp, err := s.client.Get(ctx, s.subscriptionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription info: %w", err)
	}

	return &resp.Subscription, nil
}
