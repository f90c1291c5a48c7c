package azurenetwork

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v5"
	"github.com/elC0mpa/azure-advisor/model"
)

func NewService(subscriptionID string, credential Credential, options *arm.ClientOptions) (*service, error) {
	publicIPClient, err := armnetwork.NewPublicIPAddressesClient(subscriptionID, credential, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create public IP client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		publicIPClient: publicIPClient,
	}, nil
}

// ListPublicIPs returns every public IP address of the subscription,
// attached or not. Classification is left to the caller.
func (s *service) ListPublicIPs(ctx context.Context) ([]model.PublicIP, error) {
	var result []model.PublicIP

	pager := s.publicIPClient.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list public IPs: %w", err)
		}

		for _, ip := range page.Value {
			if converted, ok := convertPublicIP(ip); ok {
				result = append(result, converted)
			}
		}
	}

	return result, nil
}

func (s *service) GetPublicIP(ctx context.Context, resourceGroup, name string) (*model.PublicIP, error) {
	resp, err := s.publicIPClient.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get public IP %s: %w", name, err)
	}

	converted, ok := convertPublicIP(&resp.PublicIPAddress)
	if !ok {
		return nil, fmt.Errorf("public IP %s has no valid resource id", name)
	}
	return &converted, nil
}

func (s *service) DeletePublicIP(ctx context.Context, resourceGroup, name string) error {
	poller, err := s.publicIPClient.BeginDelete(ctx, resourceGroup, name, nil)
	if err != nil {
		return fmt.Errorf("failed to start deletion of public IP %s: %w", name, err)
	}

	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return fmt.Errorf("failed to delete public IP %s: %w", name, err)
	}
	return nil
}

func convertPublicIP(ip *armnetwork.PublicIPAddress) (model.PublicIP, bool) {
	if ip == nil || ip.ID == nil {
		return model.PublicIP{}, false
	}

	descriptor, err := model.ParseResourceID(*ip.ID)
	if err != nil {
		return model.PublicIP{}, false
	}
	if ip.Name != nil {
		descriptor.DisplayName = *ip.Name
	}
	if ip.Location != nil {
		descriptor.Location = *ip.Location
	}

	result := model.PublicIP{
		Descriptor:       descriptor,
		AllocationMethod: "Unknown",
	}

	if ip.SKU != nil && ip.SKU.Name != nil {
		result.SKU = string(*ip.SKU.Name)
	}

	if ip.Properties != nil {
		if ip.Properties.IPAddress != nil {
			result.IPAddress = *ip.Properties.IPAddress
		}
		if ip.Properties.PublicIPAllocationMethod != nil {
			result.AllocationMethod = string(*ip.Properties.PublicIPAllocationMethod)
		}
		// A Public IP is unassociated if IPConfiguration is nil
		if ip.Properties.IPConfiguration != nil {
			result.IPConfigurationID = "attached"
			if ip.Properties.IPConfiguration.ID != nil {
				result.IPConfigurationID = *ip.Properties.IPConfiguration.ID
			}
		}
	}

	return result, true
}
