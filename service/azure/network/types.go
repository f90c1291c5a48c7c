package azurenetwork

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v5"
	"github.com/elC0mpa/azure-advisor/model"
)

type service struct {
	subscriptionID string
	publicIPClient *armnetwork.PublicIPAddressesClient
}

type NetworkService interface {
	ListPublicIPs(ctx context.Context) ([]model.PublicIP, error)
	GetPublicIP(ctx context.Context, resourceGroup, name string) (*model.PublicIP, error)
	DeletePublicIP(ctx context.Context, resourceGroup, name string) error
}

// Credential is passed to allow reuse across services
type Credential = azcore.TokenCredential
