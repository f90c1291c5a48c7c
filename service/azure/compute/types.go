package azurecompute

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/elC0mpa/azure-advisor/model"
)

type service struct {
	subscriptionID string
	disksClient    *armcompute.DisksClient
	vmClient       *armcompute.VirtualMachinesClient
}

type ComputeService interface {
	// Generic interface methods (implements provider.ComputeService)
	ListVirtualMachines(ctx context.Context) ([]model.VirtualMachine, error)
	GetPowerState(ctx context.Context, resourceGroup, name string) (model.PowerState, error)
	DeallocateVM(ctx context.Context, resourceGroup, name string) error
	ListUnattachedDisks(ctx context.Context) ([]model.Disk, error)

	// Azure-specific methods for detailed information
	GetUnattachedDisks(ctx context.Context) ([]*armcompute.Disk, error)
}

// Credential is passed to allow reuse across services
type Credential = azcore.TokenCredential
