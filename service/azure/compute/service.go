package azurecompute

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/elC0mpa/azure-advisor/model"
)

const powerStatePrefix = "PowerState/"

func NewService(subscriptionID string, credential Credential, options *arm.ClientOptions) (*service, error) {
	disksClient, err := armcompute.NewDisksClient(subscriptionID, credential, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create disks client: %w", err)
	}

	vmClient, err := armcompute.NewVirtualMachinesClient(subscriptionID, credential, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create VM client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		disksClient:    disksClient,
		vmClient:       vmClient,
	}, nil
}

// ListVirtualMachines implements provider.ComputeService
func (s *service) ListVirtualMachines(ctx context.Context) ([]model.VirtualMachine, error) {
	var vms []model.VirtualMachine

	pager := s.vmClient.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list VMs: %w", err)
		}

		for _, vm := range page.Value {
			if vm.ID == nil {
				continue
			}

			descriptor, err := model.ParseResourceID(*vm.ID)
			if err != nil {
				continue
			}
			descriptor.DisplayName = deref(vm.Name)
			descriptor.Location = deref(vm.Location)

			size := "Unknown"
			if vm.Properties != nil && vm.Properties.HardwareProfile != nil && vm.Properties.HardwareProfile.VMSize != nil {
				size = string(*vm.Properties.HardwareProfile.VMSize)
			}

			vms = append(vms, model.VirtualMachine{
				Descriptor: descriptor,
				Size:       size,
			})
		}
	}

	return vms, nil
}

// GetPowerState reads the instance view and returns the PowerState/* status
func (s *service) GetPowerState(ctx context.Context, resourceGroup, name string) (model.PowerState, error) {
	instanceView, err := s.vmClient.InstanceView(ctx, resourceGroup, name, nil)
	if err != nil {
		return model.PowerStateUnknown, fmt.Errorf("failed to get instance view for %s: %w", name, err)
	}

	for _, status := range instanceView.Statuses {
		if status.Code != nil && strings.HasPrefix(*status.Code, powerStatePrefix) {
			return model.PowerState(strings.TrimPrefix(*status.Code, powerStatePrefix)), nil
		}
	}

	return model.PowerStateUnknown, nil
}

// DeallocateVM stops the VM, releases its compute and waits for the
// long-running operation to finish. The caller bounds it through ctx.
func (s *service) DeallocateVM(ctx context.Context, resourceGroup, name string) error {
	poller, err := s.vmClient.BeginDeallocate(ctx, resourceGroup, name, nil)
	if err != nil {
		return fmt.Errorf("failed to start deallocation of %s: %w", name, err)
	}

	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return fmt.Errorf("failed to deallocate %s: %w", name, err)
	}

	return nil
}

// ListUnattachedDisks implements provider.ComputeService
func (s *service) ListUnattachedDisks(ctx context.Context) ([]model.Disk, error) {
	disks, err := s.GetUnattachedDisks(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.Disk, 0, len(disks))
	for _, disk := range disks {
		if disk.ID == nil {
			continue
		}

		descriptor, err := model.ParseResourceID(*disk.ID)
		if err != nil {
			continue
		}
		descriptor.DisplayName = deref(disk.Name)
		descriptor.Location = deref(disk.Location)

		var sizeGB int32
		if disk.Properties != nil && disk.Properties.DiskSizeGB != nil {
			sizeGB = *disk.Properties.DiskSizeGB
		}

		sku := "Standard_LRS"
		if disk.SKU != nil && disk.SKU.Name != nil {
			sku = string(*disk.SKU.Name)
		}

		result = append(result, model.Disk{
			Descriptor: descriptor,
			SizeGB:     sizeGB,
			SKU:        sku,
			State:      string(armcompute.DiskStateUnattached),
		})
	}
	return result, nil
}

// GetUnattachedDisks returns all Managed Disks that are unattached
func (s *service) GetUnattachedDisks(ctx context.Context) ([]*armcompute.Disk, error) {
	var unattachedDisks []*armcompute.Disk

	pager := s.disksClient.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list disks: %w", err)
		}

		for _, disk := range page.Value {
			if disk.Properties != nil && disk.Properties.DiskState != nil &&
				*disk.Properties.DiskState == armcompute.DiskStateUnattached {
				unattachedDisks = append(unattachedDisks, disk)
			}
		}
	}

	return unattachedDisks, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
