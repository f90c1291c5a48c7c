package providertest

import (
	"fmt"
	"strings"

	"github.com/elC0mpa/azure-advisor/model"
)

const SubscriptionID = "00000000-0000-0000-0000-000000000001"

func Bundle() model.CredentialBundle {
	return model.CredentialBundle{
		TenantID:       "tenant",
		ClientID:       "client",
		ClientSecret:   "secret",
		SubscriptionID: SubscriptionID,
	}
}

func ResourceID(resourceGroup, fullType, name string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/%s/%s", SubscriptionID, resourceGroup, fullType, name)
}

func descriptor(resourceGroup, fullType, name string) model.ResourceDescriptor {
	d, err := model.ParseResourceID(ResourceID(resourceGroup, fullType, name))
	if err != nil {
		panic(err)
	}
	d.Location = "westeurope"
	return d
}

func VM(resourceGroup, name string) model.VirtualMachine {
	return model.VirtualMachine{Descriptor: descriptor(resourceGroup, model.TypeVirtualMachine, name), Size: "Standard_B2s"}
}

func PublicIP(resourceGroup, name string, attached bool) model.PublicIP {
	ip := model.PublicIP{
		Descriptor:       descriptor(resourceGroup, model.TypePublicIPAddress, name),
		IPAddress:        "20.1.2.3",
		AllocationMethod: "Static",
		SKU:              "Standard",
	}
	if attached {
		ip.IPConfigurationID = ResourceID(resourceGroup, "Microsoft.Network/networkInterfaces", name+"-nic") + "/ipConfigurations/ipconfig1"
	}
	return ip
}

func Plan(resourceGroup, name, sku string) model.ServicePlan {
	return model.ServicePlan{
		Descriptor: descriptor(resourceGroup, model.TypeServicePlan, name),
		SKU:        model.PlanSKU{Name: sku, Tier: tierOf(sku), Size: sku, Capacity: 1},
	}
}

// App returns a web app hosted on plan. The plan id case is flipped to
// exercise case-insensitive matching.
func App(plan model.ServicePlan, name string) model.WebApp {
	return model.WebApp{
		ID:           ResourceID(plan.Descriptor.ResourceGroup, "Microsoft.Web/sites", name),
		Name:         name,
		ServerFarmID: strings.ToLower(plan.Descriptor.ID),
	}
}

func Disk(resourceGroup, name, sku string, sizeGB int32) model.Disk {
	return model.Disk{
		Descriptor: descriptor(resourceGroup, model.TypeDisk, name),
		SizeGB:     sizeGB,
		SKU:        sku,
		State:      "Unattached",
	}
}

// CPU returns daily samples with the given averages.
func CPU(values ...float64) []model.UtilizationSample {
	samples := make([]model.UtilizationSample, 0, len(values))
	for _, v := range values {
		samples = append(samples, model.UtilizationSample{Average: &v})
	}
	return samples
}

func tierOf(sku string) string {
	switch {
	case sku == "F1":
		return "Free"
	case strings.HasPrefix(sku, "B"):
		return "Basic"
	case strings.HasPrefix(sku, "S"):
		return "Standard"
	default:
		return "Premium"
	}
}

func (sub *Subscription) SetCPU(vm model.VirtualMachine, values ...float64) {
	if sub.CPU == nil {
		sub.CPU = make(map[string][]model.UtilizationSample)
	}
	sub.CPU[strings.ToLower(vm.Descriptor.ID)] = CPU(values...)
}

func (sub *Subscription) SetPowerState(vm model.VirtualMachine, state model.PowerState) {
	if sub.PowerStates == nil {
		sub.PowerStates = make(map[string]model.PowerState)
	}
	sub.PowerStates[key(vm.Descriptor.ResourceGroup, vm.Descriptor.Name)] = state
}

func (sub *Subscription) SetPowerErr(vm model.VirtualMachine, err error) {
	if sub.PowerErr == nil {
		sub.PowerErr = make(map[string]error)
	}
	sub.PowerErr[key(vm.Descriptor.ResourceGroup, vm.Descriptor.Name)] = err
}

func (sub *Subscription) SetCPUErr(vm model.VirtualMachine, err error) {
	if sub.CPUErr == nil {
		sub.CPUErr = make(map[string]error)
	}
	sub.CPUErr[strings.ToLower(vm.Descriptor.ID)] = err
}
