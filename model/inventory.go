package model

type PowerState string

const (
	PowerStateRunning     PowerState = "running"
	PowerStateStopped     PowerState = "stopped"
	PowerStateDeallocated PowerState = "deallocated"
	PowerStateUnknown     PowerState = "unknown"
)

type VirtualMachine struct {
	Descriptor ResourceDescriptor
	Size       string
}

type PublicIP struct {
	Descriptor       ResourceDescriptor
	IPAddress        string
	AllocationMethod string
	SKU              string
	// IPConfigurationID is empty when the address is not bound to any NIC,
	// load balancer or gateway.
	IPConfigurationID string
}

func (p PublicIP) Attached() bool {
	return p.IPConfigurationID != ""
}

// PlanSKU mirrors the SKU description of an App Service plan.
type PlanSKU struct {
	Name     string `json:"name"`
	Tier     string `json:"tier"`
	Family   string `json:"family,omitempty"`
	Size     string `json:"size,omitempty"`
	Capacity int32  `json:"capacity"`
}

type ServicePlan struct {
	Descriptor    ResourceDescriptor `json:"descriptor"`
	SKU           PlanSKU            `json:"sku"`
	NumberOfSites int32              `json:"number_of_sites"`
}

type WebApp struct {
	ID           string
	Name         string
	ServerFarmID string
}

type Disk struct {
	Descriptor ResourceDescriptor
	SizeGB     int32
	SKU        string
	State      string
}
