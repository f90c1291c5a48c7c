package model

// Finding is the raw output of an inspector before normalization.
type Finding interface {
	FindingCategory() Category
	Resource() ResourceDescriptor
}

type IdleVMFinding struct {
	VM VMUtilization
}

func (f IdleVMFinding) FindingCategory() Category    { return CategoryIdleVM }
func (f IdleVMFinding) Resource() ResourceDescriptor { return f.VM.Descriptor }

type UnattachedAddressFinding struct {
	Address        PublicIP
	MonthlyCostUSD float64
}

func (f UnattachedAddressFinding) FindingCategory() Category    { return CategoryIdleAddress }
func (f UnattachedAddressFinding) Resource() ResourceDescriptor { return f.Address.Descriptor }

type IdlePlanFinding struct {
	Plan       ServicePlan
	AppCount   int
	Estimate   PricingEntry
	TargetSKU  string
	TargetTier string
}

func (f IdlePlanFinding) FindingCategory() Category    { return CategoryIdleServicePlan }
func (f IdlePlanFinding) Resource() ResourceDescriptor { return f.Plan.Descriptor }

type UnattachedDiskFinding struct {
	Disk           Disk
	MonthlyCostUSD float64
}

func (f UnattachedDiskFinding) FindingCategory() Category    { return CategoryUnattachedDisk }
func (f UnattachedDiskFinding) Resource() ResourceDescriptor { return f.Disk.Descriptor }
