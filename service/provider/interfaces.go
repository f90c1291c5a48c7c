package provider

import (
	"context"
	"time"

	"github.com/elC0mpa/azure-advisor/model"
)

// IdentityService resolves the subscription behind a credential bundle
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// ComputeService provides virtual machine and managed disk access
type ComputeService interface {
	ListVirtualMachines(ctx context.Context) ([]model.VirtualMachine, error)
	GetPowerState(ctx context.Context, resourceGroup, name string) (model.PowerState, error)
	DeallocateVM(ctx context.Context, resourceGroup, name string) error
	ListUnattachedDisks(ctx context.Context) ([]model.Disk, error)
}

// NetworkService provides public IP address access
type NetworkService interface {
	ListPublicIPs(ctx context.Context) ([]model.PublicIP, error)
	GetPublicIP(ctx context.Context, resourceGroup, name string) (*model.PublicIP, error)
	DeletePublicIP(ctx context.Context, resourceGroup, name string) error
}

// MonitorService provides metric time series
type MonitorService interface {
	GetMetricSamples(ctx context.Context, resourceID, metricName string, start, end time.Time, interval string) ([]model.UtilizationSample, error)
}

// AppService provides App Service plan and web app access
type AppService interface {
	ListPlans(ctx context.Context) ([]model.ServicePlan, error)
	GetPlan(ctx context.Context, resourceGroup, name string) (*model.ServicePlan, error)
	ListWebApps(ctx context.Context, resourceGroup string) ([]model.WebApp, error)
	CountPlanApps(ctx context.Context, resourceGroup, name string) (int, error)
	UpdatePlanSKU(ctx context.Context, resourceGroup, name string, sku model.PlanSKU) error
	DeletePlan(ctx context.Context, resourceGroup, name string) error
}

// CostService provides actual cost for the subscription
type CostService interface {
	GetCostDetails(ctx context.Context, days int) (*model.CostDetails, error)
}

// PriceSource returns raw price list items for one service in one region
type PriceSource interface {
	FetchPrices(ctx context.Context, serviceName, region, currency string) ([]model.RetailPriceItem, error)
}

// Clients groups the provider adapters built for one credential bundle.
type Clients struct {
	Identity   IdentityService
	Compute    ComputeService
	Network    NetworkService
	Monitor    MonitorService
	AppService AppService
	Cost       CostService
}

// ClientFactory builds fresh provider clients for every call.
type ClientFactory interface {
	NewClients(bundle model.CredentialBundle) (*Clients, error)
}
