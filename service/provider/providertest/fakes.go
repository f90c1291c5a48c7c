// Package providertest provides in-memory provider clients for tests.
package providertest

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/provider"
)

var ErrNotFound = errors.New("not found")

// Subscription is an in-memory subscription shared by every fake client.
type Subscription struct {
	mu sync.Mutex

	Account     model.AccountInfo
	IdentityErr error

	VMs         []model.VirtualMachine
	PowerStates map[string]model.PowerState
	VMListErr   error
	PowerErr    map[string]error
	Deallocated []string
	DeallocErr  error
	Delay       time.Duration

	Disks       []model.Disk
	DiskListErr error

	Addresses     []model.PublicIP
	AddressErr    error
	DeletedIPs    []string
	DeleteIPErr   error
	GetAddressErr error

	CPU       map[string][]model.UtilizationSample
	CPUErr    map[string]error
	CPUCalls  int
	MetricErr error

	Plans        []model.ServicePlan
	PlanListErr  error
	Apps         []model.WebApp
	AppsErr      error
	AppListCalls int
	SKUUpdates   []model.PlanSKU
	UpdateErr    error
	DeletedPlans []string
	DeleteErr    error

	Cost    *model.CostDetails
	CostErr error
}

// Clients wires every fake against sub.
func (sub *Subscription) Clients() *provider.Clients {
	return &provider.Clients{
		Identity:   identity{sub},
		Compute:    compute{sub},
		Network:    network{sub},
		Monitor:    monitor{sub},
		AppService: appService{sub},
		Cost:       cost{sub},
	}
}

// Factory returns the same fake subscription for every bundle.
type Factory struct {
	Sub *Subscription
	Err error

	mu      sync.Mutex
	Bundles []model.CredentialBundle
}

func (f *Factory) NewClients(bundle model.CredentialBundle) (*provider.Clients, error) {
	f.mu.Lock()
	f.Bundles = append(f.Bundles, bundle)
	f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	if err := bundle.Validate(); err != nil {
		return nil, err
	}
	return f.Sub.Clients(), nil
}

func key(resourceGroup, name string) string {
	return strings.ToLower(resourceGroup + "/" + name)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type identity struct{ sub *Subscription }

func (f identity) GetAccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	if f.sub.IdentityErr != nil {
		return nil, f.sub.IdentityErr
	}
	info := f.sub.Account
	return &info, nil
}

type compute struct{ sub *Subscription }

func (f compute) ListVirtualMachines(ctx context.Context) ([]model.VirtualMachine, error) {
	if f.sub.VMListErr != nil {
		return nil, f.sub.VMListErr
	}
	return f.sub.VMs, nil
}

func (f compute) GetPowerState(ctx context.Context, resourceGroup, name string) (model.PowerState, error) {
	if err := f.sub.PowerErr[key(resourceGroup, name)]; err != nil {
		return model.PowerStateUnknown, err
	}
	state, ok := f.sub.PowerStates[key(resourceGroup, name)]
	if !ok {
		return model.PowerStateRunning, nil
	}
	return state, nil
}

func (f compute) DeallocateVM(ctx context.Context, resourceGroup, name string) error {
	if err := sleep(ctx, f.sub.Delay); err != nil {
		return err
	}
	if f.sub.DeallocErr != nil {
		return f.sub.DeallocErr
	}
	f.sub.mu.Lock()
	defer f.sub.mu.Unlock()
	f.sub.Deallocated = append(f.sub.Deallocated, key(resourceGroup, name))
	return nil
}

func (f compute) ListUnattachedDisks(ctx context.Context) ([]model.Disk, error) {
	if f.sub.DiskListErr != nil {
		return nil, f.sub.DiskListErr
	}
	return f.sub.Disks, nil
}

type network struct{ sub *Subscription }

func (f network) ListPublicIPs(ctx context.Context) ([]model.PublicIP, error) {
	if f.sub.AddressErr != nil {
		return nil, f.sub.AddressErr
	}
	return f.sub.Addresses, nil
}

func (f network) GetPublicIP(ctx context.Context, resourceGroup, name string) (*model.PublicIP, error) {
	if f.sub.GetAddressErr != nil {
		return nil, f.sub.GetAddressErr
	}
	for _, ip := range f.sub.Addresses {
		if key(ip.Descriptor.ResourceGroup, ip.Descriptor.Name) == key(resourceGroup, name) {
			found := ip
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (f network) DeletePublicIP(ctx context.Context, resourceGroup, name string) error {
	if f.sub.DeleteIPErr != nil {
		return f.sub.DeleteIPErr
	}
	f.sub.mu.Lock()
	defer f.sub.mu.Unlock()
	f.sub.DeletedIPs = append(f.sub.DeletedIPs, key(resourceGroup, name))
	return nil
}

type monitor struct{ sub *Subscription }

func (f monitor) GetMetricSamples(ctx context.Context, resourceID, metricName string, start, end time.Time, interval string) ([]model.UtilizationSample, error) {
	f.sub.mu.Lock()
	f.sub.CPUCalls++
	f.sub.mu.Unlock()

	if f.sub.MetricErr != nil {
		return nil, f.sub.MetricErr
	}
	if err := f.sub.CPUErr[strings.ToLower(resourceID)]; err != nil {
		return nil, err
	}
	return f.sub.CPU[strings.ToLower(resourceID)], nil
}

type appService struct{ sub *Subscription }

func (f appService) ListPlans(ctx context.Context) ([]model.ServicePlan, error) {
	if f.sub.PlanListErr != nil {
		return nil, f.sub.PlanListErr
	}
	f.sub.mu.Lock()
	defer f.sub.mu.Unlock()
	return append([]model.ServicePlan(nil), f.sub.Plans...), nil
}

func (f appService) GetPlan(ctx context.Context, resourceGroup, name string) (*model.ServicePlan, error) {
	f.sub.mu.Lock()
	defer f.sub.mu.Unlock()
	for _, plan := range f.sub.Plans {
		if key(plan.Descriptor.ResourceGroup, plan.Descriptor.Name) == key(resourceGroup, name) {
			found := plan
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (f appService) ListWebApps(ctx context.Context, resourceGroup string) ([]model.WebApp, error) {
	f.sub.mu.Lock()
	f.sub.AppListCalls++
	f.sub.mu.Unlock()
	if f.sub.AppsErr != nil {
		return nil, f.sub.AppsErr
	}
	var apps []model.WebApp
	for _, app := range f.sub.Apps {
		d, err := model.ParseResourceID(app.ID)
		if err == nil && !strings.EqualFold(d.ResourceGroup, resourceGroup) {
			continue
		}
		apps = append(apps, app)
	}
	return apps, nil
}

func (f appService) CountPlanApps(ctx context.Context, resourceGroup, name string) (int, error) {
	if f.sub.AppsErr != nil {
		return 0, f.sub.AppsErr
	}
	plan, err := f.GetPlan(ctx, resourceGroup, name)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, app := range f.sub.Apps {
		if strings.EqualFold(app.ServerFarmID, plan.Descriptor.ID) {
			count++
		}
	}
	return count, nil
}

func (f appService) UpdatePlanSKU(ctx context.Context, resourceGroup, name string, sku model.PlanSKU) error {
	if f.sub.UpdateErr != nil {
		return f.sub.UpdateErr
	}
	f.sub.mu.Lock()
	defer f.sub.mu.Unlock()
	for i, plan := range f.sub.Plans {
		if key(plan.Descriptor.ResourceGroup, plan.Descriptor.Name) == key(resourceGroup, name) {
			f.sub.Plans[i].SKU = sku
			f.sub.SKUUpdates = append(f.sub.SKUUpdates, sku)
			return nil
		}
	}
	return ErrNotFound
}

func (f appService) DeletePlan(ctx context.Context, resourceGroup, name string) error {
	if f.sub.DeleteErr != nil {
		return f.sub.DeleteErr
	}
	f.sub.mu.Lock()
	defer f.sub.mu.Unlock()
	f.sub.DeletedPlans = append(f.sub.DeletedPlans, key(resourceGroup, name))
	return nil
}

type cost struct{ sub *Subscription }

func (f cost) GetCostDetails(ctx context.Context, days int) (*model.CostDetails, error) {
	if f.sub.CostErr != nil {
		return nil, f.sub.CostErr
	}
	if f.sub.Cost == nil {
		return &model.CostDetails{Currency: "USD"}, nil
	}
	details := *f.sub.Cost
	return &details, nil
}
