package azureappservice

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
	"github.com/elC0mpa/azure-advisor/model"
)

func NewService(subscriptionID string, credential Credential, options *arm.ClientOptions) (*service, error) {
	plansClient, err := armappservice.NewPlansClient(subscriptionID, credential, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create app service plans client: %w", err)
	}

	webAppsClient, err := armappservice.NewWebAppsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create web apps client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		plansClient:    plansClient,
		webAppsClient:  webAppsClient,
	}, nil
}

// ListPlans returns every App Service plan of the subscription
func (s *service) ListPlans(ctx context.Context) ([]model.ServicePlan, error) {
	var plans []model.ServicePlan

	pager := s.plansClient.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list app service plans: %w", err)
		}

		for _, plan := range page.Value {
			if converted, ok := convertPlan(plan); ok {
				plans = append(plans, converted)
			}
		}
	}

	return plans, nil
}

func (s *service) GetPlan(ctx context.Context, resourceGroup, name string) (*model.ServicePlan, error) {
	resp, err := s.plansClient.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get app service plan %s: %w", name, err)
	}

	converted, ok := convertPlan(&resp.Plan)
	if !ok {
		return nil, fmt.Errorf("app service plan %s has no valid resource id", name)
	}
	return &converted, nil
}

// ListWebApps returns the web apps of one resource group with their parent plan id
func (s *service) ListWebApps(ctx context.Context, resourceGroup string) ([]model.WebApp, error) {
	var apps []model.WebApp

	pager := s.webAppsClient.NewListByResourceGroupPager(resourceGroup, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list web apps in %s: %w", resourceGroup, err)
		}

		for _, site := range page.Value {
			if site == nil {
				continue
			}
			app := model.WebApp{}
			if site.ID != nil {
				app.ID = *site.ID
			}
			if site.Name != nil {
				app.Name = *site.Name
			}
			if site.Properties != nil && site.Properties.ServerFarmID != nil {
				app.ServerFarmID = *site.Properties.ServerFarmID
			}
			apps = append(apps, app)
		}
	}

	return apps, nil
}

// CountPlanApps counts the apps hosted by a plan through the plan's own
// web app listing.
func (s *service) CountPlanApps(ctx context.Context, resourceGroup, name string) (int, error) {
	count := 0

	pager := s.plansClient.NewListWebAppsPager(resourceGroup, name, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to list web apps of plan %s: %w", name, err)
		}
		count += len(page.Value)
	}

	return count, nil
}

// UpdatePlanSKU rewrites the SKU of an existing plan, keeping its location
// and properties, and waits for the operation to finish.
func (s *service) UpdatePlanSKU(ctx context.Context, resourceGroup, name string, sku model.PlanSKU) error {
	current, err := s.plansClient.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return fmt.Errorf("failed to get app service plan %s: %w", name, err)
	}

	plan := current.Plan
	plan.SKU = &armappservice.SKUDescription{
		Name:     to.Ptr(sku.Name),
		Tier:     to.Ptr(sku.Tier),
		Capacity: to.Ptr(sku.Capacity),
	}
	if sku.Family != "" {
		plan.SKU.Family = to.Ptr(sku.Family)
	}
	if sku.Size != "" {
		plan.SKU.Size = to.Ptr(sku.Size)
	}

	poller, err := s.plansClient.BeginCreateOrUpdate(ctx, resourceGroup, name, plan, nil)
	if err != nil {
		return fmt.Errorf("failed to start SKU update of %s: %w", name, err)
	}

	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return fmt.Errorf("failed to update SKU of %s: %w", name, err)
	}
	return nil
}

func (s *service) DeletePlan(ctx context.Context, resourceGroup, name string) error {
	if _, err := s.plansClient.Delete(ctx, resourceGroup, name, nil); err != nil {
		return fmt.Errorf("failed to delete app service plan %s: %w", name, err)
	}
	return nil
}

func convertPlan(plan *armappservice.Plan) (model.ServicePlan, bool) {
	if plan == nil || plan.ID == nil {
		return model.ServicePlan{}, false
	}

	descriptor, err := model.ParseResourceID(*plan.ID)
	if err != nil {
		return model.ServicePlan{}, false
	}
	if plan.Name != nil {
		descriptor.DisplayName = *plan.Name
	}
	if plan.Location != nil {
		descriptor.Location = *plan.Location
	}

	result := model.ServicePlan{
		Descriptor: descriptor,
		SKU:        model.PlanSKU{Name: "Unknown", Tier: "Unknown"},
	}

	if plan.SKU != nil {
		if plan.SKU.Name != nil {
			result.SKU.Name = *plan.SKU.Name
		}
		if plan.SKU.Tier != nil {
			result.SKU.Tier = *plan.SKU.Tier
		}
		if plan.SKU.Family != nil {
			result.SKU.Family = *plan.SKU.Family
		}
		if plan.SKU.Size != nil {
			result.SKU.Size = *plan.SKU.Size
		}
		if plan.SKU.Capacity != nil {
			result.SKU.Capacity = *plan.SKU.Capacity
		}
	}

	if plan.Properties != nil && plan.Properties.NumberOfSites != nil {
		result.NumberOfSites = *plan.Properties.NumberOfSites
	}

	return result, true
}
