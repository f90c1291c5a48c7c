package azurecostmanagement

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/costmanagement/armcostmanagement"
	"github.com/elC0mpa/azure-advisor/model"
)

type service struct {
	subscriptionID string
	client         *armcostmanagement.QueryClient
}

type CostManagementService interface {
	GetCostDetails(ctx context.Context, days int) (*model.CostDetails, error)
}

// Credential is passed to allow reuse across services
type Credential = azcore.TokenCredential
