package azurecostmanagement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/costmanagement/armcostmanagement"
	"github.com/elC0mpa/azure-advisor/model"
)

const (
	dimensionService       = "ServiceName"
	dimensionResourceGroup = "ResourceGroupName"
)

func NewService(subscriptionID string, credential Credential, options *arm.ClientOptions) (*service, error) {
	client, err := armcostmanagement.NewQueryClient(credential, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create cost management client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		client:         client,
	}, nil
}

// GetCostDetails returns actual cost of the last `days` days grouped by
// service and by resource group.
func (s *service) GetCostDetails(ctx context.Context, days int) (*model.CostDetails, error) {
	if days <= 0 {
		days = 30
	}

	endDate := time.Now().UTC()
	startDate := endDate.AddDate(0, 0, -days)

	byService, currency, err := s.queryGrouped(ctx, startDate, endDate, dimensionService)
	if err != nil {
		return nil, err
	}

	byResourceGroup, _, err := s.queryGrouped(ctx, startDate, endDate, dimensionResourceGroup)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, amount := range byService {
		total += amount
	}

	return &model.CostDetails{
		TotalCost:            total,
		Currency:             currency,
		CostsByService:       byService,
		CostsByResourceGroup: byResourceGroup,
		FromDate:             startDate.Format(time.RFC3339),
		ToDate:               endDate.Format(time.RFC3339),
	}, nil
}

func (s *service) queryGrouped(ctx context.Context, startDate, endDate time.Time, dimension string) (map[string]float64, string, error) {
	scope := fmt.Sprintf("/subscriptions/%s", s.subscriptionID)

	queryDefinition := armcostmanagement.QueryDefinition{
		Type:      to.Ptr(armcostmanagement.ExportTypeActualCost),
		Timeframe: to.Ptr(armcostmanagement.TimeframeTypeCustom),
		TimePeriod: &armcostmanagement.QueryTimePeriod{
			From: to.Ptr(startDate),
			To:   to.Ptr(endDate),
		},
		Dataset: &armcostmanagement.QueryDataset{
			Aggregation: map[string]*armcostmanagement.QueryAggregation{
				"totalCost": {
					Name:     to.Ptr("Cost"),
					Function: to.Ptr(armcostmanagement.FunctionTypeSum),
				},
			},
			Grouping: []*armcostmanagement.QueryGrouping{
				{
					Type: to.Ptr(armcostmanagement.QueryColumnTypeDimension),
					Name: to.Ptr(dimension),
				},
			},
		},
	}

	resp, err := s.client.Usage(ctx, scope, queryDefinition, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query costs by %s: %w", dimension, err)
	}

	costs := make(map[string]float64)
	currency := "USD"
	if resp.Properties == nil {
		return costs, currency, nil
	}

	costIdx, groupIdx, currencyIdx := columnIndexes(resp.Properties.Columns, dimension)
	if costIdx < 0 || groupIdx < 0 {
		return nil, "", fmt.Errorf("cost query by %s returned unexpected columns", dimension)
	}

	for _, row := range resp.Properties.Rows {
		if len(row) <= costIdx || len(row) <= groupIdx {
			continue
		}
		cost, ok := row[costIdx].(float64)
		if !ok {
			continue
		}
		name, ok := row[groupIdx].(string)
		if !ok || name == "" {
			name = "(none)"
		}
		costs[name] += cost

		if currencyIdx >= 0 && len(row) > currencyIdx {
			if c, ok := row[currencyIdx].(string); ok && c != "" {
				currency = c
			}
		}
	}

	return costs, currency, nil
}

func columnIndexes(columns []*armcostmanagement.QueryColumn, dimension string) (cost, group, currency int) {
	cost, group, currency = -1, -1, -1
	for i, column := range columns {
		if column == nil || column.Name == nil {
			continue
		}
		switch {
		case strings.EqualFold(*column.Name, "Cost"), strings.EqualFold(*column.Name, "PreTaxCost"):
			cost = i
		case strings.EqualFold(*column.Name, dimension):
			group = i
		case strings.EqualFold(*column.Name, "Currency"):
			currency = i
		}
	}
	return cost, group, currency
}
