package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elC0mpa/azure-advisor/cmd/mcp/response"
	"github.com/elC0mpa/azure-advisor/config"
	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/advisor"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const missingCredentials = "AZURE_TENANT_ID, AZURE_CLIENT_ID, AZURE_CLIENT_SECRET and AZURE_SUBSCRIPTION_ID environment variables are required"

// RegisterAzureTools registers all Azure tools with the MCP server
func RegisterAzureTools(s *server.MCPServer, advisorService advisor.AdvisorService, cfg *config.Config) {
	s.AddTool(
		mcp.NewTool("azure_get_subscription_info",
			mcp.WithDescription("Get Azure subscription details including ID, display name, and state."),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		makeSubscriptionInfoHandler(advisorService, cfg),
	)

	s.AddTool(
		mcp.NewTool("azure_list_recommendations",
			mcp.WithDescription("Inspect the subscription for idle VMs, unattached public IPs and disks, and App Service plans without apps. Returns recommendations sorted by estimated monthly savings."),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		makeRecommendationsHandler(advisorService, cfg),
	)

	s.AddTool(
		mcp.NewTool("azure_list_vms",
			mcp.WithDescription("List virtual machines with power state, average CPU over the lookback window and an idle verdict."),
			mcp.WithNumber("cpu_threshold", mcp.Description("Average CPU percentage below which a running VM is idle")),
			mcp.WithNumber("days", mcp.Description("Days of CPU history to average")),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		makeListVMsHandler(advisorService, cfg),
	)

	s.AddTool(
		mcp.NewTool("azure_list_service_plans",
			mcp.WithDescription("List App Service plans with their SKU and number of hosted apps."),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		makeServicePlansHandler(advisorService, cfg),
	)

	s.AddTool(
		mcp.NewTool("azure_get_pricing",
			mcp.WithDescription("Get App Service plan prices for a region from the Azure retail price list, falling back to a static table when it is unreachable."),
			mcp.WithString("region", mcp.Description("Azure region, e.g. westeurope")),
			mcp.WithString("currency", mcp.Description("USD, EUR or TRY")),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		makePricingHandler(advisorService, cfg),
	)

	s.AddTool(
		mcp.NewTool("azure_get_cost_details",
			mcp.WithDescription("Get actual cost for the last N days grouped by service and by resource group."),
			mcp.WithNumber("days", mcp.Description("Number of days to report, default 30")),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		makeCostDetailsHandler(advisorService, cfg),
	)

	s.AddTool(
		mcp.NewTool("azure_deallocate_vm",
			mcp.WithDescription("Deallocate a virtual machine so it stops accruing compute charges."),
			mcp.WithString("resource_id", mcp.Required(), mcp.Description("Full ARM id of the virtual machine")),
			mcp.WithDestructiveHintAnnotation(true),
		),
		makeDeallocateVMHandler(advisorService, cfg),
	)

	s.AddTool(
		mcp.NewTool("azure_update_plan_sku",
			mcp.WithDescription("Change the SKU of an App Service plan, e.g. down to F1."),
			mcp.WithString("resource_group", mcp.Required(), mcp.Description("Resource group of the plan")),
			mcp.WithString("plan_name", mcp.Required(), mcp.Description("Name of the plan")),
			mcp.WithString("sku", mcp.Description("Target SKU name, default F1")),
			mcp.WithString("tier", mcp.Description("Target tier, derived from the SKU when omitted")),
			mcp.WithNumber("capacity", mcp.Description("Instance count, default 1")),
			mcp.WithDestructiveHintAnnotation(true),
		),
		makeUpdatePlanSKUHandler(advisorService, cfg),
	)

	s.AddTool(
		mcp.NewTool("azure_delete_service_plan",
			mcp.WithDescription("Delete an App Service plan. Refuses when the plan still hosts apps."),
			mcp.WithString("resource_group", mcp.Required(), mcp.Description("Resource group of the plan")),
			mcp.WithString("plan_name", mcp.Required(), mcp.Description("Name of the plan")),
			mcp.WithDestructiveHintAnnotation(true),
		),
		makeDeletePlanHandler(advisorService, cfg),
	)

	s.AddTool(
		mcp.NewTool("azure_delete_public_ip",
			mcp.WithDescription("Delete a public IP address. Refuses when the address is still attached."),
			mcp.WithString("resource_id", mcp.Required(), mcp.Description("Full ARM id of the public IP address")),
			mcp.WithDestructiveHintAnnotation(true),
		),
		makeDeletePublicIPHandler(advisorService, cfg),
	)
}

func makeSubscriptionInfoHandler(advisorService advisor.AdvisorService, cfg *config.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !cfg.HasCredentials() {
			return mcp.NewToolResultError(missingCredentials), nil
		}

		info, err := advisorService.GetAccountInfo(ctx, cfg.Credentials)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get subscription info: %v", err)), nil
		}

		return jsonResult(response.ConvertAccountInfo(info))
	}
}

func makeRecommendationsHandler(advisorService advisor.AdvisorService, cfg *config.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !cfg.HasCredentials() {
			return mcp.NewToolResultError(missingCredentials), nil
		}

		recs, err := advisorService.ListRecommendations(ctx, cfg.Credentials)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list recommendations: %v", err)), nil
		}

		return jsonResult(response.ConvertRecommendations(recs))
	}
}

func makeListVMsHandler(advisorService advisor.AdvisorService, cfg *config.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !cfg.HasCredentials() {
			return mcp.NewToolResultError(missingCredentials), nil
		}

		threshold := request.GetFloat("cpu_threshold", cfg.IdleVM.CPUThreshold)
		days := request.GetInt("days", cfg.IdleVM.LookbackDays)
		if threshold <= 0 || threshold > 100 || days <= 0 {
			return mcp.NewToolResultError("cpu_threshold must be in (0, 100] and days must be positive"), nil
		}

		vms, err := advisorService.ListVMs(ctx, cfg.Credentials, threshold, days)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list virtual machines: %v", err)), nil
		}

		return jsonResult(response.ConvertVMs(vms, threshold, days))
	}
}

func makeServicePlansHandler(advisorService advisor.AdvisorService, cfg *config.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !cfg.HasCredentials() {
			return mcp.NewToolResultError(missingCredentials), nil
		}

		plans, err := advisorService.ListServicePlans(ctx, cfg.Credentials)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list App Service plans: %v", err)), nil
		}

		return jsonResult(response.ConvertServicePlans(plans))
	}
}

func makePricingHandler(advisorService advisor.AdvisorService, cfg *config.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		region := request.GetString("region", cfg.Region)
		currency := request.GetString("currency", cfg.Currency)

		table, err := advisorService.ResolvePricing(ctx, region, currency)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve pricing: %v", err)), nil
		}

		return jsonResult(table)
	}
}

func makeCostDetailsHandler(advisorService advisor.AdvisorService, cfg *config.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !cfg.HasCredentials() {
			return mcp.NewToolResultError(missingCredentials), nil
		}

		days := request.GetInt("days", 30)
		if days <= 0 {
			return mcp.NewToolResultError("days must be positive"), nil
		}

		details, err := advisorService.GetCostDetails(ctx, cfg.Credentials, days)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get cost details: %v", err)), nil
		}

		return jsonResult(response.ConvertCostDetails(details))
	}
}

func makeDeallocateVMHandler(advisorService advisor.AdvisorService, cfg *config.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !cfg.HasCredentials() {
			return mcp.NewToolResultError(missingCredentials), nil
		}

		resourceID, err := request.RequireString("resource_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return remediationResult(advisorService.DeallocateVM(ctx, cfg.Credentials, resourceID))
	}
}

func makeUpdatePlanSKUHandler(advisorService advisor.AdvisorService, cfg *config.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !cfg.HasCredentials() {
			return mcp.NewToolResultError(missingCredentials), nil
		}

		resourceGroup, err := request.RequireString("resource_group")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		planName, err := request.RequireString("plan_name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		target := model.PlanSKU{
			Name:     request.GetString("sku", cfg.ServicePlan.TargetSKU),
			Tier:     request.GetString("tier", ""),
			Capacity: int32(request.GetInt("capacity", 1)), // #nosec G115 -- instance counts are small
		}

		return remediationResult(advisorService.UpdatePlanSKU(ctx, cfg.Credentials, resourceGroup, planName, target))
	}
}

func makeDeletePlanHandler(advisorService advisor.AdvisorService, cfg *config.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !cfg.HasCredentials() {
			return mcp.NewToolResultError(missingCredentials), nil
		}

		resourceGroup, err := request.RequireString("resource_group")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		planName, err := request.RequireString("plan_name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return remediationResult(advisorService.DeletePlan(ctx, cfg.Credentials, resourceGroup, planName))
	}
}

func makeDeletePublicIPHandler(advisorService advisor.AdvisorService, cfg *config.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !cfg.HasCredentials() {
			return mcp.NewToolResultError(missingCredentials), nil
		}

		resourceID, err := request.RequireString("resource_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return remediationResult(advisorService.DeletePublicIP(ctx, cfg.Credentials, resourceID))
	}
}

// remediationResult marks a failed action as a tool error while still
// returning the structured result.
func remediationResult(result model.RemediationResult) (*mcp.CallToolResult, error) {
	data, _ := json.MarshalIndent(result, "", "  ")
	if !result.Success {
		return mcp.NewToolResultError(string(data)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
