package remediation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/pricing"
	"github.com/elC0mpa/azure-advisor/service/provider"
	"github.com/elC0mpa/azure-advisor/telemetry"
	"github.com/rs/zerolog"
)

func NewService(timeout time.Duration, logger zerolog.Logger) *service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &service{
		timeout: timeout,
		logger:  logger.With().Str("component", "remediation").Logger(),
	}
}

// DeallocateVM stops the VM and releases its compute allocation. Disks and
// configuration are kept.
func (s *service) DeallocateVM(ctx context.Context, clients *provider.Clients, resourceID string) model.RemediationResult {
	d, err := model.ParseResourceIDOfType(resourceID, model.TypeVirtualMachine)
	if err != nil {
		return s.finish(ActionDeallocateVM, resourceID, model.Failed(err.Error()))
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := clients.Compute.DeallocateVM(ctx, d.ResourceGroup, d.Name); err != nil {
		return s.finish(ActionDeallocateVM, resourceID, model.Failed(s.describe(ctx, fmt.Sprintf("failed to deallocate VM %s", d.Name), err)))
	}

	return s.finish(ActionDeallocateVM, resourceID, model.Succeeded(
		fmt.Sprintf("VM %s was stopped and deallocated", d.Name),
		map[string]any{"resource_id": d.ID, "resource_group": d.ResourceGroup, "name": d.Name},
	))
}

// NormalizeSKU fills the optional parts of a target SKU: capacity 1, size
// equal to the name, family from the name's leading letters and tier from
// the pricing catalog.
func NormalizeSKU(target model.PlanSKU) model.PlanSKU {
	target.Name = strings.TrimSpace(target.Name)
	if target.Capacity <= 0 {
		target.Capacity = 1
	}
	if target.Size == "" {
		target.Size = target.Name
	}
	if target.Family == "" {
		target.Family = target.Name
		if i := strings.IndexFunc(target.Name, unicode.IsDigit); i > 0 {
			target.Family = target.Name[:i]
		}
	}
	if target.Tier == "" {
		if tier, ok := pricing.Tier(target.Name); ok {
			target.Tier = tier
		}
	}
	return target
}

// UpdatePlanSKU moves a plan to target. A plan already at target is reported
// as a success without issuing an update.
func (s *service) UpdatePlanSKU(ctx context.Context, clients *provider.Clients, resourceGroup, planName string, target model.PlanSKU) model.RemediationResult {
	subject := resourceGroup + "/" + planName
	if resourceGroup == "" || planName == "" {
		return s.finish(ActionUpdatePlanSKU, subject, model.Failed("resource group and plan name are required"))
	}
	if strings.TrimSpace(target.Name) == "" {
		return s.finish(ActionUpdatePlanSKU, subject, model.Failed("target sku name is required"))
	}
	target = NormalizeSKU(target)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	plan, err := clients.AppService.GetPlan(ctx, resourceGroup, planName)
	if err != nil {
		return s.finish(ActionUpdatePlanSKU, subject, model.Failed(s.describe(ctx, fmt.Sprintf("failed to read app service plan %s", planName), err)))
	}

	details := map[string]any{
		"resource_id":  plan.Descriptor.ID,
		"previous_sku": plan.SKU.Name,
		"target_sku":   target.Name,
		"target_tier":  target.Tier,
		"capacity":     target.Capacity,
	}

	if sameSKU(plan.SKU, target) {
		details["changed"] = false
		return s.finish(ActionUpdatePlanSKU, subject, model.Succeeded(
			fmt.Sprintf("App Service plan %s is already on %s", planName, target.Name), details,
		))
	}

	if err := clients.AppService.UpdatePlanSKU(ctx, resourceGroup, planName, target); err != nil {
		return s.finish(ActionUpdatePlanSKU, subject, model.Failed(s.describe(ctx, fmt.Sprintf("failed to update app service plan %s to %s", planName, target.Name), err)))
	}

	details["changed"] = true
	return s.finish(ActionUpdatePlanSKU, subject, model.Succeeded(
		fmt.Sprintf("App Service plan %s moved from %s to %s", planName, plan.SKU.Name, target.Name), details,
	))
}

// DeletePlan deletes an App Service plan that hosts no applications.
func (s *service) DeletePlan(ctx context.Context, clients *provider.Clients, resourceGroup, planName string) model.RemediationResult {
	subject := resourceGroup + "/" + planName
	if resourceGroup == "" || planName == "" {
		return s.finish(ActionDeletePlan, subject, model.Failed("resource group and plan name are required"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	plan, err := clients.AppService.GetPlan(ctx, resourceGroup, planName)
	if err != nil {
		return s.finish(ActionDeletePlan, subject, model.Failed(s.describe(ctx, fmt.Sprintf("failed to read app service plan %s", planName), err)))
	}

	count, err := clients.AppService.CountPlanApps(ctx, resourceGroup, planName)
	if err != nil {
		return s.finish(ActionDeletePlan, subject, model.Failed(s.describe(ctx, fmt.Sprintf("failed to count applications on plan %s, not deleting", planName), err)))
	}
	if int(plan.NumberOfSites) > count {
		count = int(plan.NumberOfSites)
	}
	if count > 0 {
		result := model.Failed(fmt.Sprintf("App Service plan %s hosts %d application(s) and cannot be deleted", planName, count))
		result.Details = map[string]any{"app_count": count, "resource_id": plan.Descriptor.ID}
		return s.finish(ActionDeletePlan, subject, result)
	}

	if err := clients.AppService.DeletePlan(ctx, resourceGroup, planName); err != nil {
		return s.finish(ActionDeletePlan, subject, model.Failed(s.describe(ctx, fmt.Sprintf("failed to delete app service plan %s", planName), err)))
	}

	return s.finish(ActionDeletePlan, subject, model.Succeeded(
		fmt.Sprintf("App Service plan %s was deleted", planName),
		map[string]any{"resource_id": plan.Descriptor.ID, "app_count": 0},
	))
}

// DeletePublicIP deletes an address that is not bound to any resource.
func (s *service) DeletePublicIP(ctx context.Context, clients *provider.Clients, resourceID string) model.RemediationResult {
	d, err := model.ParseResourceIDOfType(resourceID, model.TypePublicIPAddress)
	if err != nil {
		return s.finish(ActionDeletePublicIP, resourceID, model.Failed(err.Error()))
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ip, err := clients.Network.GetPublicIP(ctx, d.ResourceGroup, d.Name)
	if err != nil {
		return s.finish(ActionDeletePublicIP, resourceID, model.Failed(s.describe(ctx, fmt.Sprintf("failed to read public ip %s", d.Name), err)))
	}
	if ip.Attached() {
		return s.finish(ActionDeletePublicIP, resourceID, model.Failed(fmt.Sprintf("public ip %s is attached to %s and cannot be deleted", d.Name, ip.IPConfigurationID)))
	}

	if err := clients.Network.DeletePublicIP(ctx, d.ResourceGroup, d.Name); err != nil {
		return s.finish(ActionDeletePublicIP, resourceID, model.Failed(s.describe(ctx, fmt.Sprintf("failed to delete public ip %s", d.Name), err)))
	}

	return s.finish(ActionDeletePublicIP, resourceID, model.Succeeded(
		fmt.Sprintf("Public IP %s was deleted", d.Name),
		map[string]any{"resource_id": d.ID, "ip_address": ip.IPAddress},
	))
}

func sameSKU(current, target model.PlanSKU) bool {
	if !strings.EqualFold(current.Name, target.Name) {
		return false
	}
	if current.Tier != "" && target.Tier != "" && !strings.EqualFold(current.Tier, target.Tier) {
		return false
	}
	return current.Capacity == 0 || current.Capacity == target.Capacity
}

// describe appends the timeout to the message when the deadline expired.
func (s *service) describe(ctx context.Context, msg string, err error) string {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Sprintf("%s: timed out after %s: %v", msg, s.timeout, err)
	}
	return fmt.Sprintf("%s: %v", msg, err)
}

func (s *service) finish(action, subject string, result model.RemediationResult) model.RemediationResult {
	outcome := "succeeded"
	event := s.logger.Info()
	if !result.Success {
		outcome = "failed"
		event = s.logger.Warn()
	}
	event.Str("action", action).Str("resource", subject).Msg(result.Message)
	telemetry.RemediationTotal.WithLabelValues(action, outcome).Inc()
	return result
}
