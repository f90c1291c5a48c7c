package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/elC0mpa/azure-advisor/config"
	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/advisor"
	"github.com/elC0mpa/azure-advisor/service/flag"
	"github.com/elC0mpa/azure-advisor/utils"
)

// ErrNotConfirmed is returned when a remediation command runs without --yes.
var ErrNotConfirmed = errors.New("remediation requires --yes")

func NewService(advisorService advisor.AdvisorService, cfg *config.Config, out io.Writer) *service {
	return &service{
		advisor: advisorService,
		cfg:     cfg,
		out:     out,
	}
}

func (s *service) Orchestrate(flags model.Flags) error {
	ctx := context.Background()

	switch flags.Command {
	case flag.CommandVMs:
		return s.vmWorkflow(ctx, flags)
	case flag.CommandDeallocate, flag.CommandUpdatePlan, flag.CommandDeletePlan, flag.CommandDeleteIP:
		return s.remediationWorkflow(ctx, flags)
	case flag.CommandPricing:
		return s.pricingWorkflow(ctx, flags)
	case flag.CommandPlans:
		return s.planWorkflow(ctx, flags)
	case flag.CommandCost:
		return s.costWorkflow(ctx, flags)
	case flag.CommandAccount:
		return s.accountWorkflow(ctx, flags)
	default:
		return s.defaultWorkflow(ctx, flags)
	}
}

func (s *service) defaultWorkflow(ctx context.Context, flags model.Flags) error {
	recs, err := s.advisor.ListRecommendations(ctx, s.cfg.Credentials)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	if flags.Output == "json" {
		return s.writeJSON(map[string]any{
			"recommendations": recs,
			"summary":         model.Summarize(recs),
		})
	}

	utils.DrawRecommendationTable(s.cfg.Credentials.SubscriptionID, recs)
	utils.DrawSavingsChart(recs)
	return nil
}

func (s *service) vmWorkflow(ctx context.Context, flags model.Flags) error {
	vms, err := s.advisor.ListVMs(ctx, s.cfg.Credentials, s.cfg.IdleVM.CPUThreshold, s.cfg.IdleVM.LookbackDays)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	if flags.Output == "json" {
		return s.writeJSON(vms)
	}

	utils.DrawVMTable(s.cfg.Credentials.SubscriptionID, vms)
	return nil
}

func (s *service) remediationWorkflow(ctx context.Context, flags model.Flags) error {
	utils.StopSpinner()

	if !flags.Yes {
		return fmt.Errorf("%w: %s", ErrNotConfirmed, flags.Command)
	}

	var result model.RemediationResult
	switch flags.Command {
	case flag.CommandDeallocate:
		result = s.advisor.DeallocateVM(ctx, s.cfg.Credentials, flags.ResourceID)
	case flag.CommandUpdatePlan:
		result = s.advisor.UpdatePlanSKU(ctx, s.cfg.Credentials, flags.ResourceGroup, flags.PlanName, flags.TargetSKU)
	case flag.CommandDeletePlan:
		result = s.advisor.DeletePlan(ctx, s.cfg.Credentials, flags.ResourceGroup, flags.PlanName)
	case flag.CommandDeleteIP:
		result = s.advisor.DeletePublicIP(ctx, s.cfg.Credentials, flags.ResourceID)
	}

	if flags.Output == "json" {
		if err := s.writeJSON(result); err != nil {
			return err
		}
	} else {
		utils.DrawRemediationResult(flags.Command, result)
	}

	if !result.Success {
		return fmt.Errorf("%s failed: %s", flags.Command, result.Message)
	}
	return nil
}

func (s *service) pricingWorkflow(ctx context.Context, flags model.Flags) error {
	table, err := s.advisor.ResolvePricing(ctx, s.cfg.Region, s.cfg.Currency)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	if flags.Output == "json" {
		return s.writeJSON(table)
	}

	utils.DrawPricingTable(table)
	return nil
}

func (s *service) planWorkflow(ctx context.Context, flags model.Flags) error {
	plans, err := s.advisor.ListServicePlans(ctx, s.cfg.Credentials)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	if flags.Output == "json" {
		return s.writeJSON(plans)
	}

	utils.DrawPlanTable(s.cfg.Credentials.SubscriptionID, plans)
	return nil
}

func (s *service) costWorkflow(ctx context.Context, flags model.Flags) error {
	details, err := s.advisor.GetCostDetails(ctx, s.cfg.Credentials, flags.Days)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	if flags.Output == "json" {
		return s.writeJSON(details)
	}

	utils.DrawCostTable(s.cfg.Credentials.SubscriptionID, details)
	return nil
}

func (s *service) accountWorkflow(ctx context.Context, flags model.Flags) error {
	account, err := s.advisor.GetAccountInfo(ctx, s.cfg.Credentials)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	if flags.Output == "json" {
		return s.writeJSON(account)
	}

	utils.DrawAccount(account)
	return nil
}

func (s *service) writeJSON(v any) error {
	enc := json.NewEncoder(s.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
