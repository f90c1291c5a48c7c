package flag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/spf13/cobra"
)

// ErrHelp is returned when the invocation only printed usage or version.
var ErrHelp = errors.New("help requested")

func NewService(version string) *service {
	return &service{version: version}
}

// GetParsedFlags parses args (without the program name) into a single
// command invocation. Running with no subcommand selects recommendations.
func (s *service) GetParsedFlags(args []string) (model.Flags, error) {
	flags := model.Flags{Command: CommandRecommendations}
	ran := false

	root := &cobra.Command{
		Use:   "azure-advisor",
		Short: "Find idle Azure resources and estimate what they cost",
		Long: `Azure Advisor inspects a subscription for idle virtual machines,
unattached public IP addresses and disks, and App Service plans
that host no apps, then estimates the monthly savings of fixing them.

Remediation commands act on a single resource and require --yes.`,
		Version:       s.version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "", "Path to a YAML config file")
	root.PersistentFlags().StringVarP(&flags.Output, "output", "o", "table", "Output format: table or json")
	root.PersistentFlags().StringVar(&flags.Region, "region", "", "Azure region used for pricing")
	root.PersistentFlags().StringVar(&flags.Currency, "currency", "", "Currency for estimates: USD, EUR or TRY")

	run := func(name string) func(*cobra.Command, []string) error {
		return func(*cobra.Command, []string) error {
			flags.Command = name
			ran = true
			return nil
		}
	}
	root.RunE = run(CommandRecommendations)

	recommendations := &cobra.Command{
		Use:   CommandRecommendations,
		Short: "List cost saving recommendations",
		RunE:  run(CommandRecommendations),
	}
	recommendations.Flags().Float64Var(&flags.CPUThreshold, "cpu-threshold", 0, "Average CPU percentage below which a VM is idle")
	recommendations.Flags().IntVar(&flags.LookbackDays, "days", 0, "Days of CPU history to average")

	vms := &cobra.Command{
		Use:   CommandVMs,
		Short: "List virtual machines with their average CPU",
		RunE:  run(CommandVMs),
	}
	vms.Flags().Float64Var(&flags.CPUThreshold, "cpu-threshold", 0, "Average CPU percentage below which a VM is idle")
	vms.Flags().IntVar(&flags.LookbackDays, "days", 0, "Days of CPU history to average")

	deallocate := &cobra.Command{
		Use:     CommandDeallocate,
		Short:   "Deallocate a virtual machine",
		Example: "  azure-advisor deallocate --id /subscriptions/<sub>/resourceGroups/rg/providers/Microsoft.Compute/virtualMachines/vm1 --yes",
		RunE:    run(CommandDeallocate),
	}
	deallocate.Flags().StringVar(&flags.ResourceID, "id", "", "Full resource id of the virtual machine")
	deallocate.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Confirm the action")
	_ = deallocate.MarkFlagRequired("id")

	var tier string
	var capacity int32
	updatePlan := &cobra.Command{
		Use:   CommandUpdatePlan,
		Short: "Change the SKU of an App Service plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.TargetSKU.Tier = tier
			flags.TargetSKU.Capacity = capacity
			return run(CommandUpdatePlan)(cmd, args)
		},
	}
	updatePlan.Flags().StringVarP(&flags.ResourceGroup, "resource-group", "g", "", "Resource group of the plan")
	updatePlan.Flags().StringVarP(&flags.PlanName, "name", "n", "", "Name of the plan")
	updatePlan.Flags().StringVar(&flags.TargetSKU.Name, "sku", "F1", "Target SKU name")
	updatePlan.Flags().StringVar(&tier, "tier", "", "Target tier, derived from the SKU when empty")
	updatePlan.Flags().Int32Var(&capacity, "capacity", 1, "Target instance count")
	updatePlan.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Confirm the action")
	_ = updatePlan.MarkFlagRequired("resource-group")
	_ = updatePlan.MarkFlagRequired("name")

	deletePlan := &cobra.Command{
		Use:   CommandDeletePlan,
		Short: "Delete an App Service plan that hosts no apps",
		RunE:  run(CommandDeletePlan),
	}
	deletePlan.Flags().StringVarP(&flags.ResourceGroup, "resource-group", "g", "", "Resource group of the plan")
	deletePlan.Flags().StringVarP(&flags.PlanName, "name", "n", "", "Name of the plan")
	deletePlan.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Confirm the action")
	_ = deletePlan.MarkFlagRequired("resource-group")
	_ = deletePlan.MarkFlagRequired("name")

	deleteIP := &cobra.Command{
		Use:   CommandDeleteIP,
		Short: "Delete an unattached public IP address",
		RunE:  run(CommandDeleteIP),
	}
	deleteIP.Flags().StringVar(&flags.ResourceID, "id", "", "Full resource id of the public IP address")
	deleteIP.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Confirm the action")
	_ = deleteIP.MarkFlagRequired("id")

	pricing := &cobra.Command{
		Use:   CommandPricing,
		Short: "Show App Service plan prices for a region",
		RunE:  run(CommandPricing),
	}

	plans := &cobra.Command{
		Use:   CommandPlans,
		Short: "List App Service plans in the subscription",
		RunE:  run(CommandPlans),
	}

	cost := &cobra.Command{
		Use:   CommandCost,
		Short: "Show actual cost by service and resource group",
		RunE:  run(CommandCost),
	}
	cost.Flags().IntVar(&flags.Days, "days", 30, "Number of days to report")

	account := &cobra.Command{
		Use:   CommandAccount,
		Short: "Show the subscription the credentials resolve to",
		RunE:  run(CommandAccount),
	}

	root.AddCommand(recommendations, vms, deallocate, updatePlan, deletePlan, deleteIP, pricing, plans, cost, account)
	// cobra reads os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return model.Flags{}, err
	}
	if !ran {
		return model.Flags{}, ErrHelp
	}

	flags.Output = strings.ToLower(flags.Output)
	if flags.Output != "table" && flags.Output != "json" {
		return model.Flags{}, fmt.Errorf("unsupported output format %q", flags.Output)
	}
	if flags.Days < 0 || flags.LookbackDays < 0 || flags.CPUThreshold < 0 {
		return model.Flags{}, errors.New("numeric flags must not be negative")
	}

	return flags, nil
}
