package flag

import "github.com/elC0mpa/azure-advisor/model"

const (
	CommandRecommendations = "recommendations"
	CommandVMs             = "vms"
	CommandDeallocate      = "deallocate"
	CommandUpdatePlan      = "update-plan"
	CommandDeletePlan      = "delete-plan"
	CommandDeleteIP        = "delete-ip"
	CommandPricing         = "pricing"
	CommandPlans           = "plans"
	CommandCost            = "cost"
	CommandAccount         = "account"
)

type service struct {
	version string
}

type FlagService interface {
	GetParsedFlags(args []string) (model.Flags, error)
}
