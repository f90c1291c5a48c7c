package inspector

import (
	"context"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/pricing"
	"github.com/elC0mpa/azure-advisor/service/provider"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Inspector scans one category of resources and reports raw findings.
type Inspector interface {
	Name() string
	Category() model.Category
	Inspect(ctx context.Context, clients *provider.Clients, cfg model.ScanConfig) ([]model.Finding, error)
}

type IdleVMInspector struct {
	limiter *rate.Limiter
	logger  zerolog.Logger
}

type UnattachedAddressInspector struct {
	logger zerolog.Logger
}

type IdleServicePlanInspector struct {
	pricing pricing.PricingService
	logger  zerolog.Logger
}

type UnattachedDiskInspector struct {
	logger zerolog.Logger
}
