package metrics

import (
	"context"
	"time"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/provider"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// DailyInterval is the ISO-8601 aggregation grain used for utilization queries.
const DailyInterval = "P1D"

type aggregator struct {
	monitor provider.MonitorService
	limiter *rate.Limiter
	logger  zerolog.Logger
	now     func() time.Time
}

type Aggregator interface {
	AverageUtilization(ctx context.Context, resourceID, metricName string, lookbackDays int) float64
	Utilization(ctx context.Context, resourceID, metricName string, lookbackDays int) model.Utilization
}
