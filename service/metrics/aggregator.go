package metrics

import (
	"context"
	"time"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/provider"
	"github.com/elC0mpa/azure-advisor/telemetry"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// NewAggregator wraps a monitor client. A nil limiter means unlimited.
func NewAggregator(monitor provider.MonitorService, limiter *rate.Limiter, logger zerolog.Logger) *aggregator {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return &aggregator{
		monitor: monitor,
		limiter: limiter,
		logger:  logger.With().Str("component", "metrics").Logger(),
		now:     time.Now,
	}
}

// NewLimiter builds the shared Azure Monitor limiter; rps <= 0 disables limiting.
func NewLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// AverageUtilization is the mean of metricName over the last lookbackDays.
// It never fails: missing data and query errors both read as 0.
func (a *aggregator) AverageUtilization(ctx context.Context, resourceID, metricName string, lookbackDays int) float64 {
	return a.Utilization(ctx, resourceID, metricName, lookbackDays).Average
}

func (a *aggregator) Utilization(ctx context.Context, resourceID, metricName string, lookbackDays int) model.Utilization {
	if lookbackDays <= 0 {
		lookbackDays = model.DefaultLookbackDays
	}

	end := a.now().UTC()
	start := end.AddDate(0, 0, -lookbackDays)

	if err := a.limiter.Wait(ctx); err != nil {
		return a.failed(resourceID, metricName, err)
	}

	samples, err := a.monitor.GetMetricSamples(ctx, resourceID, metricName, start, end, DailyInterval)
	if err != nil {
		return a.failed(resourceID, metricName, err)
	}

	avg, n := Mean(samples)
	return model.Utilization{
		Average: avg,
		Samples: n,
		Known:   n > 0,
	}
}

func (a *aggregator) failed(resourceID, metricName string, err error) model.Utilization {
	a.logger.Warn().
		Err(err).
		Str("resource_id", resourceID).
		Str("metric", metricName).
		Msg("metric query failed, reporting zero utilization")
	telemetry.MetricQueryFailuresTotal.WithLabelValues(metricName).Inc()

	return model.Utilization{Err: err}
}

// Mean averages every sample that carries a value. It returns 0 and a count
// of 0 when no sample has data.
func Mean(samples []model.UtilizationSample) (float64, int) {
	var sum float64
	var n int
	for _, sample := range samples {
		if sample.Average == nil {
			continue
		}
		sum += *sample.Average
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}
