package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMonitor struct {
	samples []model.UtilizationSample
	err     error

	resourceID string
	metric     string
	start, end time.Time
	interval   string
}

func (f *fakeMonitor) GetMetricSamples(ctx context.Context, resourceID, metricName string, start, end time.Time, interval string) ([]model.UtilizationSample, error) {
	f.resourceID, f.metric, f.start, f.end, f.interval = resourceID, metricName, start, end, interval
	return f.samples, f.err
}

func val(v float64) *float64 { return &v }

func TestMean(t *testing.T) {
	tests := []struct {
		name    string
		samples []model.UtilizationSample
		want    float64
		count   int
	}{
		{name: "empty", samples: nil, want: 0, count: 0},
		{name: "all missing", samples: []model.UtilizationSample{{}, {}}, want: 0, count: 0},
		{name: "single", samples: []model.UtilizationSample{{Average: val(4)}}, want: 4, count: 1},
		{
			name:    "skips missing intervals",
			samples: []model.UtilizationSample{{Average: val(2)}, {}, {Average: val(4)}},
			want:    3,
			count:   2,
		},
		{
			name:    "zero is a value",
			samples: []model.UtilizationSample{{Average: val(0)}, {Average: val(10)}},
			want:    5,
			count:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := Mean(tt.samples)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Equal(t, tt.count, n)
		})
	}
}

func TestMeanIsBoundedBySamples(t *testing.T) {
	samples := []model.UtilizationSample{{Average: val(1.5)}, {Average: val(7)}, {Average: val(3.2)}}
	got, _ := Mean(samples)
	assert.GreaterOrEqual(t, got, 1.5)
	assert.LessOrEqual(t, got, 7.0)
}

func TestUtilizationQueriesLookbackWindow(t *testing.T) {
	monitor := &fakeMonitor{samples: []model.UtilizationSample{{Average: val(2)}, {Average: val(3)}}}
	agg := NewAggregator(monitor, nil, zerolog.Nop())
	fixed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	agg.now = func() time.Time { return fixed }

	u := agg.Utilization(context.Background(), "/subscriptions/s/resourceGroups/rg/providers/Microsoft.Compute/virtualMachines/vm", model.CPUMetricName, 7)

	assert.True(t, u.Known)
	assert.Equal(t, 2, u.Samples)
	assert.InDelta(t, 2.5, u.Average, 1e-9)
	assert.Equal(t, model.CPUMetricName, monitor.metric)
	assert.Equal(t, DailyInterval, monitor.interval)
	assert.Equal(t, fixed, monitor.end)
	assert.Equal(t, fixed.AddDate(0, 0, -7), monitor.start)
}

func TestUtilizationNoDataIsZero(t *testing.T) {
	agg := NewAggregator(&fakeMonitor{}, nil, zerolog.Nop())

	u := agg.Utilization(context.Background(), "id", model.CPUMetricName, 7)
	assert.False(t, u.Known)
	assert.NoError(t, u.Err)
	assert.Zero(t, u.Average)
}

func TestAverageUtilizationSwallowsErrors(t *testing.T) {
	agg := NewAggregator(&fakeMonitor{err: errors.New("throttled")}, nil, zerolog.Nop())

	assert.Zero(t, agg.AverageUtilization(context.Background(), "id", model.CPUMetricName, 7))

	u := agg.Utilization(context.Background(), "id", model.CPUMetricName, 7)
	require.Error(t, u.Err)
	assert.False(t, u.Known)
}

func TestUtilizationCancelledContext(t *testing.T) {
	agg := NewAggregator(&fakeMonitor{}, NewLimiter(0.001), zerolog.Nop())
	// drain the single burst token
	agg.limiter.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	u := agg.Utilization(ctx, "id", model.CPUMetricName, 7)
	assert.Error(t, u.Err)
}
