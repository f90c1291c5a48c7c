package azuremonitor

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/monitor/armmonitor"
	"github.com/elC0mpa/azure-advisor/model"
)

func NewService(subscriptionID string, credential Credential, options *arm.ClientOptions) (*service, error) {
	client, err := armmonitor.NewMetricsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics client: %w", err)
	}

	return &service{metricsClient: client}, nil
}

// GetMetricSamples returns the Average aggregation of one metric for every
// interval of every returned series. Intervals without data keep a nil Average.
func (s *service) GetMetricSamples(ctx context.Context, resourceID, metricName string, start, end time.Time, interval string) ([]model.UtilizationSample, error) {
	timespan := fmt.Sprintf("%s/%s", start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))

	resp, err := s.metricsClient.List(ctx, resourceID, &armmonitor.MetricsClientListOptions{
		Timespan:    to.Ptr(timespan),
		Interval:    to.Ptr(interval),
		Metricnames: to.Ptr(metricName),
		Aggregation: to.Ptr("Average"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s for %s: %w", metricName, resourceID, err)
	}

	var samples []model.UtilizationSample
	for _, metric := range resp.Value {
		if metric == nil {
			continue
		}
		for _, series := range metric.Timeseries {
			if series == nil {
				continue
			}
			for _, point := range series.Data {
				if point == nil {
					continue
				}
				sample := model.UtilizationSample{Average: point.Average}
				if point.TimeStamp != nil {
					sample.Timestamp = *point.TimeStamp
				}
				samples = append(samples, sample)
			}
		}
	}

	return samples, nil
}
