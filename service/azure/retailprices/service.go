package azureretailprices

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/elC0mpa/azure-advisor/model"
)

// NewService builds a client for the public Azure Retail Prices API. The API
// is anonymous, so no credential is involved.
func NewService(opts Options) *service {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = DefaultMaxPages
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	return &service{
		endpoint: opts.Endpoint,
		maxPages: opts.MaxPages,
		client:   &http.Client{Timeout: opts.Timeout},
	}
}

// FetchPrices returns every consumption price item of one service in one
// region, following NextPageLink up to the page cap.
func (s *service) FetchPrices(ctx context.Context, serviceName, region, currency string) ([]model.RetailPriceItem, error) {
	filter := fmt.Sprintf(
		"serviceName eq '%s' and armRegionName eq '%s' and priceType eq 'Consumption'",
		serviceName, region,
	)

	query := url.Values{}
	query.Set("$filter", filter)
	if currency != "" {
		query.Set("currencyCode", currency)
	}
	nextURL := s.endpoint + "?" + query.Encode()

	var items []model.RetailPriceItem
	for page := 0; nextURL != "" && page < s.maxPages; page++ {
		resp, err := s.fetchPage(ctx, nextURL)
		if err != nil {
			return nil, err
		}
		items = append(items, resp.Items...)
		nextURL = resp.NextPageLink
	}

	return items, nil
}

func (s *service) fetchPage(ctx context.Context, pageURL string) (*retailPriceResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create retail prices request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("retail prices request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read retail prices response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("retail prices returned status %d: %s", resp.StatusCode, string(body))
	}

	var page retailPriceResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to decode retail prices response: %w", err)
	}

	return &page, nil
}
