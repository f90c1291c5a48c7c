package azureretailprices

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchPricesFollowsNextPageLink(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "2" {
			_ = json.NewEncoder(w).Encode(retailPriceResponse{
				Items: []model.RetailPriceItem{{MeterName: "S1 App", RetailPrice: 0.1}},
			})
			return
		}

		filter := r.URL.Query().Get("$filter")
		assert.Contains(t, filter, "serviceName eq 'Azure App Service'")
		assert.Contains(t, filter, "armRegionName eq 'westeurope'")
		assert.Contains(t, filter, "priceType eq 'Consumption'")
		assert.Equal(t, "USD", r.URL.Query().Get("currencyCode"))

		_ = json.NewEncoder(w).Encode(retailPriceResponse{
			Items:        []model.RetailPriceItem{{MeterName: "B1 App", RetailPrice: 0.075}},
			NextPageLink: srv.URL + "?page=2",
		})
	}))
	defer srv.Close()

	svc := NewService(Options{Endpoint: srv.URL})
	items, err := svc.FetchPrices(context.Background(), "Azure App Service", "westeurope", "USD")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "B1 App", items[0].MeterName)
	assert.Equal(t, "S1 App", items[1].MeterName)
}

func TestFetchPricesStopsAtPageCap(t *testing.T) {
	var calls int32
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_ = json.NewEncoder(w).Encode(retailPriceResponse{
			Items:        []model.RetailPriceItem{{MeterName: "B1 App"}},
			NextPageLink: srv.URL + "?loop=1",
		})
	}))
	defer srv.Close()

	svc := NewService(Options{Endpoint: srv.URL, MaxPages: 3})
	items, err := svc.FetchPrices(context.Background(), "Azure App Service", "westeurope", "USD")
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestFetchPricesErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "throttled", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := NewService(Options{Endpoint: srv.URL}).FetchPrices(context.Background(), "Azure App Service", "westeurope", "USD")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
	})

	t.Run("invalid body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		}))
		defer srv.Close()

		_, err := NewService(Options{Endpoint: srv.URL}).FetchPrices(context.Background(), "Azure App Service", "westeurope", "USD")
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "decode"))
	})
}
