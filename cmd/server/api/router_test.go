package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/elC0mpa/azure-advisor/config"
	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/advisor/advisortest"
	"github.com/elC0mpa/azure-advisor/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const credentialsJSON = `{"tenant_id":"t","client_id":"c","client_secret":"s","subscription_id":"sub"}`

func serve(t *testing.T, fake *advisortest.Advisor, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := NewRouter(fake, config.Default(), telemetry.Nop())
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListRecommendations(t *testing.T) {
	fake := &advisortest.Advisor{Recommendations: []model.Recommendation{
		{ID: "1", Category: model.CategoryIdleAddress},
	}}

	rec := serve(t, fake, http.MethodPost, "/list-custom-recommendations", credentialsJSON)

	require.Equal(t, http.StatusOK, rec.Code)
	var recs []model.Recommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recs))
	assert.Len(t, recs, 1)
	assert.Equal(t, "sub", fake.Calls()[0].Bundle.SubscriptionID)
}

func TestListRecommendationsEmptyIsArray(t *testing.T) {
	rec := serve(t, &advisortest.Advisor{}, http.MethodPost, "/list-custom-recommendations", credentialsJSON)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListRecommendationsInvalidCredentials(t *testing.T) {
	fake := &advisortest.Advisor{Err: fmt.Errorf("%w: tenant_id is required", model.ErrInvalidCredentials)}

	rec := serve(t, fake, http.MethodPost, "/list-custom-recommendations", `{}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestMalformedBody(t *testing.T) {
	fake := &advisortest.Advisor{}

	rec := serve(t, fake, http.MethodPost, "/stop-vm", `{not json`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, fake.Calls())
}

func TestListVMsDefaults(t *testing.T) {
	fake := &advisortest.Advisor{}

	rec := serve(t, fake, http.MethodPost, "/list-vms-detailed", credentialsJSON)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{model.DefaultCPUThreshold, model.DefaultLookbackDays}, fake.Calls()[0].Args)
}

func TestListVMsOverrides(t *testing.T) {
	fake := &advisortest.Advisor{}
	body := `{"tenant_id":"t","client_id":"c","client_secret":"s","subscription_id":"sub","cpu_threshold":10,"days_for_metrics":14}`

	rec := serve(t, fake, http.MethodPost, "/list-vms-detailed", body)

	require.Equal(t, http.StatusOK, rec.Code)
	calls := fake.Calls()
	assert.Equal(t, "sub", calls[0].Bundle.SubscriptionID)
	assert.Equal(t, []any{10.0, 14}, calls[0].Args)
}

func TestStopVMFailureIs400(t *testing.T) {
	fake := &advisortest.Advisor{Result: model.Failed("malformed resource id")}

	rec := serve(t, fake, http.MethodPost, "/stop-vm", `{"credentials":`+credentialsJSON+`,"vm_id":"bogus"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []any{"bogus"}, fake.Calls()[0].Args)
}

func TestUpdatePlanSKU(t *testing.T) {
	fake := &advisortest.Advisor{Result: model.Succeeded("updated", map[string]any{"changed": true})}
	body := `{"credentials":` + credentialsJSON + `,"resource_group_name":"rg","plan_name":"plan","target_sku_name":"F1","target_sku_tier":"Free"}`

	rec := serve(t, fake, http.MethodPost, "/actions/update-app-service-plan-sku", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"rg", "plan", model.PlanSKU{Name: "F1", Tier: "Free", Capacity: 1}}, fake.Calls()[0].Args)
}

func TestDeletePlanRefused(t *testing.T) {
	fake := &advisortest.Advisor{Result: model.RemediationResult{
		Message: "App Service plan plan hosts 2 application(s) and cannot be deleted",
		Details: map[string]any{"app_count": 2},
	}}
	body := `{"credentials":` + credentialsJSON + `,"resource_group_name":"rg","plan_name":"plan"}`

	rec := serve(t, fake, http.MethodPost, "/actions/delete-app-service-plan", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "app_count")
}

func TestDeletePublicIP(t *testing.T) {
	fake := &advisortest.Advisor{Result: model.Succeeded("deleted", nil)}

	rec := serve(t, fake, http.MethodPost, "/actions/delete-public-ip", `{"credentials":`+credentialsJSON+`,"resource_id":"/x"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCostDetailsScopeMismatch(t *testing.T) {
	fake := &advisortest.Advisor{}
	body := `{"credentials":` + credentialsJSON + `,"scope":"subscriptions/other"}`

	rec := serve(t, fake, http.MethodPost, "/cost-details", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, fake.Calls())
}

func TestCostDetails(t *testing.T) {
	fake := &advisortest.Advisor{Cost: &model.CostDetails{TotalCost: 12.5, Currency: "USD"}}
	body := `{"credentials":` + credentialsJSON + `,"scope":"/subscriptions/sub","time_period_days":7}`

	rec := serve(t, fake, http.MethodPost, "/cost-details", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{7}, fake.Calls()[0].Args)
}

func TestGetPricing(t *testing.T) {
	fake := &advisortest.Advisor{Pricing: model.PricingTable{
		Region:     "westeurope",
		Currency:   "TRY",
		Provenance: model.ProvenanceFallback,
		Entries:    map[string]model.PricingEntry{"F1": {SKU: "F1"}},
		UpdatedAt:  time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}}

	rec := serve(t, fake, http.MethodGet, "/get-current-pricing/westeurope?currency=TRY", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp pricingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, model.ProvenanceFallback, resp.Source)
	assert.Contains(t, resp.Pricing, "F1")
	assert.Equal(t, []any{"westeurope", "TRY"}, fake.Calls()[0].Args)
}

func TestGetPricingUnsupportedCurrency(t *testing.T) {
	fake := &advisortest.Advisor{Err: model.ErrUnsupportedCurrency}

	rec := serve(t, fake, http.MethodGet, "/get-current-pricing/westeurope?currency=GBP", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	rec := serve(t, &advisortest.Advisor{}, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
