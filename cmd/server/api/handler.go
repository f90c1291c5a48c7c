package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/elC0mpa/azure-advisor/config"
	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/advisor"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	advisor advisor.AdvisorService
	cfg     *config.Config
}

func NewHandler(advisorService advisor.AdvisorService, cfg *config.Config) *Handler {
	return &Handler{advisor: advisorService, cfg: cfg}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Azure cost advisor API. Endpoints: /list-custom-recommendations, /list-vms-detailed, /stop-vm, /cost-details, /get-current-pricing/{region} and /actions/*.",
	})
}

func (h *Handler) ListRecommendations(w http.ResponseWriter, r *http.Request) {
	var bundle model.CredentialBundle
	if !decode(w, r, &bundle) {
		return
	}

	recs, err := h.advisor.ListRecommendations(r.Context(), bundle)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if recs == nil {
		recs = []model.Recommendation{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (h *Handler) ListServicePlans(w http.ResponseWriter, r *http.Request) {
	var bundle model.CredentialBundle
	if !decode(w, r, &bundle) {
		return
	}

	plans, err := h.advisor.ListServicePlans(r.Context(), bundle)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if plans == nil {
		plans = []model.ServicePlan{}
	}
	writeJSON(w, http.StatusOK, plans)
}

func (h *Handler) GetPricing(w http.ResponseWriter, r *http.Request) {
	region := chi.URLParam(r, "region")
	currency := r.URL.Query().Get("currency")
	if currency == "" {
		currency = h.cfg.Currency
	}

	table, err := h.advisor.ResolvePricing(r.Context(), region, currency)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := pricingResponse{
		Success:  table.Provenance == model.ProvenanceLive,
		Region:   table.Region,
		Currency: table.Currency,
		Source:   table.Provenance,
		Pricing:  table.Entries,
	}
	if !table.UpdatedAt.IsZero() {
		resp.UpdatedAt = table.UpdatedAt.Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ListVMs(w http.ResponseWriter, r *http.Request) {
	var req vmListRequest
	if !decode(w, r, &req) {
		return
	}

	threshold := h.cfg.IdleVM.CPUThreshold
	if req.CPUThreshold != nil {
		threshold = *req.CPUThreshold
	}
	days := h.cfg.IdleVM.LookbackDays
	if req.DaysForMetrics != nil {
		days = *req.DaysForMetrics
	}
	if threshold <= 0 || threshold > 100 || days <= 0 {
		writeError(w, http.StatusBadRequest, "cpu_threshold must be in (0, 100] and days_for_metrics must be positive")
		return
	}

	vms, err := h.advisor.ListVMs(r.Context(), req.CredentialBundle, threshold, days)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if vms == nil {
		vms = []model.VMUtilization{}
	}
	writeJSON(w, http.StatusOK, vms)
}

func (h *Handler) StopVM(w http.ResponseWriter, r *http.Request) {
	var req stopVMRequest
	if !decode(w, r, &req) {
		return
	}

	writeResult(w, h.advisor.DeallocateVM(r.Context(), req.Credentials, req.VMID))
}

func (h *Handler) GetCostDetails(w http.ResponseWriter, r *http.Request) {
	var req costDetailsRequest
	if !decode(w, r, &req) {
		return
	}

	// The scope is always the credential's subscription.
	if req.Scope != "" && !strings.EqualFold(strings.Trim(req.Scope, "/"), "subscriptions/"+req.Credentials.SubscriptionID) {
		writeError(w, http.StatusBadRequest, "scope must be the subscription of the supplied credentials")
		return
	}

	days := 30
	if req.TimePeriodDays != nil {
		days = *req.TimePeriodDays
	}
	if days <= 0 {
		writeError(w, http.StatusBadRequest, "time_period_days must be positive")
		return
	}

	details, err := h.advisor.GetCostDetails(r.Context(), req.Credentials, days)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *Handler) UpdatePlanSKU(w http.ResponseWriter, r *http.Request) {
	var req updatePlanSKURequest
	if !decode(w, r, &req) {
		return
	}

	target := model.PlanSKU{
		Name:     req.TargetSKUName,
		Tier:     req.TargetSKUTier,
		Family:   req.TargetSKUFamily,
		Size:     req.TargetSKUSize,
		Capacity: 1,
	}
	if req.TargetSKUCapacity != nil {
		target.Capacity = *req.TargetSKUCapacity
	}

	writeResult(w, h.advisor.UpdatePlanSKU(r.Context(), req.Credentials, req.ResourceGroupName, req.PlanName, target))
}

func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	var req deletePlanRequest
	if !decode(w, r, &req) {
		return
	}

	writeResult(w, h.advisor.DeletePlan(r.Context(), req.Credentials, req.ResourceGroupName, req.PlanName))
}

func (h *Handler) DeletePublicIP(w http.ResponseWriter, r *http.Request) {
	var req deletePublicIPRequest
	if !decode(w, r, &req) {
		return
	}

	writeResult(w, h.advisor.DeletePublicIP(r.Context(), req.Credentials, req.ResourceID))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
