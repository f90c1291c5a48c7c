package normalizer

import (
	"testing"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/provider/providertest"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeUnattachedAddress(t *testing.T) {
	ip := providertest.PublicIP("net", "orphan", false)

	rec, err := New("USD", zerolog.Nop()).Normalize(model.UnattachedAddressFinding{Address: ip, MonthlyCostUSD: 2.5})
	require.NoError(t, err)

	assert.Equal(t, model.CategoryIdleAddress, rec.Category)
	assert.Equal(t, "orphan", rec.Name)
	assert.Equal(t, model.TypePublicIPAddress, rec.ImpactedField)
	assert.Equal(t, 2.5, rec.EstimatedMonthlySavings)
	assert.Equal(t, "~$2.50/month savings", rec.PotentialBenefits)
	assert.Equal(t, ip.Descriptor.ID, rec.ResourceMetadata.ResourceID)
	assert.Equal(t, "net", rec.ResourceMetadata.ResourceGroup)
	assert.Equal(t, Source, rec.ResourceMetadata.Source)
	assert.Equal(t, "delete", rec.ActionDetails.Action)
}

func TestNormalizeIdlePlanConvertsCurrency(t *testing.T) {
	plan := providertest.Plan("web", "empty", "B1")
	finding := model.IdlePlanFinding{
		Plan:       plan,
		Estimate:   model.PricingEntry{SKU: "B1", MonthlyPrice: 59.86, OriginalUSDPrice: 59.86},
		TargetSKU:  "F1",
		TargetTier: "Free",
	}

	rec, err := New("try", zerolog.Nop()).Normalize(finding)
	require.NoError(t, err)

	assert.Equal(t, "TRY", rec.Currency)
	assert.InDelta(t, 1795.8, rec.EstimatedMonthlySavings, 1e-9)
	assert.Equal(t, "F1", rec.ActionDetails.TargetSKU)
	assert.Equal(t, "Free", rec.ActionDetails.TargetTier)
	assert.Equal(t, "B1", rec.ExtendedProperties["current_sku"])
}

func TestNormalizeRejectsMalformedResourceID(t *testing.T) {
	vm := providertest.VM("rg", "vm")
	vm.Descriptor.ID = "vm-without-an-arm-id"

	_, err := New("USD", zerolog.Nop()).Normalize(model.IdleVMFinding{VM: model.VMUtilization{Descriptor: vm.Descriptor}})
	assert.ErrorIs(t, err, model.ErrMalformedResourceID)
}

func TestNormalizeAllDropsInvalidAndDuplicateFindings(t *testing.T) {
	good := providertest.PublicIP("net", "orphan", false)
	bad := providertest.PublicIP("net", "broken", false)
	bad.Descriptor.ID = "/subscriptions//resourceGroups/net"

	recs := New("USD", zerolog.Nop()).NormalizeAll([]model.Finding{
		model.UnattachedAddressFinding{Address: good, MonthlyCostUSD: 2.5},
		model.UnattachedAddressFinding{Address: bad, MonthlyCostUSD: 2.5},
		model.UnattachedAddressFinding{Address: good, MonthlyCostUSD: 2.5},
	})

	require.Len(t, recs, 1)
	assert.Equal(t, good.Descriptor.ID, recs[0].ResourceMetadata.ResourceID)
}

func TestRecommendationIDIsStable(t *testing.T) {
	id := providertest.ResourceID("rg", model.TypeVirtualMachine, "vm")

	assert.Equal(t, RecommendationID(model.CategoryIdleVM, id), RecommendationID(model.CategoryIdleVM, id))
	assert.NotEqual(t, RecommendationID(model.CategoryIdleVM, id), RecommendationID(model.CategoryUnattachedDisk, id))
}

func TestNewFallsBackToUSD(t *testing.T) {
	n := New("GBP", zerolog.Nop())
	assert.Equal(t, "USD", n.currency)
}
