package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResourceID(t *testing.T) {
	d, err := ParseResourceID("/subscriptions/sub-1/resourceGroups/rg-prod/providers/Microsoft.Compute/virtualMachines/vm-01")

	require.NoError(t, err)
	assert.Equal(t, "sub-1", d.SubscriptionID)
	assert.Equal(t, "rg-prod", d.ResourceGroup)
	assert.Equal(t, "Microsoft.Compute", d.Namespace)
	assert.Equal(t, "virtualMachines", d.Type)
	assert.Equal(t, "vm-01", d.Name)
	assert.Equal(t, "Microsoft.Compute/virtualMachines", d.FullType())
}

func TestParseResourceIDChildResource(t *testing.T) {
	d, err := ParseResourceID("/subscriptions/s/resourceGroups/rg/providers/Microsoft.Web/sites/app/slots/staging")

	require.NoError(t, err)
	assert.Equal(t, "sites/slots", d.Type)
	assert.Equal(t, "staging", d.Name)
	assert.Equal(t, "rg", d.ResourceGroup)
}

func TestParseResourceIDCaseInsensitiveKeywords(t *testing.T) {
	d, err := ParseResourceID("/SUBSCRIPTIONS/s/resourcegroups/RG/Providers/Microsoft.Network/publicIPAddresses/ip")

	require.NoError(t, err)
	assert.Equal(t, "RG", d.ResourceGroup)
}

func TestParseResourceIDMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":             "",
		"no leading slash":  "subscriptions/s/resourceGroups/rg/providers/Microsoft.Compute/virtualMachines/vm",
		"too short":         "/subscriptions/s/resourceGroups/rg",
		"unbalanced":        "/subscriptions/s/resourceGroups/rg/providers/Microsoft.Compute/virtualMachines/vm/extensions",
		"empty segment":     "/subscriptions//resourceGroups/rg/providers/Microsoft.Compute/virtualMachines/vm",
		"wrong keyword":     "/subscriptions/s/groups/rg/providers/Microsoft.Compute/virtualMachines/vm",
		"missing providers": "/subscriptions/s/resourceGroups/rg/provider/Microsoft.Compute/virtualMachines/vm",
	}

	for name, id := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseResourceID(id)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedResourceID)
			var malformed *MalformedResourceIDError
			assert.True(t, errors.As(err, &malformed))
		})
	}
}

func TestParseResourceIDOfType(t *testing.T) {
	id := "/subscriptions/s/resourceGroups/rg/providers/Microsoft.Network/publicIPAddresses/ip"

	_, err := ParseResourceIDOfType(id, "microsoft.network/publicipaddresses")
	assert.NoError(t, err)

	_, err = ParseResourceIDOfType(id, "Microsoft.Compute/virtualMachines")
	assert.ErrorIs(t, err, ErrMalformedResourceID)
}

func TestCredentialBundleValidate(t *testing.T) {
	full := CredentialBundle{TenantID: "t", ClientID: "c", ClientSecret: "s", SubscriptionID: "sub"}
	assert.NoError(t, full.Validate())

	missing := full
	missing.ClientSecret = ""
	err := missing.Validate()
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "client_secret")
}

func TestCredentialBundleStringRedactsSecret(t *testing.T) {
	b := CredentialBundle{TenantID: "t", ClientID: "c", ClientSecret: "hunter2", SubscriptionID: "sub"}

	assert.NotContains(t, b.String(), "hunter2")
	assert.Contains(t, b.String(), "sub")
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]Recommendation{
		{Category: CategoryIdleAddress, EstimatedMonthlySavings: 2.5, Currency: "EUR"},
		{Category: CategoryIdleAddress, EstimatedMonthlySavings: 2.5, Currency: "EUR"},
		{Category: CategoryIdleServicePlan, EstimatedMonthlySavings: 10},
	})

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 15.0, summary.TotalSavings)
	assert.Equal(t, "EUR", summary.Currency)
	assert.Equal(t, 2, summary.ByCategory[CategoryIdleAddress])
	assert.Equal(t, 5.0, summary.SavingsBy[CategoryIdleAddress])
}
