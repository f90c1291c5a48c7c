package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	items []model.RetailPriceItem
	err   error
	calls int
}

func (f *fakeSource) FetchPrices(ctx context.Context, serviceName, region, currency string) ([]model.RetailPriceItem, error) {
	f.calls++
	return f.items, f.err
}

func item(meter string, hourly float64) model.RetailPriceItem {
	return model.RetailPriceItem{
		MeterName:     meter,
		RetailPrice:   hourly,
		ArmRegionName: "westeurope",
		Type:          "Consumption",
		ProductName:   "Azure App Service",
	}
}

func TestResolveUsesLivePriceWithinBand(t *testing.T) {
	svc := NewService(&fakeSource{items: []model.RetailPriceItem{item("B1 App", 0.082)}}, zerolog.Nop())

	table, err := svc.Resolve(context.Background(), "westeurope", "USD")
	require.NoError(t, err)

	assert.Equal(t, model.ProvenanceLive, table.Provenance)
	b1 := table.Entries["B1"]
	assert.Equal(t, model.PriceSourceLive, b1.Source)
	assert.InDelta(t, 59.04, b1.MonthlyPrice, 0.001)
	assert.Equal(t, "Basic", b1.Tier)
	assert.Equal(t, model.PriceSourceStatic, table.Entries["S1"].Source)
}

func TestResolveRejectsOutOfBandPrice(t *testing.T) {
	svc := NewService(&fakeSource{items: []model.RetailPriceItem{item("B1 App", 1.0)}}, zerolog.Nop())

	entry, err := svc.ResolveSKU(context.Background(), "B1", "westeurope", "USD")
	require.NoError(t, err)
	assert.Equal(t, model.PriceSourceStatic, entry.Source)
	assert.Equal(t, 59.86, entry.MonthlyPrice)
}

func TestResolveKeepsLowestPlausiblePrice(t *testing.T) {
	svc := NewService(&fakeSource{items: []model.RetailPriceItem{
		item("S1 App", 0.095),
		item("S1 App", 0.09),
		item("S1 App", 0.01),
	}}, zerolog.Nop())

	entry, err := svc.ResolveSKU(context.Background(), "S1", "westeurope", "USD")
	require.NoError(t, err)
	assert.InDelta(t, 64.8, entry.MonthlyPrice, 0.001)
}

func TestResolveMatchesMostSpecificSKUFirst(t *testing.T) {
	svc := NewService(&fakeSource{items: []model.RetailPriceItem{item("P1mv3 App", 0.395)}}, zerolog.Nop())

	table, err := svc.Resolve(context.Background(), "westeurope", "USD")
	require.NoError(t, err)
	assert.Equal(t, model.PriceSourceLive, table.Entries["P1mv3"].Source)
	assert.Equal(t, model.PriceSourceStatic, table.Entries["P1V3"].Source)
}

func TestResolveMeterNameTakesPriority(t *testing.T) {
	it := item("S1 App", 0.09)
	it.SkuName = "B1"
	svc := NewService(&fakeSource{items: []model.RetailPriceItem{it}}, zerolog.Nop())

	table, err := svc.Resolve(context.Background(), "westeurope", "USD")
	require.NoError(t, err)
	assert.Equal(t, model.PriceSourceLive, table.Entries["S1"].Source)
	assert.Equal(t, model.PriceSourceStatic, table.Entries["B1"].Source)
}

func TestResolveIgnoresOtherRegionsAndTypes(t *testing.T) {
	other := item("B1 App", 0.082)
	other.ArmRegionName = "eastus"
	reservation := item("B2 App", 0.163)
	reservation.Type = "Reservation"

	svc := NewService(&fakeSource{items: []model.RetailPriceItem{other, reservation}}, zerolog.Nop())
	table, err := svc.Resolve(context.Background(), "westeurope", "USD")
	require.NoError(t, err)
	assert.Equal(t, model.PriceSourceStatic, table.Entries["B1"].Source)
	assert.Equal(t, model.PriceSourceStatic, table.Entries["B2"].Source)
}

func TestResolveFallsBackOnSourceFailure(t *testing.T) {
	svc := NewService(&fakeSource{err: errors.New("connection reset")}, zerolog.Nop())

	table, err := svc.Resolve(context.Background(), "westeurope", "USD")
	require.NoError(t, err)
	assert.Equal(t, model.ProvenanceFallback, table.Provenance)
	assert.Len(t, table.Entries, len(skuCatalog))
	for sku, entry := range table.Entries {
		assert.Equal(t, model.PriceSourceStatic, entry.Source, sku)
	}
	assert.Equal(t, 2306.58, table.Entries["P4mv3"].MonthlyPrice)
}

func TestResolveFreeTierIsAlwaysZero(t *testing.T) {
	svc := NewService(&fakeSource{items: []model.RetailPriceItem{item("F1 App", 0.5)}}, zerolog.Nop())

	entry, err := svc.ResolveSKU(context.Background(), "f1", "westeurope", "USD")
	require.NoError(t, err)
	assert.Zero(t, entry.MonthlyPrice)
}

func TestResolveConvertsCurrency(t *testing.T) {
	svc := NewService(&fakeSource{err: errors.New("offline")}, zerolog.Nop())

	table, err := svc.Resolve(context.Background(), "westeurope", "try")
	require.NoError(t, err)
	assert.Equal(t, "TRY", table.Currency)
	assert.InDelta(t, 1795.8, table.Entries["B1"].MonthlyPrice, 0.001)
	assert.Equal(t, 59.86, table.Entries["B1"].OriginalUSDPrice)

	table, err = svc.Resolve(context.Background(), "westeurope", "EUR")
	require.NoError(t, err)
	assert.InDelta(t, 55.07, table.Entries["B1"].MonthlyPrice, 0.001)
}

func TestResolveRejectsUnsupportedCurrency(t *testing.T) {
	source := &fakeSource{}
	svc := NewService(source, zerolog.Nop())

	_, err := svc.Resolve(context.Background(), "westeurope", "GBP")
	require.ErrorIs(t, err, model.ErrUnsupportedCurrency)
	assert.Zero(t, source.calls)
}

func TestResolveSKUUnknown(t *testing.T) {
	svc := NewService(&fakeSource{}, zerolog.Nop())

	_, err := svc.ResolveSKU(context.Background(), "Y1", "westeurope", "USD")
	require.ErrorIs(t, err, model.ErrUnknownSKU)
}

func TestConvert(t *testing.T) {
	v, err := Convert(10, "USD", "USD")
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)

	v, err = Convert(10, "EUR", "TRY")
	require.NoError(t, err)
	assert.Equal(t, 330.0, v)

	_, err = Convert(10, "TRY", "USD")
	assert.ErrorIs(t, err, model.ErrUnsupportedCurrency)
}
