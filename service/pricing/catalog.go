package pricing

import "strings"

// skuCatalog is ordered most specific first so that "P1mv3" never resolves
// to P1V3. Bands and static values are monthly USD.
var skuCatalog = []skuInfo{
	{Name: "P1mv3", Tier: "PremiumMV3", Aliases: []string{"P1mv3 App", "P1mv3"}, MinMonthly: 280, MaxMonthly: 295, StaticUSD: 288.35},
	{Name: "P2mv3", Tier: "PremiumMV3", Aliases: []string{"P2mv3 App", "P2mv3"}, MinMonthly: 570, MaxMonthly: 585, StaticUSD: 576.63},
	{Name: "P3mv3", Tier: "PremiumMV3", Aliases: []string{"P3mv3 App", "P3mv3"}, MinMonthly: 1145, MaxMonthly: 1165, StaticUSD: 1153.25},
	{Name: "P4mv3", Tier: "PremiumMV3", Aliases: []string{"P4mv3 App", "P4mv3"}, MinMonthly: 2295, MaxMonthly: 2315, StaticUSD: 2306.58},
	{Name: "P1V3", Tier: "PremiumV3", Aliases: []string{"P1 v3 App", "P1 v3"}, MinMonthly: 130, MaxMonthly: 140, StaticUSD: 135.71},
	{Name: "P2V3", Tier: "PremiumV3", Aliases: []string{"P2 v3 App", "P2 v3"}, MinMonthly: 265, MaxMonthly: 280, StaticUSD: 271.41},
	{Name: "P3V3", Tier: "PremiumV3", Aliases: []string{"P3 v3 App", "P3 v3"}, MinMonthly: 535, MaxMonthly: 550, StaticUSD: 542.83},
	{Name: "P1V2", Tier: "PremiumV2", Aliases: []string{"P1 v2 App", "P1 v2"}, MinMonthly: 75, MaxMonthly: 90, StaticUSD: 82.80},
	{Name: "P2V2", Tier: "PremiumV2", Aliases: []string{"P2 v2 App", "P2 v2"}, MinMonthly: 160, MaxMonthly: 180, StaticUSD: 166.32},
	{Name: "P3V2", Tier: "PremiumV2", Aliases: []string{"P3 v2 App", "P3 v2"}, MinMonthly: 320, MaxMonthly: 360, StaticUSD: 332.64},
	{Name: "S1", Tier: "Standard", Aliases: []string{"S1 App", "S1"}, MinMonthly: 60, MaxMonthly: 75, StaticUSD: 68.40},
	{Name: "S2", Tier: "Standard", Aliases: []string{"S2 App", "S2"}, MinMonthly: 120, MaxMonthly: 140, StaticUSD: 136.80},
	{Name: "S3", Tier: "Standard", Aliases: []string{"S3 App", "S3"}, MinMonthly: 240, MaxMonthly: 280, StaticUSD: 273.60},
	{Name: "B1", Tier: "Basic", Aliases: []string{"B1 App", "B1"}, MinMonthly: 55, MaxMonthly: 65, StaticUSD: 59.86},
	{Name: "B2", Tier: "Basic", Aliases: []string{"B2 App", "B2"}, MinMonthly: 115, MaxMonthly: 125, StaticUSD: 118.99},
	{Name: "B3", Tier: "Basic", Aliases: []string{"B3 App", "B3"}, MinMonthly: 230, MaxMonthly: 245, StaticUSD: 237.25},
	{Name: "D1", Tier: "Shared", Aliases: []string{"D1 App", "Shared App", "Shared"}, StaticUSD: 9.36},
	{Name: "F1", Tier: "Free", Aliases: []string{"F1 App", "Free"}, StaticUSD: 0},
}

// rates are fixed conversion factors keyed by source then target currency.
var rates = map[string]map[string]float64{
	"USD": {"TRY": 30.0, "EUR": 0.92},
	"EUR": {"TRY": 33.0},
}

var supportedCurrencies = map[string]bool{
	"USD": true,
	"EUR": true,
	"TRY": true,
}

func lookupSKU(name string) (skuInfo, bool) {
	for _, info := range skuCatalog {
		if strings.EqualFold(info.Name, name) {
			return info, true
		}
	}
	return skuInfo{}, false
}

// Tier returns the App Service tier of a known SKU, e.g. "Basic" for B1.
func Tier(sku string) (string, bool) {
	info, ok := lookupSKU(sku)
	if !ok {
		return "", false
	}
	return info.Tier, true
}

// SKUs lists every SKU the catalog prices.
func SKUs() []string {
	names := make([]string, 0, len(skuCatalog))
	for _, info := range skuCatalog {
		names = append(names, info.Name)
	}
	return names
}
