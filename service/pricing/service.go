package pricing

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/provider"
	"github.com/elC0mpa/azure-advisor/telemetry"
	"github.com/rs/zerolog"
)

func NewService(source provider.PriceSource, logger zerolog.Logger) *service {
	return &service{
		source: source,
		logger: logger.With().Str("component", "pricing").Logger(),
		now:    time.Now,
	}
}

// Resolve returns the price of every known App Service SKU in region,
// converted to currency. Any failure of the live source yields the static
// table with fallback provenance.
func (s *service) Resolve(ctx context.Context, region, currency string) (model.PricingTable, error) {
	currency = strings.ToUpper(currency)
	if !supportedCurrencies[currency] {
		return model.PricingTable{}, fmt.Errorf("%w: %q", model.ErrUnsupportedCurrency, currency)
	}

	if s.source == nil {
		return s.fallback(region, currency, "no live price source configured"), nil
	}

	items, err := s.source.FetchPrices(ctx, ServiceName, region, BaseCurrency)
	if err != nil {
		return s.fallback(region, currency, err.Error()), nil
	}

	return s.buildTable(items, region, currency), nil
}

// ResolveSKU prices a single SKU.
func (s *service) ResolveSKU(ctx context.Context, sku, region, currency string) (model.PricingEntry, error) {
	info, ok := lookupSKU(sku)
	if !ok {
		return model.PricingEntry{}, fmt.Errorf("%w: %q", model.ErrUnknownSKU, sku)
	}

	table, err := s.Resolve(ctx, region, currency)
	if err != nil {
		return model.PricingEntry{}, err
	}

	entry, ok := table.Entries[info.Name]
	if !ok {
		return model.PricingEntry{}, fmt.Errorf("%w: %q", model.ErrUnknownSKU, sku)
	}
	return entry, nil
}

func (s *service) fallback(region, currency, reason string) model.PricingTable {
	s.logger.Warn().
		Str("region", region).
		Str("reason", reason).
		Msg("live pricing unavailable, using static table")
	telemetry.PricingFallbackTotal.WithLabelValues(region).Inc()

	now := s.now()
	table := model.PricingTable{
		Region:     region,
		Currency:   currency,
		Provenance: model.ProvenanceFallback,
		Entries:    make(map[string]model.PricingEntry, len(skuCatalog)),
		UpdatedAt:  now,
	}
	for _, info := range skuCatalog {
		table.Entries[info.Name] = staticEntry(info, region, currency, now)
	}
	return table
}

func (s *service) buildTable(items []model.RetailPriceItem, region, currency string) model.PricingTable {
	now := s.now()
	live := make(map[string]model.PricingEntry)

	for _, item := range items {
		if item.Type != "Consumption" || !strings.EqualFold(item.ArmRegionName, region) {
			continue
		}

		info, ok := matchSKU(item)
		if !ok {
			continue
		}

		monthly := item.RetailPrice * HoursPerMonth
		if info.hasBand() && (monthly < info.MinMonthly || monthly > info.MaxMonthly) {
			s.logger.Warn().
				Str("sku", info.Name).
				Str("meter", item.MeterName).
				Float64("monthly_usd", monthly).
				Float64("min", info.MinMonthly).
				Float64("max", info.MaxMonthly).
				Msg("live price outside plausibility band")
			telemetry.PricingRejectedTotal.WithLabelValues(info.Name).Inc()
			continue
		}

		if existing, ok := live[info.Name]; ok && existing.OriginalUSDPrice <= monthly {
			continue
		}

		live[info.Name] = model.PricingEntry{
			SKU:              info.Name,
			Tier:             info.Tier,
			MonthlyPrice:     convertUSD(monthly, currency),
			HourlyPrice:      convertHourly(item.RetailPrice, currency),
			Currency:         currency,
			Region:           region,
			Source:           model.PriceSourceLive,
			MeterName:        item.MeterName,
			ProductName:      item.ProductName,
			OriginalUSDPrice: round2(monthly),
			UpdatedAt:        now,
		}
	}

	table := model.PricingTable{
		Region:     region,
		Currency:   currency,
		Provenance: model.ProvenanceLive,
		Entries:    make(map[string]model.PricingEntry, len(skuCatalog)),
		UpdatedAt:  now,
	}
	for _, info := range skuCatalog {
		if entry, ok := live[info.Name]; ok && info.Name != "F1" {
			table.Entries[info.Name] = entry
			continue
		}
		table.Entries[info.Name] = staticEntry(info, region, currency, now)
	}

	s.logger.Debug().
		Str("region", region).
		Int("items", len(items)).
		Int("live_skus", len(live)).
		Msg("resolved app service pricing")

	return table
}

// matchSKU maps a price item to an internal SKU. Meter name is tried for every
// SKU before SKU name, and SKU name before product name.
func matchSKU(item model.RetailPriceItem) (skuInfo, bool) {
	for _, field := range []string{item.MeterName, item.SkuName, item.ProductName} {
		if field == "" {
			continue
		}
		lowered := strings.ToLower(field)
		for _, info := range skuCatalog {
			for _, alias := range info.Aliases {
				if strings.Contains(lowered, strings.ToLower(alias)) {
					return info, true
				}
			}
		}
	}
	return skuInfo{}, false
}

func staticEntry(info skuInfo, region, currency string, now time.Time) model.PricingEntry {
	return model.PricingEntry{
		SKU:              info.Name,
		Tier:             info.Tier,
		MonthlyPrice:     convertUSD(info.StaticUSD, currency),
		HourlyPrice:      convertHourly(info.StaticUSD/HoursPerMonth, currency),
		Currency:         currency,
		Region:           region,
		Source:           model.PriceSourceStatic,
		OriginalUSDPrice: info.StaticUSD,
		UpdatedAt:        now,
	}
}

// Convert applies the fixed exchange rates. Same-currency conversion is the
// identity; any pair without a rate is an error.
func Convert(amount float64, from, to string) (float64, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	if from == to {
		return amount, nil
	}
	rate, ok := rates[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %s to %s", model.ErrUnsupportedCurrency, from, to)
	}
	return round2(amount * rate), nil
}

func convertUSD(amount float64, currency string) float64 {
	return round2(amount * usdFactor(currency))
}

func convertHourly(amount float64, currency string) float64 {
	return math.Round(amount*usdFactor(currency)*10000) / 10000
}

func usdFactor(currency string) float64 {
	if currency == BaseCurrency {
		return 1
	}
	if rate, ok := rates[BaseCurrency][currency]; ok {
		return rate
	}
	return 1
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
