package utils

import (
	"fmt"
	"os"
	"sort"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawPricingTable(pricing model.PricingTable) {
	drawHeader(fmt.Sprintf(" 🏷️  APP SERVICE PRICING (%s, %s)", pricing.Region, pricing.Currency), "")
	if pricing.Provenance == model.ProvenanceFallback {
		fmt.Println(text.FgYellow.Sprint(" Live prices unavailable, showing static fallback table"))
	}

	skus := make([]string, 0, len(pricing.Entries))
	for sku := range pricing.Entries {
		skus = append(skus, sku)
	}
	sort.Slice(skus, func(i, j int) bool {
		return pricing.Entries[skus[i]].MonthlyPrice < pricing.Entries[skus[j]].MonthlyPrice
	})

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"SKU", "Tier", "Hourly", "Monthly", "Source"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	for _, sku := range skus {
		entry := pricing.Entries[sku]
		source := text.FgGreen.Sprint(entry.Source)
		if entry.Source == model.PriceSourceStatic {
			source = text.FgYellow.Sprint(entry.Source)
		}
		tw.AppendRow(table.Row{
			entry.SKU,
			entry.Tier,
			fmt.Sprintf("%.4f", entry.HourlyPrice),
			fmt.Sprintf("%.2f %s", entry.MonthlyPrice, entry.Currency),
			source,
		})
	}
	tw.Render()
}
