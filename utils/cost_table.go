package utils

import (
	"fmt"
	"os"
	"sort"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawCostTable(subscription string, details *model.CostDetails) {
	drawHeader(" 💰  AZURE COST DETAILS", subscription)
	fmt.Printf(" Period: %s -> %s\n", details.FromDate, details.ToDate)

	drawCostGroupTable("Costs by Service", "Service", details.CostsByService, details.TotalCost, details.Currency)
	drawCostGroupTable("Costs by Resource Group", "Resource Group", details.CostsByResourceGroup, details.TotalCost, details.Currency)
}

func drawCostGroupTable(title, column string, groups map[string]float64, total float64, currency string) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{column, "Cost", "Share"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	for _, group := range orderCosts(groups, currency) {
		share := 0.0
		if total > 0 {
			share = group.Amount / total * 100
		}
		name := text.FgGreen.Sprint(group.Name)
		if share >= 25 {
			name = text.FgRed.Sprint(group.Name)
		}
		tw.AppendRow(table.Row{name, fmt.Sprintf("%.2f %s", group.Amount, group.Unit), fmt.Sprintf("%.1f%%", share)})
	}

	tw.AppendSeparator()
	tw.AppendRow(table.Row{text.FgHiWhite.Sprint("Total"), text.FgHiYellow.Sprintf("%.2f %s", total, currency), ""})
	tw.Render()
}

func orderCosts(groups map[string]float64, currency string) []model.ServiceCost {
	sorted := make([]model.ServiceCost, 0, len(groups))
	for name, amount := range groups {
		sorted = append(sorted, model.ServiceCost{
			Name:   name,
			Amount: amount,
			Unit:   currency,
		})
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})

	return sorted
}
