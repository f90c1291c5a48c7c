package utils

import (
	"os"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawPlanTable(subscription string, plans []model.ServicePlan) {
	drawHeader(" 📦  APP SERVICE PLANS", subscription)

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Plan", "Resource Group", "Location", "SKU", "Tier", "Capacity", "Sites"})
	tw.SetStyle(table.StyleRounded)

	for _, plan := range plans {
		sites := text.FgGreen.Sprint(plan.NumberOfSites)
		if plan.NumberOfSites == 0 {
			sites = text.FgRed.Sprint(plan.NumberOfSites)
		}
		tw.AppendRow(table.Row{
			plan.Descriptor.Name,
			plan.Descriptor.ResourceGroup,
			plan.Descriptor.Location,
			plan.SKU.Name,
			plan.SKU.Tier,
			plan.SKU.Capacity,
			sites,
		})
	}
	tw.Render()
}
