package utils

import (
	"fmt"
	"os"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawRecommendationTable(subscription string, recs []model.Recommendation) {
	drawHeader(" 🩺  AZURE ADVISOR RECOMMENDATIONS", subscription)

	if len(recs) == 0 {
		fmt.Println(text.FgGreen.Sprint(" No idle resources found. Nothing to optimize."))
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Category", "Resource", "Resource Group", "Location", "Problem", "Savings", "Action"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, WidthMax: 48},
		{Number: 6, Align: text.AlignRight},
	})

	for _, rec := range recs {
		tw.AppendRow(table.Row{
			impactColor(rec.Impact).Sprint(rec.Category),
			rec.ImpactedValue,
			rec.ResourceMetadata.ResourceGroup,
			rec.ResourceMetadata.Location,
			rec.Problem,
			fmt.Sprintf("%.2f %s", rec.EstimatedMonthlySavings, rec.Currency),
			rec.ActionDetails.Action,
		})
	}

	summary := model.Summarize(recs)
	tw.AppendSeparator()
	tw.AppendRow(table.Row{
		text.FgHiWhite.Sprintf("%d findings", summary.Total), "", "", "", "",
		text.FgHiYellow.Sprintf("%.2f %s", summary.TotalSavings, summary.Currency), "",
	})
	tw.Render()
}

func impactColor(impact model.Impact) text.Color {
	switch impact {
	case model.ImpactHigh:
		return text.FgRed
	case model.ImpactMedium:
		return text.FgYellow
	default:
		return text.FgGreen
	}
}
