package utils

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/azure-advisor/model"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
	ColorRank5 = "#66c2a5"
	ColorRank6 = "#1a9850"
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#0078D4"))

// DrawSavingsChart draws one bar per recommendation category, colored by
// rank of its estimated monthly savings.
func DrawSavingsChart(recs []model.Recommendation) {
	summary := model.Summarize(recs)
	if summary.TotalSavings <= 0 {
		return
	}

	categories := make([]model.Category, 0, len(summary.SavingsBy))
	for category := range summary.SavingsBy {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	values := make([]float64, len(categories))
	for i, category := range categories {
		values[i] = summary.SavingsBy[category]
	}
	colors := assignRankedColors(values)

	bc := barchart.New(100, 16)
	for i, category := range categories {
		bc.Push(barchart.BarData{
			Label: fmt.Sprintf("%s: %.2f %s", category, values[i], summary.Currency),
			Values: []barchart.BarValue{
				{
					Value: values[i],
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i])),
				},
			},
		})
	}

	fmt.Println()
	bc.Draw()
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, defaultStyle.Render(bc.View())))
}

func assignRankedColors(values []float64) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	type valueWithIndex struct {
		index int
		value float64
	}

	toSort := make([]valueWithIndex, len(values))
	for i, v := range values {
		toSort[i] = valueWithIndex{index: i, value: v}
	}

	sort.Slice(toSort, func(i, j int) bool {
		return toSort[i].value > toSort[j].value
	})

	colors := make([]string, len(values))
	for rank, sorted := range toSort {
		if rank < len(palette) {
			colors[sorted.index] = palette[rank]
		} else {
			colors[sorted.index] = palette[len(palette)-1]
		}
	}

	return colors
}
