package utils

import (
	"fmt"
	"os"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawVMTable(subscription string, vms []model.VMUtilization) {
	drawHeader(" 🖥️  VIRTUAL MACHINE UTILIZATION", subscription)

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"VM", "Resource Group", "Size", "Power State", "Avg CPU", "Samples", "Verdict"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	for _, vm := range vms {
		cpu := "n/a"
		if vm.TelemetryKnown {
			cpu = fmt.Sprintf("%.2f%%", vm.CPUAverage)
		}
		tw.AppendRow(table.Row{
			vm.Descriptor.Name,
			vm.Descriptor.ResourceGroup,
			vm.Size,
			vm.PowerState,
			cpu,
			vm.Samples,
			verdictColor(vm.Verdict).Sprint(vm.Verdict),
		})
	}
	tw.Render()
}

func verdictColor(v model.Verdict) text.Color {
	switch v {
	case model.VerdictIdle:
		return text.FgRed
	case model.VerdictHealthy:
		return text.FgGreen
	default:
		return text.FgHiBlack
	}
}
