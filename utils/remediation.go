package utils

import (
	"fmt"
	"sort"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawRemediationResult(action string, result model.RemediationResult) {
	status := text.FgGreen.Sprint("✔ succeeded")
	if !result.Success {
		status = text.FgRed.Sprint("✘ failed")
	}
	fmt.Printf("\n %s %s\n", text.FgHiWhite.Sprint(action), status)
	fmt.Printf(" %s\n", result.Message)

	keys := make([]string, 0, len(result.Details))
	for k := range result.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("   %s: %v\n", text.FgHiBlack.Sprint(k), result.Details[k])
	}
}

func DrawAccount(account *model.AccountInfo) {
	drawHeader(" 🔑  AZURE SUBSCRIPTION", "")
	fmt.Printf(" ID:    %s\n Name:  %s\n State: %s\n", account.AccountID, account.AccountName, account.State)
}
