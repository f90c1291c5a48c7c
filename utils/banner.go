package utils

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
	"github.com/jedib0t/go-pretty/v6/text"
)

var loader = spinner.New(spinner.CharSets[14], 100*time.Millisecond)

func DrawBanner() {
	banner := figure.NewColorFigure("AZURE ADVISOR", "small", "blue", true)
	banner.Print()
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))
}

func StartSpinner() {
	loader.Suffix = " Inspecting subscription..."
	loader.Start()
}

func StopSpinner() {
	loader.Stop()
}

func drawHeader(title, subscription string) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(title))
	if subscription != "" {
		fmt.Printf(" Subscription: %s\n", text.FgBlue.Sprint(subscription))
	}
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))
}
