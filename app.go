package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/elC0mpa/azure-advisor/config"
	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/advisor"
	"github.com/elC0mpa/azure-advisor/service/flag"
	"github.com/elC0mpa/azure-advisor/service/orchestrator"
	"github.com/elC0mpa/azure-advisor/telemetry"
	"github.com/elC0mpa/azure-advisor/utils"
)

var version = "dev"

func main() {
	flagService := flag.NewService(version)
	flags, err := flagService.GetParsedFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fail(err)
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		fail(err)
	}

	if flags.Output != "json" {
		utils.DrawBanner()
		utils.StartSpinner()
	}

	logger := telemetry.NewLogger("azure-advisor", cfg.Log.Level, cfg.Log.Format)

	advisorService := advisor.NewFromConfig(cfg, logger)

	orchestratorService := orchestrator.NewService(advisorService, cfg, os.Stdout)

	if err := orchestratorService.Orchestrate(flags); err != nil {
		utils.StopSpinner()
		fail(err)
	}
}

// loadConfig applies command line overrides on top of the config file and
// environment.
func loadConfig(flags model.Flags) (*config.Config, error) {
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	if flags.Region != "" {
		cfg.Region = flags.Region
	}
	if flags.Currency != "" {
		cfg.Currency = flags.Currency
	}
	if flags.CPUThreshold > 0 {
		cfg.IdleVM.CPUThreshold = flags.CPUThreshold
	}
	if flags.LookbackDays > 0 {
		cfg.IdleVM.LookbackDays = flags.LookbackDays
	}
	if flags.Output == "json" {
		cfg.Log.Level = "error"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
