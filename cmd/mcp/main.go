package main

import (
	"fmt"
	"os"

	"github.com/elC0mpa/azure-advisor/cmd/mcp/tools"
	"github.com/elC0mpa/azure-advisor/service/advisor"
	"github.com/elC0mpa/azure-advisor/telemetry"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the protocol, so logs stay on stderr.
	logger := telemetry.NewLogger("azure-advisor-mcp", cfg.Log.Level, cfg.Log.Format)
	if !cfg.HasCredentials() {
		logger.Warn().Msg("azure credentials not configured, only pricing tools will succeed")
	}

	s := server.NewMCPServer(
		"azure-advisor-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterAzureTools(s, advisor.NewFromConfig(cfg, logger), cfg)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
