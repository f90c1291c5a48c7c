package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elC0mpa/azure-advisor/cmd/server/api"
	"github.com/elC0mpa/azure-advisor/config"
	"github.com/elC0mpa/azure-advisor/service/advisor"
	"github.com/elC0mpa/azure-advisor/telemetry"
)

func main() {
	cfg, err := config.Load(os.Getenv("ADVISOR_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	logger := telemetry.NewLogger("azure-advisor-api", cfg.Log.Level, cfg.Log.Format)
	srv := api.NewServer(advisor.NewFromConfig(cfg, logger), cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("API server failed")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
	logger.Info().Msg("API server stopped")
}
