package inspector

import (
	"context"
	"fmt"
	"sync"

	"github.com/elC0mpa/azure-advisor/model"
	"github.com/elC0mpa/azure-advisor/service/metrics"
	"github.com/elC0mpa/azure-advisor/service/provider"
	"github.com/elC0mpa/azure-advisor/telemetry"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// NewIdleVMInspector builds the idle VM inspector. limiter bounds Azure
// Monitor calls and may be shared across scans.
func NewIdleVMInspector(limiter *rate.Limiter, logger zerolog.Logger) *IdleVMInspector {
	return &IdleVMInspector{
		limiter: limiter,
		logger:  logger.With().Str("inspector", "idle-vm").Logger(),
	}
}

func (i *IdleVMInspector) Name() string             { return "idle-vm" }
func (i *IdleVMInspector) Category() model.Category { return model.CategoryIdleVM }

// Classify is the idle rule: strictly below the threshold is idle.
func Classify(cpuAverage, threshold float64) model.Verdict {
	if cpuAverage < threshold {
		return model.VerdictIdle
	}
	return model.VerdictHealthy
}

func (i *IdleVMInspector) Inspect(ctx context.Context, clients *provider.Clients, cfg model.ScanConfig) ([]model.Finding, error) {
	rows, err := i.Analyze(ctx, clients, cfg.IdleVM)
	if err != nil {
		return nil, err
	}

	var findings []model.Finding
	for _, row := range rows {
		if row.Verdict == model.VerdictIdle {
			findings = append(findings, model.IdleVMFinding{VM: row})
		}
	}
	return findings, nil
}

// Analyze evaluates every running VM and returns one row per VM with its
// verdict. Stopped and deallocated machines are not listed.
func (i *IdleVMInspector) Analyze(ctx context.Context, clients *provider.Clients, cfg model.IdleVMConfig) ([]model.VMUtilization, error) {
	cfg = withIdleVMDefaults(cfg)

	vms, err := clients.Compute.ListVirtualMachines(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list virtual machines: %w", err)
	}

	aggregator := metrics.NewAggregator(clients.Monitor, i.limiter, i.logger)

	var (
		mu   sync.Mutex
		rows []model.VMUtilization
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)

	for _, vm := range vms {
		g.Go(func() error {
			row, ok := i.evaluate(gctx, clients.Compute, aggregator, vm, cfg)
			if !ok {
				return nil
			}
			mu.Lock()
			rows = append(rows, row)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}

func (i *IdleVMInspector) evaluate(ctx context.Context, compute provider.ComputeService, aggregator metrics.Aggregator, vm model.VirtualMachine, cfg model.IdleVMConfig) (model.VMUtilization, bool) {
	d := vm.Descriptor

	state, err := compute.GetPowerState(ctx, d.ResourceGroup, d.Name)
	if err != nil {
		i.skip(d, err, "failed to read instance view")
		return model.VMUtilization{}, false
	}
	if state != model.PowerStateRunning {
		return model.VMUtilization{}, false
	}

	util := aggregator.Utilization(ctx, d.ID, model.CPUMetricName, cfg.LookbackDays)
	if util.Err != nil {
		i.skip(d, util.Err, "failed to read cpu metrics")
		return model.VMUtilization{}, false
	}

	row := model.VMUtilization{
		Descriptor:     d,
		Size:           vm.Size,
		PowerState:     state,
		CPUAverage:     util.Average,
		Samples:        util.Samples,
		TelemetryKnown: util.Known,
		DaysAnalyzed:   cfg.LookbackDays,
		CPUThreshold:   cfg.CPUThreshold,
	}

	if !util.Known && cfg.MissingTelemetry == model.MissingTelemetrySkip {
		row.Verdict = model.VerdictUnknown
		row.Recommendation = "No CPU data in the analysis window"
		return row, true
	}

	row.Verdict = Classify(util.Average, cfg.CPUThreshold)
	if row.Verdict == model.VerdictIdle {
		row.Recommendation = fmt.Sprintf("CPU averaged %.2f%% over %d days, consider deallocating", util.Average, cfg.LookbackDays)
	} else {
		row.Recommendation = "No action"
	}
	return row, true
}

func (i *IdleVMInspector) skip(d model.ResourceDescriptor, err error, msg string) {
	i.logger.Warn().Err(err).Str("resource_id", d.ID).Msg(msg)
	telemetry.ResourcesSkippedTotal.WithLabelValues(i.Name()).Inc()
}

func withIdleVMDefaults(cfg model.IdleVMConfig) model.IdleVMConfig {
	if cfg.CPUThreshold <= 0 {
		cfg.CPUThreshold = model.DefaultCPUThreshold
	}
	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = model.DefaultLookbackDays
	}
	if cfg.MissingTelemetry == "" {
		cfg.MissingTelemetry = model.MissingTelemetryIdle
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 8
	}
	return cfg
}
