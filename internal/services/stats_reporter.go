package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/taskdeck/backend/internal/infrastructure/monitor"
)

// ReporterConfig controls how frequently store statistics are logged.
type ReporterConfig struct {
	Interval time.Duration
}

// StatsReporter periodically logs the monitor's store snapshot so
// operators can follow task and history growth without polling /health.
type StatsReporter struct {
	monitor *monitor.Monitor
	logger  *zap.Logger
	cron    *cron.Cron
	cfg     ReporterConfig
}

func NewStatsReporter(mon *monitor.Monitor, logger *zap.Logger, cfg ReporterConfig) *StatsReporter {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	sr := &StatsReporter{
		monitor: mon,
		logger:  logger,
		cfg:     cfg,
		cron:    cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = sr.cron.AddFunc(schedule, sr.report)

	return sr
}

// Start launches the cron scheduler.
func (sr *StatsReporter) Start() {
	if sr == nil || sr.cron == nil {
		return
	}
	sr.cron.Start()
	sr.logger.Info("stats reporter started")
}

// Stop gracefully stops the scheduler.
func (sr *StatsReporter) Stop(ctx context.Context) {
	if sr == nil || sr.cron == nil {
		return
	}
	stopCtx := sr.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	sr.logger.Info("stats reporter stopped")
}

func (sr *StatsReporter) report() {
	if sr.monitor == nil {
		return
	}
	status := sr.monitor.GetStatus()
	sr.logger.Info("store stats",
		zap.Int("tasks", status.Tasks),
		zap.Int("completed", status.Completed),
		zap.Int("history_depth", status.HistoryDepth))
}
