package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/artie-labs/materializer/lib/config"
	"github.com/artie-labs/materializer/lib/logger"
	"github.com/artie-labs/materializer/lib/telemetry/metrics"
	"github.com/artie-labs/materializer/processes/job"
)

func main() {
	// Parse args into settings.
	settings, err := config.LoadSettings(os.Args, true)
	if err != nil {
		logger.Fatal("Failed to initialize config", slog.Any("err", err))
	}

	// Initialize default logger
	_logger, usingSentry := logger.NewLogger(settings)
	slog.SetDefault(_logger)
	if usingSentry {
		slog.Info("Sentry logging enabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Loading Telemetry
	ctx = metrics.InjectMetricsClientIntoCtx(ctx, metrics.LoadExporter(settings.Config))

	materializeJob, err := job.NewJob(ctx, settings.Config)
	if err != nil {
		logger.Fatal("Failed to create job", slog.Any("err", err))
	}

	slog.Info("Config is loaded",
		slog.String("jobID", materializeJob.ID().String()),
		slog.String("input", settings.Config.Input.Path),
		slog.String("output", settings.Config.Output.Path),
		slog.Int("columns", len(settings.Config.Columns)),
		slog.Int("parallelism", settings.Config.Parallelism),
	)

	if err = materializeJob.Run(ctx); err != nil {
		stop()
		logger.Fatal("Job failed", slog.String("jobID", materializeJob.ID().String()), slog.Any("err", err))
	}

	slog.Info("Job finished", slog.String("jobID", materializeJob.ID().String()))
}
