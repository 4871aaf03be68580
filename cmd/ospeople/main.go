package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/ospeople/internal/config"
	"github.com/gabapcia/ospeople/internal/handlers/cli"
	"github.com/gabapcia/ospeople/internal/infra/storage/yamlstore"
	"github.com/gabapcia/ospeople/internal/intake"
	"github.com/gabapcia/ospeople/internal/people"
	"github.com/gabapcia/ospeople/internal/pkg/logger"
	"github.com/gabapcia/ospeople/internal/pkg/telemetry"
)

const shutdownTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 2
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	shutdown := telemetry.ShutdownFunc(telemetry.Noop)
	if cfg.TelemetryEnabled {
		if shutdown, err = telemetry.Init(ctx, cfg.ServiceName); err != nil {
			logger.Error(ctx, "telemetry init failed", "error", err)
			return 2
		}
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Warn(shutdownCtx, "telemetry shutdown failed", "error", err)
		}
	}()

	svc := people.New()
	in, err := intake.New(yamlstore.NewOS(), svc, intake.WithWorkers(cfg.Workers))
	if err != nil {
		logger.Error(ctx, "intake init failed", "error", err)
		return 2
	}

	switch err := cli.Run(ctx, os.Stdout, svc, in); {
	case err == nil:
		return 0
	case errors.Is(err, cli.ErrRejected):
		return 1
	default:
		fmt.Fprintln(os.Stderr, "ospeople:", err)
		return 2
	}
}
