package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/cricket-feed/internal/app"
	"github.com/riskibarqy/cricket-feed/internal/config"
	"github.com/riskibarqy/cricket-feed/internal/interfaces/cli"
	"github.com/riskibarqy/cricket-feed/internal/observability"
	idgen "github.com/riskibarqy/cricket-feed/internal/platform/id"
	"github.com/riskibarqy/cricket-feed/internal/platform/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return cli.WriteError(os.Stderr, err)
	}

	// stdout carries the JSON payload, so logs go to stderr.
	logger := logging.New(os.Stderr, cfg.LogLevel, true)
	if runID, err := idgen.NewRandomGenerator(0).NewID(); err == nil {
		logger = logger.With("run_id", runID)
	}
	logging.SetDefault(logger)
	defer func() {
		_ = logger.Sync()
	}()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return cli.ExitInternal
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("shutdown uptrace", "error", err)
		}
	}()

	client, err := app.NewCricbuzzClient(cfg, logger)
	if err != nil {
		logger.Error("build cricbuzz client", "error", err)
		return cli.ExitInternal
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(client, os.Stdout).ExecuteContext(ctx); err != nil {
		return cli.WriteError(os.Stderr, err)
	}
	return cli.ExitOK
}
