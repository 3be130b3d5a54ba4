// Command remind runs a single reminder sweep and exits. It is intended to
// be invoked by an external cron job or by an operator, as an alternative
// to the in-process scheduler of cmd/server.
//
// The sweep guard is per process, so a run that overlaps cmd/server's
// scheduled sweep is not refused. With dedupe enabled the dispatch ledger
// still keeps either run from sending a reminder the other already sent.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/renewal-manager/internal/adapter/postgres"
	"github.com/heartmarshall/renewal-manager/internal/app"
	"github.com/heartmarshall/renewal-manager/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	engine, err := app.NewReminderEngine(logger, pool, cfg, nil)
	if err != nil {
		logger.Error("create reminder engine", slog.String("error", err.Error()))
		os.Exit(1)
	}

	result, err := engine.TriggerManually(ctx)
	if err != nil {
		logger.Error("reminder sweep failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("reminder sweep completed",
		slog.Int("evaluated", result.Evaluated),
		slog.Int("due", result.Due),
		slog.Int("sent", result.Sent),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
		slog.Duration("duration", result.Duration()),
	)
}
