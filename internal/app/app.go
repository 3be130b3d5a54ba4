package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/renewal-manager/internal/adapter/postgres"
	"github.com/heartmarshall/renewal-manager/internal/adapter/postgres/reminderlog"
	"github.com/heartmarshall/renewal-manager/internal/adapter/postgres/renewable"
	"github.com/heartmarshall/renewal-manager/internal/auth"
	"github.com/heartmarshall/renewal-manager/internal/config"
	"github.com/heartmarshall/renewal-manager/internal/metrics"
	"github.com/heartmarshall/renewal-manager/internal/scheduler"
	"github.com/heartmarshall/renewal-manager/internal/service/reminder"
	"github.com/heartmarshall/renewal-manager/internal/transport/middleware"
	"github.com/heartmarshall/renewal-manager/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, starts the reminder scheduler and serves the admin HTTP API
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector()
	}

	engine, err := NewReminderEngine(logger, pool, cfg, collector)
	if err != nil {
		return err
	}

	var (
		sched   *scheduler.Scheduler
		nextRun func(time.Time) time.Time
	)
	if cfg.Reminder.Enabled {
		sched, err = scheduler.New(logger, cfg.Reminder.Schedule, time.Local)
		if err != nil {
			return err
		}
		if err := sched.Register("reminder-sweep", sweepJob(engine)); err != nil {
			return err
		}
		sched.Start()
		nextRun = sched.Next
	} else {
		logger.Warn("reminder scheduler disabled")
	}

	deps := rest.RouterDeps{
		Health: rest.NewHealthHandler(pool, engine, nextRun, BuildVersion()),
		Reminders: rest.NewReminderHandler(
			engine,
			renewable.New(pool),
			reminderlog.New(pool),
			renewable.UpcomingWindowDays,
			logger,
		),
		MetricsPath: cfg.Metrics.Path,
		Auth:        middleware.Auth(auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)),
	}
	if collector != nil {
		deps.Metrics = collector.Handler()
	}

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)(rest.NewRouter(deps))

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-serveErr:
		if err != nil {
			logger.Error("http server failed", slog.String("error", err.Error()))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	var shutdownErr error
	if err := srv.Shutdown(shutdownCtx); err != nil {
		shutdownErr = errors.Join(shutdownErr, fmt.Errorf("shutdown http server: %w", err))
	}
	if sched != nil {
		if err := sched.Stop(shutdownCtx); err != nil {
			shutdownErr = errors.Join(shutdownErr, fmt.Errorf("stop scheduler: %w", err))
		}
	}

	logger.Info("application stopped")
	return shutdownErr
}

type sweeper interface {
	RunSweep(ctx context.Context) (reminder.SweepResult, error)
}

// sweepJob adapts the engine to a scheduler job. A tick that finds a
// manual sweep still running is not an error.
func sweepJob(engine sweeper) scheduler.Job {
	return func(ctx context.Context) error {
		_, err := engine.RunSweep(ctx)
		if errors.Is(err, reminder.ErrSweepInProgress) {
			slog.Default().InfoContext(ctx, "scheduled sweep skipped, another sweep is running")
			return nil
		}
		return err
	}
}
