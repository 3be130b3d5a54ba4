// Package scheduler runs named jobs on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is the unit of work executed on every tick. The context is cancelled
// when the scheduler is stopped and the stop deadline expires.
type Job func(ctx context.Context) error

// Scheduler wraps a cron runner with a single schedule shared by all of
// its jobs. Overlapping runs of the same job are skipped and panics are
// recovered.
type Scheduler struct {
	cron     *cron.Cron
	schedule cron.Schedule
	spec     string
	log      *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a scheduler for a standard 5-field cron spec evaluated in loc.
// A nil loc means server-local time.
func New(log *slog.Logger, spec string, loc *time.Location) (*Scheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse schedule %q: %w", spec, err)
	}
	if loc == nil {
		loc = time.Local
	}

	log = log.With("component", "scheduler")
	logger := cronLogger{log: log}

	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		schedule: schedule,
		spec:     spec,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Register adds a job under name. Jobs should be registered before Start.
func (s *Scheduler) Register(name string, job Job) error {
	_, err := s.cron.AddFunc(s.spec, func() { s.run(name, job) })
	if err != nil {
		return fmt.Errorf("register job %s: %w", name, err)
	}
	s.log.Info("job registered", slog.String("job", name), slog.String("schedule", s.spec))
	return nil
}

func (s *Scheduler) run(name string, job Job) {
	start := time.Now()
	log := s.log.With(slog.String("job", name))

	if err := job(s.ctx); err != nil {
		log.Error("job failed",
			slog.String("error", err.Error()),
			slog.Duration("duration", time.Since(start)),
		)
		return
	}
	log.Info("job finished", slog.Duration("duration", time.Since(start)))
}

// Start begins running jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started", slog.Time("next_run", s.Next(time.Now())))
}

// Next returns the next activation time after t.
func (s *Scheduler) Next(t time.Time) time.Time {
	return s.schedule.Next(t.In(s.cron.Location()))
}

// Stop prevents new runs and waits for running jobs to finish. If ctx
// expires first, running jobs are cancelled and ctx's error is returned.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()

	select {
	case <-done.Done():
		s.cancel()
		s.log.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		s.cancel()
		s.log.Warn("scheduler stop timed out, cancelling running jobs")
		return ctx.Err()
	}
}

// cronLogger adapts slog to cron.Logger. Cron's routine info messages
// (wake, run, schedule) are logged at debug level.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	args := append([]any{slog.String("error", err.Error())}, keysAndValues...)
	l.log.Error("cron: "+msg, args...)
}
