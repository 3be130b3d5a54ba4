package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/renewal-manager/internal/domain"
)

// RunSweep evaluates every active renewable once and sends the reminders
// that are due today. Only a failure to list renewables (or cancellation
// of ctx) is returned; per-renewable failures are logged and counted.
func (s *Service) RunSweep(ctx context.Context) (SweepResult, error) {
	return s.sweep(ctx, TriggerScheduled)
}

// TriggerManually runs a sweep on demand. It shares RunSweep's code path
// and due-date rules.
func (s *Service) TriggerManually(ctx context.Context) (SweepResult, error) {
	return s.sweep(ctx, TriggerManual)
}

type sweepCounters struct {
	due, sent, skipped, failed atomic.Int64
}

func (s *Service) sweep(ctx context.Context, trigger Trigger) (result SweepResult, err error) {
	if !s.running.TryLock() {
		return SweepResult{Trigger: trigger}, ErrSweepInProgress
	}
	defer s.running.Unlock()

	now := s.now()
	result = SweepResult{Trigger: trigger, StartedAt: now}
	log := s.log.With(slog.String("trigger", trigger.String()))

	s.setRunning()
	defer func() {
		result.FinishedAt = s.now()
		s.metrics.RecordSweep(trigger.String(), result.Duration(), err)
		s.setFinished(result, err)
	}()

	log.InfoContext(ctx, "reminder sweep started")

	renewables, err := s.renewables.ListActive(ctx)
	if err != nil {
		log.ErrorContext(ctx, "reminder sweep aborted", slog.String("error", err.Error()))
		return result, fmt.Errorf("list renewables: %w", err)
	}
	result.Evaluated = len(renewables)

	types := newItemTypeCache(s.itemTypes)
	var counters sweepCounters

	var g errgroup.Group
	g.SetLimit(s.cfg.Concurrency)

	for _, r := range renewables {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			s.evaluate(ctx, r, now, types, &counters)
			return nil
		})
	}
	_ = g.Wait()

	result.Due = int(counters.due.Load())
	result.Sent = int(counters.sent.Load())
	result.Skipped = int(counters.skipped.Load())
	result.Failed = int(counters.failed.Load())

	if ctxErr := ctx.Err(); ctxErr != nil {
		log.WarnContext(ctx, "reminder sweep interrupted",
			slog.Int("due", result.Due),
			slog.Int("sent", result.Sent),
		)
		return result, fmt.Errorf("reminder sweep interrupted: %w", ctxErr)
	}

	log.InfoContext(ctx, "reminder sweep completed",
		slog.Int("evaluated", result.Evaluated),
		slog.Int("due", result.Due),
		slog.Int("sent", result.Sent),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
		slog.Duration("duration", s.now().Sub(now)),
	)

	return result, nil
}

// evaluate decides whether r is due at now and, if so, dispatches it.
func (s *Service) evaluate(ctx context.Context, r domain.Renewable, now time.Time, types *itemTypeCache, c *sweepCounters) {
	if !r.IsActive() || !r.HasAssignee() {
		return
	}

	days := DaysUntilExpiry(r.EndDate, now)

	intervals, err := resolveIntervals(ctx, r, types)
	if err != nil {
		c.failed.Add(1)
		s.metrics.RecordReminder(outcomeFailed)
		s.log.ErrorContext(ctx, "resolve reminder intervals",
			slog.Int64("renewable_id", r.ID),
			slog.String("error", err.Error()),
		)
		return
	}

	if !intervals.Contains(days) {
		return
	}

	c.due.Add(1)
	switch s.dispatch(ctx, r, days, now, types) {
	case outcomeSent:
		c.sent.Add(1)
	case outcomeSkipped:
		c.skipped.Add(1)
	default:
		c.failed.Add(1)
	}
}

// Status reports whether a sweep is running and how the last one ended.
func (s *Service) Status() Status {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()

	st := Status{Running: s.inProgress, LastErr: s.lastErr}
	if s.last != nil {
		last := *s.last
		st.Last = &last
	}
	return st
}

func (s *Service) setRunning() {
	s.statusMu.Lock()
	s.inProgress = true
	s.statusMu.Unlock()
}

func (s *Service) setFinished(result SweepResult, err error) {
	s.statusMu.Lock()
	s.inProgress = false
	s.last = &result
	s.lastErr = err
	s.statusMu.Unlock()
}
