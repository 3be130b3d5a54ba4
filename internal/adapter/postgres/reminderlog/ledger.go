package reminderlog

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/renewal-manager/internal/adapter/postgres"
	"github.com/heartmarshall/renewal-manager/internal/domain"
)

// Ledger records which (renewable, interval, day) reminders have been
// claimed so that overlapping or repeated sweeps send each one at most once.
type Ledger struct {
	db postgres.Querier
}

// NewLedger creates a dispatch ledger.
func NewLedger(db postgres.Querier) *Ledger {
	return &Ledger{db: db}
}

// Reserve claims key. It returns false when the key was already claimed.
func (l *Ledger) Reserve(ctx context.Context, key domain.DispatchKey) (bool, error) {
	q := postgres.Builder.Insert("reminder_dispatches").
		Columns("renewable_id", "days_before_expiry", "sweep_date").
		Values(key.RenewableID, key.DaysBeforeExpiry, key.SweepDate).
		Suffix("ON CONFLICT (renewable_id, days_before_expiry, sweep_date) DO NOTHING")

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, l.db), q)
	if err != nil {
		return false, postgres.MapError(err, "dispatch for renewable", key.RenewableID)
	}
	return n == 1, nil
}

// Release drops an unconfirmed claim so a later sweep may retry it.
// Claims already attached to a reminder log are kept.
func (l *Ledger) Release(ctx context.Context, key domain.DispatchKey) error {
	q := postgres.Builder.Delete("reminder_dispatches").
		Where(keyEq(key)).
		Where(squirrel.Eq{"reminder_log_id": nil})

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, l.db), q); err != nil {
		return postgres.MapError(err, "dispatch for renewable", key.RenewableID)
	}
	return nil
}

// Attach links a claim to the reminder log written for it.
func (l *Ledger) Attach(ctx context.Context, key domain.DispatchKey, logID int64) error {
	q := postgres.Builder.Update("reminder_dispatches").
		Set("reminder_log_id", logID).
		Where(keyEq(key))

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, l.db), q)
	if err != nil {
		return postgres.MapError(err, "dispatch for renewable", key.RenewableID)
	}
	if n == 0 {
		return fmt.Errorf("dispatch for renewable %d: %w", key.RenewableID, domain.ErrNotFound)
	}
	return nil
}

func keyEq(key domain.DispatchKey) squirrel.Eq {
	return squirrel.Eq{
		"renewable_id":       key.RenewableID,
		"days_before_expiry": key.DaysBeforeExpiry,
		"sweep_date":         key.SweepDate,
	}
}
