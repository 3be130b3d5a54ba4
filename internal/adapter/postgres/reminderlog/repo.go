// Package reminderlog implements the reminder audit log and the dispatch
// ledger using PostgreSQL.
package reminderlog

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/renewal-manager/internal/adapter/postgres"
	"github.com/heartmarshall/renewal-manager/internal/domain"
)

var columns = []string{
	"id", "renewable_id", "sent_to_id", "sent_at",
	"days_before_expiry", "email_content", "email_sent_to",
}

// Repo provides reminder log persistence. Logs are append-only.
type Repo struct {
	db postgres.Querier
}

// New creates a new reminder log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a reminder log. A zero SentAt is filled in by the database.
func (r *Repo) Create(ctx context.Context, l domain.ReminderLog) (*domain.ReminderLog, error) {
	cols := []string{"renewable_id", "sent_to_id", "days_before_expiry", "email_content", "email_sent_to"}
	vals := []any{l.RenewableID, l.SentToID, l.DaysBeforeExpiry, l.EmailContent, l.EmailSentTo}
	if !l.SentAt.IsZero() {
		cols = append(cols, "sent_at")
		vals = append(vals, l.SentAt)
	}

	q := postgres.Builder.Insert("reminder_logs").
		Columns(cols...).
		Values(vals...).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var row logRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "reminder_log for renewable", l.RenewableID)
	}

	created := row.toDomain()
	return &created, nil
}

// ListByRenewable returns the reminder history of a renewable, newest first.
func (r *Repo) ListByRenewable(ctx context.Context, renewableID int64) ([]domain.ReminderLog, error) {
	q := postgres.Builder.Select(columns...).
		From("reminder_logs").
		Where(squirrel.Eq{"renewable_id": renewableID}).
		OrderBy("sent_at DESC", "id DESC")

	var rows []logRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "reminder_logs for renewable", renewableID)
	}

	out := make([]domain.ReminderLog, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// ListRecent returns the latest reminder logs across all renewables, newest
// first, at most limit entries.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.ReminderLog, error) {
	if limit <= 0 {
		return nil, domain.NewValidationError("limit", "must be positive")
	}

	q := postgres.Builder.Select(columns...).
		From("reminder_logs").
		OrderBy("sent_at DESC", "id DESC").
		Limit(uint64(limit))

	var rows []logRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "reminder_logs", 0)
	}

	out := make([]domain.ReminderLog, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

type logRow struct {
	ID               int64     `db:"id"`
	RenewableID      int64     `db:"renewable_id"`
	SentToID         int64     `db:"sent_to_id"`
	SentAt           time.Time `db:"sent_at"`
	DaysBeforeExpiry int       `db:"days_before_expiry"`
	EmailContent     string    `db:"email_content"`
	EmailSentTo      string    `db:"email_sent_to"`
}

func (row logRow) toDomain() domain.ReminderLog {
	return domain.ReminderLog{
		ID:               row.ID,
		RenewableID:      row.RenewableID,
		SentToID:         row.SentToID,
		SentAt:           row.SentAt,
		DaysBeforeExpiry: row.DaysBeforeExpiry,
		EmailContent:     row.EmailContent,
		EmailSentTo:      row.EmailSentTo,
	}
}
