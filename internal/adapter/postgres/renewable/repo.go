// Package renewable implements the Renewable repository using PostgreSQL.
package renewable

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/renewal-manager/internal/adapter/postgres"
	"github.com/heartmarshall/renewal-manager/internal/domain"
)

// UpcomingWindowDays is the look-ahead used by the dashboard counters.
const UpcomingWindowDays = 30

const table = "renewables"

var columns = []string{
	"id", "name", "client_id", "type_id", "assigned_to_id",
	"start_date", "end_date", "amount", "reminder_intervals",
	"notes", "status", "created_at", "updated_at",
}

// Repo provides read access to renewables backed by PostgreSQL.
//
// A stored reminder_intervals value that cannot be parsed is logged and
// read as nil, so the renewable falls back to its item type defaults
// instead of failing the whole read.
type Repo struct {
	db  postgres.Querier
	log *slog.Logger
}

// New creates a new renewable repository. It logs through slog.Default.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, log: slog.Default().With("repo", table)}
}

// GetByID returns a renewable by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Renewable, error) {
	q := postgres.Builder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	var row renewableRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "renewable", id)
	}

	out := r.toDomain(ctx, row)
	return &out, nil
}

// ListActive returns every renewable with status active.
func (r *Repo) ListActive(ctx context.Context) ([]domain.Renewable, error) {
	q := postgres.Builder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": string(domain.RenewableStatusActive)}).
		OrderBy("id")

	return r.list(ctx, q)
}

// ListUpcoming returns active renewables expiring between now and now+days,
// soonest first.
func (r *Repo) ListUpcoming(ctx context.Context, days int) ([]domain.Renewable, error) {
	if days < 0 {
		return nil, domain.NewValidationError("days", "must be >= 0")
	}

	q := postgres.Builder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": string(domain.RenewableStatusActive)}).
		Where("end_date >= now()").
		Where("end_date <= now() + make_interval(days => ?)", days).
		OrderBy("end_date")

	return r.list(ctx, q)
}

// ListExpired returns active renewables whose end date has passed, oldest first.
func (r *Repo) ListExpired(ctx context.Context) ([]domain.Renewable, error) {
	q := postgres.Builder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": string(domain.RenewableStatusActive)}).
		Where("end_date <= now()").
		OrderBy("end_date")

	return r.list(ctx, q)
}

// Stats returns the dashboard counters.
func (r *Repo) Stats(ctx context.Context) (domain.RenewableStats, error) {
	active := squirrel.Eq{"status": string(domain.RenewableStatusActive)}
	activeSQL, activeArgs, err := active.ToSql()
	if err != nil {
		return domain.RenewableStats{}, fmt.Errorf("build stats filter: %w", err)
	}

	q := postgres.Builder.Select().
		Column("(SELECT count(*) FROM clients) AS client_count").
		Column(squirrel.Expr("count(*) FILTER (WHERE "+activeSQL+") AS active_count", activeArgs...)).
		Column(squirrel.Expr("count(*) FILTER (WHERE "+activeSQL+
			" AND end_date >= now() AND end_date <= now() + make_interval(days => ?)) AS upcoming_count",
			append(activeArgs, UpcomingWindowDays)...)).
		Column(squirrel.Expr("count(*) FILTER (WHERE "+activeSQL+" AND end_date <= now()) AS expired_count", activeArgs...)).
		From(table)

	var row statsRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return domain.RenewableStats{}, postgres.MapError(err, "renewable stats", 0)
	}

	return domain.RenewableStats{
		ClientCount:    int(row.ClientCount),
		ActiveCount:    int(row.ActiveCount),
		UpcomingCount:  int(row.UpcomingCount),
		ExpiredCount:   int(row.ExpiredCount),
		UpcomingWindow: UpcomingWindowDays,
	}, nil
}

func (r *Repo) list(ctx context.Context, q squirrel.SelectBuilder) ([]domain.Renewable, error) {
	var rows []renewableRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "renewables", 0)
	}

	out := make([]domain.Renewable, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.toDomain(ctx, row))
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type renewableRow struct {
	ID                int64     `db:"id"`
	Name              string    `db:"name"`
	ClientID          int64     `db:"client_id"`
	TypeID            int64     `db:"type_id"`
	AssignedToID      *int64    `db:"assigned_to_id"`
	StartDate         time.Time `db:"start_date"`
	EndDate           time.Time `db:"end_date"`
	Amount            *int64    `db:"amount"`
	ReminderIntervals []byte    `db:"reminder_intervals"`
	Notes             *string   `db:"notes"`
	Status            string    `db:"status"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type statsRow struct {
	ClientCount   int64 `db:"client_count"`
	ActiveCount   int64 `db:"active_count"`
	UpcomingCount int64 `db:"upcoming_count"`
	ExpiredCount  int64 `db:"expired_count"`
}

func (r *Repo) toDomain(ctx context.Context, row renewableRow) domain.Renewable {
	intervals, err := domain.ParseReminderIntervals(row.ReminderIntervals)
	if err != nil {
		r.log.WarnContext(ctx, "unreadable reminder intervals, using item type defaults",
			slog.Int64("renewable_id", row.ID),
			slog.String("raw", string(row.ReminderIntervals)),
			slog.String("error", err.Error()),
		)
		intervals = nil
	}

	return domain.Renewable{
		ID:                row.ID,
		Name:              row.Name,
		ClientID:          row.ClientID,
		TypeID:            row.TypeID,
		AssignedToID:      row.AssignedToID,
		StartDate:         row.StartDate,
		EndDate:           row.EndDate,
		Amount:            row.Amount,
		ReminderIntervals: intervals,
		Notes:             row.Notes,
		Status:            domain.RenewableStatus(row.Status),
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}
