// Package itemtype implements the ItemType repository using PostgreSQL.
package itemtype

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/renewal-manager/internal/adapter/postgres"
	"github.com/heartmarshall/renewal-manager/internal/domain"
)

var columns = []string{"id", "name", "default_renewal_period", "default_reminder_intervals", "created_at"}

// Repo provides item type persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new item type repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns an item type by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.ItemType, error) {
	q := postgres.Builder.Select(columns...).
		From("item_types").
		Where(squirrel.Eq{"id": id})

	var row itemTypeRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "item_type", id)
	}

	it, err := toDomain(row)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// List returns all item types ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.ItemType, error) {
	q := postgres.Builder.Select(columns...).
		From("item_types").
		OrderBy("name")

	var rows []itemTypeRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "item_types", 0)
	}

	out := make([]domain.ItemType, 0, len(rows))
	for _, row := range rows {
		it, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

// Create inserts a new item type. Empty default intervals are replaced by
// domain.DefaultReminderIntervals.
func (r *Repo) Create(ctx context.Context, it domain.ItemType) (*domain.ItemType, error) {
	if it.DefaultReminderIntervals.IsEmpty() {
		it.DefaultReminderIntervals = domain.DefaultReminderIntervals
	}
	if err := it.DefaultReminderIntervals.Validate(); err != nil {
		return nil, err
	}

	raw, err := domain.MarshalIntervals(it.DefaultReminderIntervals)
	if err != nil {
		return nil, fmt.Errorf("marshal intervals: %w", err)
	}

	q := postgres.Builder.Insert("item_types").
		Columns("name", "default_renewal_period", "default_reminder_intervals").
		Values(it.Name, it.DefaultRenewalPeriod, raw).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var row itemTypeRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "item_type", 0)
	}

	created, err := toDomain(row)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

type itemTypeRow struct {
	ID                       int64     `db:"id"`
	Name                     string    `db:"name"`
	DefaultRenewalPeriod     int       `db:"default_renewal_period"`
	DefaultReminderIntervals []byte    `db:"default_reminder_intervals"`
	CreatedAt                time.Time `db:"created_at"`
}

func toDomain(row itemTypeRow) (domain.ItemType, error) {
	intervals, err := domain.ParseReminderIntervals(row.DefaultReminderIntervals)
	if err != nil {
		return domain.ItemType{}, fmt.Errorf("item_type %d: %w", row.ID, err)
	}
	return domain.ItemType{
		ID:                       row.ID,
		Name:                     row.Name,
		DefaultRenewalPeriod:     row.DefaultRenewalPeriod,
		DefaultReminderIntervals: intervals,
		CreatedAt:                row.CreatedAt,
	}, nil
}
