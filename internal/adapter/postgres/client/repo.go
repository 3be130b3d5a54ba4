// Package client implements the Client repository using PostgreSQL.
package client

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/renewal-manager/internal/adapter/postgres"
	"github.com/heartmarshall/renewal-manager/internal/domain"
)

// Repo provides read access to clients backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new client repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a client by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	q := postgres.Builder.
		Select("id", "name", "email", "phone", "address", "notes", "created_at").
		From("clients").
		Where(squirrel.Eq{"id": id})

	var row clientRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "client", id)
	}

	return &domain.Client{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone,
		Address:   row.Address,
		Notes:     row.Notes,
		CreatedAt: row.CreatedAt,
	}, nil
}

type clientRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     *string   `db:"phone"`
	Address   *string   `db:"address"`
	Notes     *string   `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
}
