package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/renewal-manager/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a staff user with a unique username and email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	u := domain.User{
		Username: "staff-" + suffix,
		Email:    "staff-" + suffix + "@example.com",
		FullName: "Staff " + suffix,
		Role:     domain.UserRoleStaff,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (username, email, full_name, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		u.Username, u.Email, u.FullName, string(u.Role),
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedClient inserts a client without optional contact details.
func SeedClient(t *testing.T, pool *pgxpool.Pool) domain.Client {
	t.Helper()

	suffix := uniqueSuffix()
	c := domain.Client{
		Name:  "Client " + suffix,
		Email: "client-" + suffix + "@example.com",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO clients (name, email) VALUES ($1, $2) RETURNING id, created_at`,
		c.Name, c.Email,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedClient: %v", err)
	}
	return c
}

// SeedItemType inserts an item type with the given default intervals.
func SeedItemType(t *testing.T, pool *pgxpool.Pool, intervals domain.ReminderIntervals) domain.ItemType {
	t.Helper()

	raw, err := domain.MarshalIntervals(intervals)
	if err != nil {
		t.Fatalf("testhelper: SeedItemType marshal: %v", err)
	}
	if raw == nil {
		raw = []byte("[]")
	}

	it := domain.ItemType{
		Name:                     "Type " + uniqueSuffix(),
		DefaultRenewalPeriod:     365,
		DefaultReminderIntervals: intervals,
	}

	err = pool.QueryRow(context.Background(),
		`INSERT INTO item_types (name, default_renewal_period, default_reminder_intervals)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		it.Name, it.DefaultRenewalPeriod, raw,
	).Scan(&it.ID, &it.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedItemType: %v", err)
	}
	return it
}

// SeedRenewable inserts r and returns it with generated fields filled in.
// Zero StartDate defaults to one year before EndDate; empty Status to active.
func SeedRenewable(t *testing.T, pool *pgxpool.Pool, r domain.Renewable) domain.Renewable {
	t.Helper()

	if r.Name == "" {
		r.Name = "renewal-" + uniqueSuffix() + ".example.com"
	}
	if r.StartDate.IsZero() {
		r.StartDate = r.EndDate.AddDate(-1, 0, 0)
	}
	if r.Status == "" {
		r.Status = domain.RenewableStatusActive
	}

	raw, err := domain.MarshalIntervals(r.ReminderIntervals)
	if err != nil {
		t.Fatalf("testhelper: SeedRenewable marshal: %v", err)
	}

	err = pool.QueryRow(context.Background(),
		`INSERT INTO renewables
		    (name, client_id, type_id, assigned_to_id, start_date, end_date, amount, reminder_intervals, notes, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at, updated_at`,
		r.Name, r.ClientID, r.TypeID, r.AssignedToID, r.StartDate, r.EndDate, r.Amount, raw, r.Notes, string(r.Status),
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRenewable: %v", err)
	}

	r.StartDate = r.StartDate.UTC().Truncate(time.Microsecond)
	r.EndDate = r.EndDate.UTC().Truncate(time.Microsecond)
	return r
}
