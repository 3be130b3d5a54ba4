package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/renewal-manager/internal/adapter/mailer"
	"github.com/heartmarshall/renewal-manager/internal/adapter/postgres"
	"github.com/heartmarshall/renewal-manager/internal/adapter/postgres/client"
	"github.com/heartmarshall/renewal-manager/internal/adapter/postgres/itemtype"
	"github.com/heartmarshall/renewal-manager/internal/adapter/postgres/reminderlog"
	"github.com/heartmarshall/renewal-manager/internal/adapter/postgres/renewable"
	"github.com/heartmarshall/renewal-manager/internal/adapter/postgres/user"
	"github.com/heartmarshall/renewal-manager/internal/config"
	"github.com/heartmarshall/renewal-manager/internal/metrics"
	"github.com/heartmarshall/renewal-manager/internal/service/reminder"
)

// NewReminderEngine wires the reminder engine to PostgreSQL and the
// configured mail transport. collector may be nil.
func NewReminderEngine(logger *slog.Logger, pool *pgxpool.Pool, cfg *config.Config, collector *metrics.Collector) (*reminder.Service, error) {
	notifier, err := mailer.New(logger, cfg.Mail)
	if err != nil {
		return nil, fmt.Errorf("create mailer: %w", err)
	}

	return reminder.NewService(
		logger,
		renewable.New(pool),
		client.New(pool),
		itemtype.New(pool),
		user.New(pool),
		reminderlog.New(pool),
		reminderlog.NewLedger(pool),
		notifier,
		postgres.NewTxManager(pool),
		collector,
		reminder.Config{
			Concurrency:   cfg.Reminder.Concurrency,
			SendTimeout:   cfg.Reminder.SendTimeout,
			DedupeEnabled: cfg.Reminder.DedupeEnabled,
			Location:      time.Local,
		},
	), nil
}
