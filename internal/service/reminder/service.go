// Package reminder implements the renewal reminder engine: a sweep over
// active renewables that emails the assigned user when the days left until
// expiry match one of the configured reminder intervals.
package reminder

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/renewal-manager/internal/domain"
)

// ErrSweepInProgress is returned when a sweep is requested while another
// sweep on the same Service is still running.
var ErrSweepInProgress = errors.New("reminder sweep already in progress")

// Default settings applied by NewService for zero Config values.
const (
	DefaultConcurrency = 4
	DefaultSendTimeout = 30 * time.Second
)

type renewableRepo interface {
	ListActive(ctx context.Context) ([]domain.Renewable, error)
}

type clientRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

type itemTypeRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.ItemType, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type reminderLogRepo interface {
	Create(ctx context.Context, l domain.ReminderLog) (*domain.ReminderLog, error)
}

type dispatchLedger interface {
	Reserve(ctx context.Context, key domain.DispatchKey) (bool, error)
	Release(ctx context.Context, key domain.DispatchKey) error
	Attach(ctx context.Context, key domain.DispatchKey, logID int64) error
}

type notifier interface {
	Render(msg domain.ReminderMessage) (string, error)
	Send(ctx context.Context, e domain.Email) error
}

// txManager defines the transaction manager interface needed by the engine.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type observer interface {
	RecordSweep(trigger string, duration time.Duration, err error)
	RecordReminder(outcome string)
}

// Config tunes the sweep.
type Config struct {
	// Concurrency bounds how many renewables are processed at once.
	Concurrency int
	// SendTimeout bounds a single email delivery.
	SendTimeout time.Duration
	// DedupeEnabled reserves a dispatch key before each send so a reminder
	// goes out at most once per renewable, interval and calendar day.
	DedupeEnabled bool
	// Location defines the calendar day used for dispatch keys.
	Location *time.Location
}

// Service runs reminder sweeps. A Service allows one sweep at a time.
type Service struct {
	renewables renewableRepo
	clients    clientRepo
	itemTypes  itemTypeRepo
	users      userRepo
	logs       reminderLogRepo
	ledger     dispatchLedger
	notifier   notifier
	tx         txManager
	metrics    observer
	cfg        Config
	log        *slog.Logger

	running sync.Mutex
	now     func() time.Time

	statusMu   sync.Mutex
	inProgress bool
	last       *SweepResult
	lastErr    error
}

// NewService creates a new reminder engine. metrics may be nil.
func NewService(
	log *slog.Logger,
	renewables renewableRepo,
	clients clientRepo,
	itemTypes itemTypeRepo,
	users userRepo,
	logs reminderLogRepo,
	ledger dispatchLedger,
	notifier notifier,
	tx txManager,
	metrics observer,
	cfg Config,
) *Service {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = DefaultSendTimeout
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if metrics == nil {
		metrics = nopObserver{}
	}

	return &Service{
		renewables: renewables,
		clients:    clients,
		itemTypes:  itemTypes,
		users:      users,
		logs:       logs,
		ledger:     ledger,
		notifier:   notifier,
		tx:         tx,
		metrics:    metrics,
		cfg:        cfg,
		log:        log.With("service", "reminder"),
		now:        time.Now,
	}
}

type nopObserver struct{}

func (nopObserver) RecordSweep(string, time.Duration, error) {}
func (nopObserver) RecordReminder(string)                    {}
