package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/renewal-manager/internal/domain"
)

type itemTypeStore interface {
	List(ctx context.Context) ([]domain.ItemType, error)
	Create(ctx context.Context, it domain.ItemType) (*domain.ItemType, error)
}

// Result holds the outcome of a seeding run.
type Result struct {
	Inserted int
	Skipped  int
	Errors   int
}

// Pipeline creates the configured item types that are not stored yet.
type Pipeline struct {
	log   *slog.Logger
	store itemTypeStore
	cfg   Config
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, store itemTypeStore, cfg Config) *Pipeline {
	return &Pipeline{
		log:   log.With("component", "seeder"),
		store: store,
		cfg:   cfg,
	}
}

// Run seeds item types. Existing names (case-insensitive) are skipped.
// Invalid seeds are counted as errors and do not stop the run.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	var res Result

	existing, err := p.store.List(ctx)
	if err != nil {
		return res, fmt.Errorf("list item types: %w", err)
	}

	seen := make(map[string]bool, len(existing))
	for _, it := range existing {
		seen[strings.ToLower(it.Name)] = true
	}

	for _, seed := range p.cfg.ItemTypes {
		name := strings.TrimSpace(seed.Name)
		log := p.log.With(slog.String("item_type", name))

		if err := validateSeed(seed); err != nil {
			res.Errors++
			log.Error("invalid item type seed", slog.String("error", err.Error()))
			continue
		}

		key := strings.ToLower(name)
		if seen[key] {
			res.Skipped++
			log.Debug("item type exists, skipping")
			continue
		}
		seen[key] = true

		if p.cfg.DryRun {
			res.Inserted++
			log.Info("dry run: would create item type")
			continue
		}

		created, err := p.store.Create(ctx, domain.ItemType{
			Name:                     name,
			DefaultRenewalPeriod:     seed.DefaultRenewalPeriod,
			DefaultReminderIntervals: domain.ReminderIntervals(seed.DefaultReminderIntervals),
		})
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			res.Skipped++
			continue
		case err != nil:
			res.Errors++
			log.Error("create item type", slog.String("error", err.Error()))
			continue
		}

		res.Inserted++
		log.Info("item type created",
			slog.Int64("id", created.ID),
			slog.Any("intervals", created.DefaultReminderIntervals),
		)
	}

	return res, nil
}

func validateSeed(seed ItemTypeSeed) error {
	var errs []domain.FieldError
	if strings.TrimSpace(seed.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if seed.DefaultRenewalPeriod <= 0 {
		errs = append(errs, domain.FieldError{Field: "default_renewal_period", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return domain.ReminderIntervals(seed.DefaultReminderIntervals).Validate()
}
