package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/renewal-manager/internal/domain"
)

// Reminder outcomes, also used as metric labels.
const (
	outcomeSent        = "sent"
	outcomeFailed      = "failed"
	outcomeSkipped     = "skipped"
	outcomeMissingData = "missing_data"
)

// dispatch sends one due reminder and records it. Send and log happen in
// order inside the calling goroutine; a log is written only after a
// successful send.
func (s *Service) dispatch(ctx context.Context, r domain.Renewable, days int, now time.Time, types *itemTypeCache) string {
	log := s.log.With(
		slog.Int64("renewable_id", r.ID),
		slog.Int("days_before_expiry", days),
	)

	client, itemType, user, err := s.loadRelated(ctx, r, types)
	if err != nil {
		s.metrics.RecordReminder(outcomeMissingData)
		log.ErrorContext(ctx, "missing related data for renewable", slog.String("error", err.Error()))
		return outcomeMissingData
	}

	key := domain.NewDispatchKey(r.ID, days, now.In(s.cfg.Location))
	if s.cfg.DedupeEnabled {
		reserved, err := s.ledger.Reserve(ctx, key)
		if err != nil {
			s.metrics.RecordReminder(outcomeFailed)
			log.ErrorContext(ctx, "reserve dispatch", slog.String("error", err.Error()))
			return outcomeFailed
		}
		if !reserved {
			s.metrics.RecordReminder(outcomeSkipped)
			log.InfoContext(ctx, "reminder already sent today, skipping")
			return outcomeSkipped
		}
	}

	html, err := s.notifier.Render(domain.ReminderMessage{
		ClientName: client.Name,
		ItemName:   r.Name,
		ItemType:   itemType.Name,
		ExpiryDate: r.EndDate,
		DaysLeft:   days,
		Notes:      r.Notes,
	})
	if err != nil {
		s.release(ctx, key, log)
		s.metrics.RecordReminder(outcomeFailed)
		log.ErrorContext(ctx, "render reminder", slog.String("error", err.Error()))
		return outcomeFailed
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
	err = s.notifier.Send(sendCtx, domain.Email{
		To:      user.Email,
		Subject: Subject(client.Name, r.Name, days),
		HTML:    html,
	})
	cancel()
	if err != nil {
		s.release(ctx, key, log)
		s.metrics.RecordReminder(outcomeFailed)
		log.ErrorContext(ctx, "send reminder",
			slog.String("to", user.Email),
			slog.String("error", err.Error()),
		)
		return outcomeFailed
	}

	s.metrics.RecordReminder(outcomeSent)

	// The email is out; a cancelled sweep must not lose its log.
	if err := s.record(context.WithoutCancel(ctx), r, user, days, html, key); err != nil {
		log.ErrorContext(ctx, "reminder sent but not logged",
			slog.String("to", user.Email),
			slog.String("error", err.Error()),
		)
		return outcomeSent
	}

	log.InfoContext(ctx, "reminder sent",
		slog.String("client", client.Name),
		slog.String("item", r.Name),
		slog.String("to", user.Email),
	)
	return outcomeSent
}

func (s *Service) loadRelated(ctx context.Context, r domain.Renewable, types *itemTypeCache) (*domain.Client, *domain.ItemType, *domain.User, error) {
	client, err := s.clients.GetByID(ctx, r.ClientID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load client: %w", err)
	}
	itemType, err := types.get(ctx, r.TypeID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load item type: %w", err)
	}
	user, err := s.users.GetByID(ctx, *r.AssignedToID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load assigned user: %w", err)
	}
	return client, itemType, user, nil
}

// record writes the audit log and, with dedupe on, links it to the dispatch
// key in the same transaction.
func (s *Service) record(ctx context.Context, r domain.Renewable, user *domain.User, days int, html string, key domain.DispatchKey) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		entry, err := s.logs.Create(txCtx, domain.ReminderLog{
			RenewableID:      r.ID,
			SentToID:         user.ID,
			SentAt:           s.now(),
			DaysBeforeExpiry: days,
			EmailContent:     html,
			EmailSentTo:      user.Email,
		})
		if err != nil {
			return fmt.Errorf("create reminder log: %w", err)
		}

		if s.cfg.DedupeEnabled {
			if err := s.ledger.Attach(txCtx, key, entry.ID); err != nil {
				return fmt.Errorf("attach dispatch: %w", err)
			}
		}
		return nil
	})
}

// release frees a reserved key after a failed send so a later sweep can retry.
func (s *Service) release(ctx context.Context, key domain.DispatchKey, log *slog.Logger) {
	if !s.cfg.DedupeEnabled {
		return
	}
	if err := s.ledger.Release(ctx, key); err != nil {
		log.WarnContext(ctx, "release dispatch", slog.String("error", err.Error()))
	}
}
