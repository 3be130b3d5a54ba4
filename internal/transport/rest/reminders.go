package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/renewal-manager/internal/domain"
	"github.com/heartmarshall/renewal-manager/internal/service/reminder"
)

type sweeper interface {
	TriggerManually(ctx context.Context) (reminder.SweepResult, error)
}

type renewableReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Renewable, error)
	ListUpcoming(ctx context.Context, days int) ([]domain.Renewable, error)
	ListExpired(ctx context.Context) ([]domain.Renewable, error)
	Stats(ctx context.Context) (domain.RenewableStats, error)
}

type reminderLogReader interface {
	ListByRenewable(ctx context.Context, renewableID int64) ([]domain.ReminderLog, error)
	ListRecent(ctx context.Context, limit int) ([]domain.ReminderLog, error)
}

// Reminder log listing limits.
const (
	RecentLogsLimit  = 10
	DefaultLogsLimit = 100
	MaxLogsLimit     = 1000
)

// ReminderHandler serves the admin reminder endpoints. Access control is
// applied by middleware.AdminOnly at the router.
type ReminderHandler struct {
	engine     sweeper
	renewables renewableReader
	logs       reminderLogReader
	window     int
	log        *slog.Logger
	now        func() time.Time
}

// NewReminderHandler creates a ReminderHandler. window is the number of
// days reported as upcoming by Overview.
func NewReminderHandler(engine sweeper, renewables renewableReader, logs reminderLogReader, window int, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{
		engine:     engine,
		renewables: renewables,
		logs:       logs,
		window:     window,
		log:        logger.With("handler", "reminders"),
		now:        time.Now,
	}
}

// Run triggers a sweep and returns its counts. The sweep runs to completion
// even if the caller disconnects.
// POST /admin/reminders/run
func (h *ReminderHandler) Run(w http.ResponseWriter, r *http.Request) {
	result, err := h.engine.TriggerManually(context.WithoutCancel(r.Context()))
	switch {
	case errors.Is(err, reminder.ErrSweepInProgress):
		writeError(w, http.StatusConflict, "a reminder sweep is already running")
		return
	case err != nil:
		h.log.ErrorContext(r.Context(), "manual sweep", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "reminder sweep failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// RenewableSummary is a renewable as listed in the overview.
type RenewableSummary struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	ClientID int64     `json:"client_id"`
	TypeID   int64     `json:"type_id"`
	EndDate  time.Time `json:"end_date"`
	DaysLeft int       `json:"days_left"`
	Status   string    `json:"status"`
	Assigned bool      `json:"assigned"`
}

// OverviewResponse is the JSON body of GET /admin/reminders/overview.
type OverviewResponse struct {
	Stats    domain.RenewableStats `json:"stats"`
	Upcoming []RenewableSummary    `json:"upcoming"`
	Expired  []RenewableSummary    `json:"expired"`
}

// Overview returns renewable counts plus the upcoming and expired lists.
// GET /admin/reminders/overview
func (h *ReminderHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.renewables.Stats(ctx)
	if err != nil {
		h.internalError(w, r, "renewable stats", err)
		return
	}
	upcoming, err := h.renewables.ListUpcoming(ctx, h.window)
	if err != nil {
		h.internalError(w, r, "list upcoming renewables", err)
		return
	}
	expired, err := h.renewables.ListExpired(ctx)
	if err != nil {
		h.internalError(w, r, "list expired renewables", err)
		return
	}

	now := h.now()
	writeJSON(w, http.StatusOK, OverviewResponse{
		Stats:    stats,
		Upcoming: summarize(upcoming, now),
		Expired:  summarize(expired, now),
	})
}

// ReminderHistoryEntry is one delivered reminder. The email body is left
// out of listings.
type ReminderHistoryEntry struct {
	ID               int64     `json:"id"`
	RenewableID      int64     `json:"renewable_id"`
	SentToID         int64     `json:"sent_to_id"`
	SentAt           time.Time `json:"sent_at"`
	DaysBeforeExpiry int       `json:"days_before_expiry"`
	EmailSentTo      string    `json:"email_sent_to"`
}

// History lists the reminders sent for one renewable, newest first.
// GET /admin/renewables/{id}/reminders
func (h *ReminderHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid renewable id")
		return
	}

	if _, err := h.renewables.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "renewable not found")
			return
		}
		h.internalError(w, r, "get renewable", err)
		return
	}

	logs, err := h.logs.ListByRenewable(r.Context(), id)
	if err != nil {
		h.internalError(w, r, "list reminder logs", err)
		return
	}

	writeJSON(w, http.StatusOK, historyEntries(logs))
}

// Logs lists reminder logs, newest first. With ?renewable_id it behaves
// like History without the existence check; otherwise it returns the
// latest ?limit entries across all renewables.
// GET /admin/reminder-logs
func (h *ReminderHandler) Logs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if raw := q.Get("renewable_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			writeError(w, http.StatusBadRequest, "invalid renewable_id")
			return
		}
		logs, err := h.logs.ListByRenewable(r.Context(), id)
		if err != nil {
			h.internalError(w, r, "list reminder logs", err)
			return
		}
		writeJSON(w, http.StatusOK, historyEntries(logs))
		return
	}

	limit := DefaultLogsLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > MaxLogsLimit {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and "+strconv.Itoa(MaxLogsLimit))
			return
		}
		limit = n
	}
	h.listRecent(w, r, limit)
}

// Recent lists the latest reminders for the dashboard.
// GET /admin/reminder-logs/recent
func (h *ReminderHandler) Recent(w http.ResponseWriter, r *http.Request) {
	h.listRecent(w, r, RecentLogsLimit)
}

func (h *ReminderHandler) listRecent(w http.ResponseWriter, r *http.Request, limit int) {
	logs, err := h.logs.ListRecent(r.Context(), limit)
	if err != nil {
		h.internalError(w, r, "list recent reminder logs", err)
		return
	}
	writeJSON(w, http.StatusOK, historyEntries(logs))
}

func historyEntries(logs []domain.ReminderLog) []ReminderHistoryEntry {
	entries := make([]ReminderHistoryEntry, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, ReminderHistoryEntry{
			ID:               l.ID,
			RenewableID:      l.RenewableID,
			SentToID:         l.SentToID,
			SentAt:           l.SentAt,
			DaysBeforeExpiry: l.DaysBeforeExpiry,
			EmailSentTo:      l.EmailSentTo,
		})
	}
	return entries
}

func (h *ReminderHandler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.log.ErrorContext(r.Context(), op, slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func summarize(renewables []domain.Renewable, now time.Time) []RenewableSummary {
	out := make([]RenewableSummary, 0, len(renewables))
	for _, rn := range renewables {
		out = append(out, RenewableSummary{
			ID:       rn.ID,
			Name:     rn.Name,
			ClientID: rn.ClientID,
			TypeID:   rn.TypeID,
			EndDate:  rn.EndDate,
			DaysLeft: reminder.DaysUntilExpiry(rn.EndDate, now),
			Status:   rn.Status.String(),
			Assigned: rn.HasAssignee(),
		})
	}
	return out
}
