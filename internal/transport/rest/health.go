package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/renewal-manager/internal/service/reminder"
)

const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type sweepStatus interface {
	Status() reminder.Status
}

// HealthHandler serves the probes. /health also reports the reminder
// engine: whether a sweep is running, how the last one ended and when the
// scheduler fires next.
type HealthHandler struct {
	db      dbPinger
	sweeps  sweepStatus
	nextRun func(time.Time) time.Time
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler. sweeps and nextRun may be nil;
// a nil nextRun means the scheduler is disabled.
func NewHealthHandler(db dbPinger, sweeps sweepStatus, nextRun func(time.Time) time.Time, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		sweeps:  sweeps,
		nextRun: nextRun,
		version: version,
		now:     time.Now,
	}
}

// HealthResponse is the JSON body of the probes.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Reminders  *ReminderHealth       `json:"reminders,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// ReminderHealth describes the reminder engine and its schedule.
type ReminderHealth struct {
	Scheduled bool                  `json:"scheduled"`
	NextRun   *time.Time            `json:"next_run,omitempty"`
	Running   bool                  `json:"running"`
	LastSweep *reminder.SweepResult `json:"last_sweep,omitempty"`
	LastError string                `json:"last_error,omitempty"`
}

// Live always answers 200.
// GET /live
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: h.now()})
}

// Ready answers 200 when the database responds, 503 otherwise.
// GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if _, err := h.ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: statusDown, Timestamp: h.now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: h.now()})
}

// Health reports the database and the reminder engine. A failed last
// sweep degrades the status but keeps 200; only a database outage is 503.
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:     statusOK,
		Version:    h.version,
		Components: make(map[string]CompStatus, 2),
		Timestamp:  h.now(),
	}

	latency, err := h.ping(r.Context())
	if err != nil {
		resp.Components["database"] = CompStatus{Status: statusDown}
		resp.Status = statusDown
	} else {
		resp.Components["database"] = CompStatus{Status: statusOK, Latency: latency.String()}
	}

	if h.sweeps != nil {
		rh := h.reminderHealth()
		resp.Reminders = &rh

		comp := CompStatus{Status: statusOK}
		if rh.LastError != "" {
			comp.Status = statusDegraded
			if resp.Status == statusOK {
				resp.Status = statusDegraded
			}
		}
		resp.Components["reminders"] = comp
	}

	code := http.StatusOK
	if resp.Status == statusDown {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}

func (h *HealthHandler) reminderHealth() ReminderHealth {
	st := h.sweeps.Status()

	rh := ReminderHealth{
		Scheduled: h.nextRun != nil,
		Running:   st.Running,
		LastSweep: st.Last,
	}
	if st.LastErr != nil {
		rh.LastError = st.LastErr.Error()
	}
	if h.nextRun != nil {
		if next := h.nextRun(h.now()); !next.IsZero() {
			rh.NextRun = &next
		}
	}
	return rh
}

func (h *HealthHandler) ping(ctx context.Context) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := h.now()
	err := h.db.Ping(ctx)
	return h.now().Sub(start), err
}

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)
