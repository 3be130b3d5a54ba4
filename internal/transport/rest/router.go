package rest

import (
	"net/http"

	"github.com/heartmarshall/renewal-manager/internal/transport/middleware"
)

// RouterDeps groups everything NewRouter mounts. Metrics may be nil.
type RouterDeps struct {
	Health      *HealthHandler
	Reminders   *ReminderHandler
	Metrics     http.Handler
	MetricsPath string
	Auth        middleware.Middleware
}

// NewRouter builds the HTTP handler. Probes and metrics are public; admin
// routes require an admin bearer token.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	if deps.Metrics != nil {
		mux.Handle("GET "+deps.MetricsPath, deps.Metrics)
	}

	admin := middleware.Chain(deps.Auth, middleware.AdminOnly)
	mux.Handle("POST /admin/reminders/run", admin(http.HandlerFunc(deps.Reminders.Run)))
	mux.Handle("GET /admin/reminders/overview", admin(http.HandlerFunc(deps.Reminders.Overview)))
	mux.Handle("GET /admin/renewables/{id}/reminders", admin(http.HandlerFunc(deps.Reminders.History)))
	mux.Handle("GET /admin/reminder-logs", admin(http.HandlerFunc(deps.Reminders.Logs)))
	mux.Handle("GET /admin/reminder-logs/recent", admin(http.HandlerFunc(deps.Reminders.Recent)))

	return mux
}
