//go:build e2e

package e2e_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/renewal-manager/internal/adapter/mailer"
	"github.com/heartmarshall/renewal-manager/internal/adapter/postgres"
	"github.com/heartmarshall/renewal-manager/internal/adapter/postgres/client"
	"github.com/heartmarshall/renewal-manager/internal/adapter/postgres/itemtype"
	"github.com/heartmarshall/renewal-manager/internal/adapter/postgres/reminderlog"
	"github.com/heartmarshall/renewal-manager/internal/adapter/postgres/renewable"
	"github.com/heartmarshall/renewal-manager/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/renewal-manager/internal/adapter/postgres/user"
	"github.com/heartmarshall/renewal-manager/internal/auth"
	"github.com/heartmarshall/renewal-manager/internal/domain"
	"github.com/heartmarshall/renewal-manager/internal/metrics"
	"github.com/heartmarshall/renewal-manager/internal/service/reminder"
	"github.com/heartmarshall/renewal-manager/internal/transport/middleware"
	"github.com/heartmarshall/renewal-manager/internal/transport/rest"
)

const (
	testJWTSecret = "e2e-test-secret-at-least-32-characters-long"
	testJWTIssuer = "renewal-manager"
)

// outbox is a mail transport that keeps every delivered message.
type outbox struct {
	mu   sync.Mutex
	sent []domain.Email
}

func (o *outbox) Deliver(_ context.Context, _ string, e domain.Email) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, e)
	return nil
}

// To returns the messages delivered to addr. The database is shared between
// tests, so assertions always filter by a recipient seeded by the test.
func (o *outbox) To(addr string) []domain.Email {
	o.mu.Lock()
	defer o.mu.Unlock()

	var out []domain.Email
	for _, e := range o.sent {
		if e.To == addr {
			out = append(out, e)
		}
	}
	return out
}

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Outbox *outbox
	JWT    *auth.JWTManager
}

// setupTestServer wires the full HTTP stack against the shared test database
// with a capturing mail transport.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.DiscardHandler)

	box := &outbox{}
	notifier := mailer.NewNotifier(logger, "renewals@example.com", box)
	collector := metrics.NewCollector()

	renewables := renewable.New(pool)
	logs := reminderlog.New(pool)

	engine := reminder.NewService(
		logger,
		renewables,
		client.New(pool),
		itemtype.New(pool),
		user.New(pool),
		logs,
		reminderlog.NewLedger(pool),
		notifier,
		postgres.NewTxManager(pool),
		collector,
		reminder.Config{DedupeEnabled: true, Location: time.UTC},
	)

	jwtManager := auth.NewJWTManager(testJWTSecret, testJWTIssuer)

	router := rest.NewRouter(rest.RouterDeps{
		Health:      rest.NewHealthHandler(pool, engine, nil, "e2e"),
		Reminders:   rest.NewReminderHandler(engine, renewables, logs, renewable.UpcomingWindowDays, logger),
		Metrics:     collector.Handler(),
		MetricsPath: "/metrics",
		Auth:        middleware.Auth(jwtManager),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Outbox: box,
		JWT:    jwtManager,
	}
}

func (ts *testServer) token(t *testing.T, userID int64, role domain.UserRole) string {
	t.Helper()
	tok, err := ts.JWT.GenerateAccessToken(userID, role, 5*time.Minute)
	require.NoError(t, err)
	return tok
}

// do sends a request with an optional bearer token and decodes a JSON body
// into out when out is non-nil.
func (ts *testServer) do(t *testing.T, method, path, token string, out any) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if out != nil && len(body) > 0 {
		require.NoError(t, json.Unmarshal(body, out), "body: %s", body)
	}
	return resp
}

// inDays returns an end date that is n days away by the ceiling rule, with
// a margin so the value holds for the duration of a test.
func inDays(n int) time.Time {
	return time.Now().Add(time.Duration(n)*24*time.Hour - time.Minute)
}

func int64Ptr(v int64) *int64 { return &v }
