package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/renewal-manager/internal/domain"
)

// LogTransport is the development transport: it writes the would-be message
// to the log as JSON and always reports success.
type LogTransport struct {
	log *slog.Logger
}

// NewLogTransport creates a LogTransport.
func NewLogTransport(logger *slog.Logger) *LogTransport {
	return &LogTransport{log: logger.With("transport", "log")}
}

type loggedMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Deliver logs the message.
func (t *LogTransport) Deliver(ctx context.Context, from string, e domain.Email) error {
	body, err := json.Marshal(loggedMessage{From: from, To: e.To, Subject: e.Subject, HTML: e.HTML})
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	t.log.InfoContext(ctx, "email sent (development mode)",
		slog.String("to", e.To),
		slog.String("subject", e.Subject),
		slog.String("message", string(body)),
	)
	return nil
}
