// Package mailer renders renewal reminder emails and delivers them through
// SMTP or, in development, through the structured log.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/renewal-manager/internal/config"
	"github.com/heartmarshall/renewal-manager/internal/domain"
)

// Transport delivers a fully composed message.
type Transport interface {
	Deliver(ctx context.Context, from string, e domain.Email) error
}

// Notifier renders reminder bodies and delivers them through a Transport.
// It is safe for concurrent use.
type Notifier struct {
	from      string
	transport Transport
	limiter   *rate.Limiter
	loc       *time.Location
	log       *slog.Logger
}

// Option customises a Notifier.
type Option func(*Notifier)

// WithLocation sets the time zone expiry dates are rendered in. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(n *Notifier) { n.loc = loc }
}

// WithRateLimit throttles deliveries to perSecond messages with a burst of one.
func WithRateLimit(perSecond float64) Option {
	return func(n *Notifier) { n.limiter = rate.NewLimiter(rate.Limit(perSecond), 1) }
}

// New builds a Notifier whose transport is chosen by cfg.Transport.
func New(logger *slog.Logger, cfg config.MailConfig) (*Notifier, error) {
	var transport Transport
	if cfg.IsSMTP() {
		t, err := NewSMTPTransport(cfg)
		if err != nil {
			return nil, err
		}
		transport = t
	} else {
		transport = NewLogTransport(logger)
	}

	return NewNotifier(logger, cfg.From, transport, WithRateLimit(cfg.MaxPerSecond)), nil
}

// NewNotifier builds a Notifier around an explicit transport.
func NewNotifier(logger *slog.Logger, from string, transport Transport, opts ...Option) *Notifier {
	n := &Notifier{
		from:      from,
		transport: transport,
		limiter:   rate.NewLimiter(rate.Inf, 1),
		loc:       time.Local,
		log:       logger.With("adapter", "mailer"),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Send delivers e. It blocks while the rate limit is exhausted and honours
// ctx cancellation both while waiting and while delivering.
func (n *Notifier) Send(ctx context.Context, e domain.Email) error {
	if _, err := mail.ParseAddress(e.To); err != nil {
		return fmt.Errorf("mailer: invalid recipient %q: %w", e.To, err)
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("mailer: rate limit wait: %w", err)
	}

	start := time.Now()
	if err := n.transport.Deliver(ctx, n.from, e); err != nil {
		n.log.WarnContext(ctx, "email delivery failed",
			slog.String("to", e.To),
			slog.String("subject", e.Subject),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("mailer: deliver to %s: %w", e.To, err)
	}

	n.log.DebugContext(ctx, "email delivered",
		slog.String("to", e.To),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}
