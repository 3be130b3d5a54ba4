package mailer

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/heartmarshall/renewal-manager/internal/config"
	"github.com/heartmarshall/renewal-manager/internal/domain"
)

const smtpTimeout = 15 * time.Second

// SMTPTransport delivers mail through an SMTP relay using go-mail.
type SMTPTransport struct {
	client *gomail.Client
}

// NewSMTPTransport configures an SMTP client from cfg. No connection is made
// until the first delivery.
func NewSMTPTransport(cfg config.MailConfig) (*SMTPTransport, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.SMTPPort),
		gomail.WithTimeout(smtpTimeout),
	}

	if cfg.SMTPSecure {
		opts = append(opts, gomail.WithSSLPort(false))
	} else {
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.TLSOpportunistic))
	}

	if cfg.SMTPUser != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.SMTPUser),
			gomail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := gomail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("mailer: create smtp client: %w", err)
	}
	return &SMTPTransport{client: client}, nil
}

// Deliver sends one message over a fresh SMTP session.
func (t *SMTPTransport) Deliver(ctx context.Context, from string, e domain.Email) error {
	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(e.To); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	msg.Subject(e.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, e.HTML)

	if err := t.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
