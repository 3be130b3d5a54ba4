package config

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Reminder.validate(); err != nil {
		return fmt.Errorf("reminder: %w", err)
	}

	if err := c.Mail.validate(); err != nil {
		return fmt.Errorf("mail: %w", err)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (r *ReminderConfig) validate() error {
	if r.Concurrency < 1 {
		return fmt.Errorf("concurrency must be >= 1 (got %d)", r.Concurrency)
	}
	if r.SendTimeout <= 0 {
		return fmt.Errorf("send_timeout must be > 0 (got %v)", r.SendTimeout)
	}
	if _, err := ParseSchedule(r.Schedule); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	return nil
}

func (m *MailConfig) validate() error {
	switch strings.ToLower(m.Transport) {
	case MailTransportSMTP:
		if m.SMTPHost == "" {
			return fmt.Errorf("smtp_host is required for smtp transport")
		}
		if m.SMTPPort <= 0 || m.SMTPPort > 65535 {
			return fmt.Errorf("smtp_port must be in 1..65535 (got %d)", m.SMTPPort)
		}
	case MailTransportLog:
	default:
		return fmt.Errorf("transport must be %q or %q (got %q)", MailTransportSMTP, MailTransportLog, m.Transport)
	}

	if _, err := mail.ParseAddress(m.From); err != nil {
		return fmt.Errorf("from %q: %w", m.From, err)
	}
	if m.MaxPerSecond <= 0 {
		return fmt.Errorf("max_per_second must be > 0 (got %v)", m.MaxPerSecond)
	}
	return nil
}

// ParseSchedule parses a standard five-field cron expression
// (minute hour day-of-month month day-of-week) or a descriptor such as "@daily".
func ParseSchedule(spec string) (cron.Schedule, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("empty cron expression")
	}
	return cron.ParseStandard(spec)
}
