package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	Reminder ReminderConfig `yaml:"reminder"`
	Mail     MailConfig     `yaml:"mail"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"5m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds settings for validating admin bearer tokens.
// Tokens are issued by the surrounding application.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"renewal-manager"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ReminderConfig holds reminder engine and scheduler settings.
type ReminderConfig struct {
	Enabled       bool          `yaml:"enabled"        env:"REMINDER_ENABLED"        env-default:"true"`
	Schedule      string        `yaml:"schedule"       env:"REMINDER_SCHEDULE"       env-default:"0 0 * * *"`
	Concurrency   int           `yaml:"concurrency"    env:"REMINDER_CONCURRENCY"    env-default:"4"`
	SendTimeout   time.Duration `yaml:"send_timeout"   env:"REMINDER_SEND_TIMEOUT"   env-default:"30s"`
	DedupeEnabled bool          `yaml:"dedupe_enabled" env:"REMINDER_DEDUPE_ENABLED" env-default:"true"`
}

// MailConfig holds outbound email settings.
type MailConfig struct {
	Transport    string  `yaml:"transport"      env:"MAIL_TRANSPORT"      env-default:"log"`
	From         string  `yaml:"from"           env:"EMAIL_FROM"          env-default:"renewals@example.com"`
	SMTPHost     string  `yaml:"smtp_host"      env:"SMTP_HOST"`
	SMTPPort     int     `yaml:"smtp_port"      env:"SMTP_PORT"           env-default:"587"`
	SMTPUser     string  `yaml:"smtp_user"      env:"SMTP_USER"`
	SMTPPassword string  `yaml:"smtp_password"  env:"SMTP_PASS"`
	SMTPSecure   bool    `yaml:"smtp_secure"    env:"SMTP_SECURE"         env-default:"false"`
	MaxPerSecond float64 `yaml:"max_per_second" env:"MAIL_MAX_PER_SECOND" env-default:"5"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

const (
	MailTransportSMTP = "smtp"
	MailTransportLog  = "log"
)

// IsSMTP reports whether mail is delivered through a real SMTP server.
func (c MailConfig) IsSMTP() bool {
	return strings.EqualFold(c.Transport, MailTransportSMTP)
}
