package config

import (
	"os"
	"strconv"
	"strings"
)

type SMTP struct {
	Host      string
	Port      int
	User      string
	Password  string
	FromName  string
	FromEmail string
}

// Enabled reports whether enough SMTP settings are present to send mail.
func (s SMTP) Enabled() bool {
	return s.Host != "" && s.User != ""
}

type Config struct {
	Port        string
	GinMode     string
	CORSOrigins []string
	// AuditDSN is the MySQL DSN for the persistent audit trail. Empty keeps
	// the audit trail in memory only.
	AuditDSN string
	SMTP     SMTP
}

func Load() (*Config, error) {
	dsn, err := resolveAuditDSN()
	if err != nil {
		return nil, err
	}

	smtpPort, err := strconv.Atoi(envOrDefault("SMTP_PORT", "587"))
	if err != nil {
		smtpPort = 587
	}

	return &Config{
		Port:        envOrDefault("PORT", "8080"),
		GinMode:     envOrDefault("GIN_MODE", ""),
		CORSOrigins: parseCORSOrigins(),
		AuditDSN:    dsn,
		SMTP: SMTP{
			Host:      envOrDefault("SMTP_HOST", ""),
			Port:      smtpPort,
			User:      envOrDefault("SMTP_USER", ""),
			Password:  envOrDefault("SMTP_PASSWORD", ""),
			FromName:  envOrDefault("SMTP_FROM_NAME", "Hotel Premium"),
			FromEmail: envOrDefault("SMTP_FROM_EMAIL", "reservations@hotelpremium.com"),
		},
	}, nil
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func parseCORSOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
