package email

import (
	"time"

	"github.com/astraclean/offerte_backend/config"
)

const (
	defaultSMTPPort    = 587
	defaultSMTPTimeout = 30 * time.Second
)

// Config is the SMTP relay the quote mails leave through.
type Config struct {
	Enabled bool
	From    string

	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPUseTLS         bool // implicit TLS, usually port 465
	SMTPTimeoutSeconds int
}

// SMTPTimeout bounds one delivery attempt.
func (c Config) SMTPTimeout() time.Duration {
	if c.SMTPTimeoutSeconds <= 0 {
		return defaultSMTPTimeout
	}
	return time.Duration(c.SMTPTimeoutSeconds) * time.Second
}

func FromCentralConfig(c config.EmailConfig) Config {
	port := c.SMTP.Port
	if port == 0 {
		port = defaultSMTPPort
	}
	return Config{
		Enabled:            c.Enabled,
		From:               c.From,
		SMTPHost:           c.SMTP.Host,
		SMTPPort:           port,
		SMTPUsername:       c.SMTP.Username,
		SMTPPassword:       c.SMTP.Password,
		SMTPUseTLS:         c.SMTP.UseTLS,
		SMTPTimeoutSeconds: c.SMTP.TimeoutSeconds,
	}
}
