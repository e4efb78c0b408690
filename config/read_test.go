package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestReadConfig_FileAndDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: 9090
email:
  enabled: true
  from: "website@astraclean.nl"
  smtp:
    host: "smtp.example.com"
quote:
  recipient: "info@astraclean.nl"
`)

	cfg, err := ReadConfig(dir)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Quote.Subject != "Nieuwe offerte aanvraag" {
		t.Errorf("Quote.Subject = %q, want default subject", cfg.Quote.Subject)
	}
	if cfg.Email.SMTP.Port != 587 {
		t.Errorf("Email.SMTP.Port = %d, want 587", cfg.Email.SMTP.Port)
	}
	if cfg.Client.Encoding != "urlencoded" {
		t.Errorf("Client.Encoding = %q, want urlencoded", cfg.Client.Encoding)
	}
}

func TestReadConfig_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("OFFERTE_SERVER_PORT", "7070")
	t.Setenv("OFFERTE_QUOTE_RECIPIENT", "sales@astraclean.nl")

	cfg, err := ReadConfig(dir)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Quote.Recipient != "sales@astraclean.nl" {
		t.Errorf("Quote.Recipient = %q", cfg.Quote.Recipient)
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{Server: ServerConfig{Port: 8080}}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "minimal config",
			mutate: func(c *Config) {},
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "server.port",
		},
		{
			name:    "email without recipient",
			mutate:  func(c *Config) { c.Email = EmailConfig{Enabled: true, From: "a@b.nl", SMTP: SMTPConfig{Host: "smtp"}} },
			wantErr: "quote.recipient",
		},
		{
			name:    "captcha without secret",
			mutate:  func(c *Config) { c.Captcha.Enabled = true },
			wantErr: "captcha.secret",
		},
		{
			name:    "archive without bucket",
			mutate:  func(c *Config) { c.Archive.Enabled = true },
			wantErr: "archive.s3.bucket",
		},
		{
			name:    "unknown encoding",
			mutate:  func(c *Config) { c.Client.Encoding = "json" },
			wantErr: "client.encoding",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
