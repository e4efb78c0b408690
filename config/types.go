package config

import (
	"errors"
	"fmt"
	"strings"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Email         EmailConfig         `mapstructure:"email"`
	Quote         QuoteConfig         `mapstructure:"quote"`
	Captcha       CaptchaConfig       `mapstructure:"captcha"`
	Archive       ArchiveConfig       `mapstructure:"archive"`
	Client        ClientConfig        `mapstructure:"client"`
	Observability ObservabilityConfig `mapstructure:"observability"`
	Logging       LoggingConfig       `mapstructure:"logging"`
}

type ServerConfig struct {
	Port        int             `mapstructure:"port"`
	Environment string          `mapstructure:"environment"`
	Domain      string          `mapstructure:"domain"`
	CORS        CORSConfig      `mapstructure:"cors"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
}

type CORSConfig struct {
	Enabled      bool     `mapstructure:"enabled"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type RateLimitConfig struct {
	Max               int `mapstructure:"max"`
	ExpirationSeconds int `mapstructure:"expiration_seconds"`
}

type RedisConfig struct {
	Enabled             bool   `mapstructure:"enabled"`
	Addr                string `mapstructure:"addr"`
	DB                  int    `mapstructure:"db"`
	Username            string `mapstructure:"username"`
	Password            string `mapstructure:"password"`
	PoolSize            int    `mapstructure:"pool_size"`
	MinIdleConns        int    `mapstructure:"min_idle_conns"`
	DialTimeoutSeconds  int    `mapstructure:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds"`
}

type EmailConfig struct {
	Enabled bool       `mapstructure:"enabled"`
	From    string     `mapstructure:"from"`
	SMTP    SMTPConfig `mapstructure:"smtp"`
}

type SMTPConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	UseTLS         bool   `mapstructure:"use_tls"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// QuoteConfig controls where relayed quote requests end up.
type QuoteConfig struct {
	Recipient string `mapstructure:"recipient"`
	Subject   string `mapstructure:"subject"`
}

type CaptchaConfig struct {
	Enabled   bool    `mapstructure:"enabled"`
	Secret    string  `mapstructure:"secret"`
	VerifyURL string  `mapstructure:"verify_url"`
	MinScore  float64 `mapstructure:"min_score"`
}

type ArchiveConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Prefix  string   `mapstructure:"prefix"`
	S3      S3Config `mapstructure:"s3"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Bucket          string `mapstructure:"bucket"`
}

// ClientConfig is used by the quote CLI commands.
type ClientConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Encoding string `mapstructure:"encoding"` // urlencoded, multipart
}

type ObservabilityConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	ServiceName    string        `mapstructure:"service_name"`
	ServiceVersion string        `mapstructure:"service_version"`
	Tracing        TracingConfig `mapstructure:"tracing"`
	Metrics        MetricsConfig `mapstructure:"metrics"`
}

type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SamplingRate float64 `mapstructure:"sampling_rate"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string       `mapstructure:"level"`  // debug, info, warn, error
	Format string       `mapstructure:"format"` // text, json
	Output OutputConfig `mapstructure:"output"`
}

type OutputConfig struct {
	Stdout bool          `mapstructure:"stdout"`
	File   FileLogConfig `mapstructure:"file"`
	Loki   LokiConfig    `mapstructure:"loki"`
}

type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`        // e.g. "logs/app.log"
	MaxSizeMB  int    `mapstructure:"max_size_mb"` // rotate after N MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type LokiConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"` // e.g. "http://localhost:3100"
	TenantID string `mapstructure:"tenant_id"`
	Username string `mapstructure:"username"` // for Grafana Cloud basic auth
	Password string `mapstructure:"password"`
}

// Validate reports every missing setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d is out of range", c.Server.Port))
	}
	if c.Email.Enabled {
		if strings.TrimSpace(c.Email.From) == "" {
			errs = append(errs, errors.New("email.from is required when email is enabled"))
		}
		if strings.TrimSpace(c.Email.SMTP.Host) == "" {
			errs = append(errs, errors.New("email.smtp.host is required when email is enabled"))
		}
		if strings.TrimSpace(c.Quote.Recipient) == "" {
			errs = append(errs, errors.New("quote.recipient is required when email is enabled"))
		}
	}
	if c.Captcha.Enabled && strings.TrimSpace(c.Captcha.Secret) == "" {
		errs = append(errs, errors.New("captcha.secret is required when captcha is enabled"))
	}
	if c.Captcha.MinScore < 0 || c.Captcha.MinScore > 1 {
		errs = append(errs, fmt.Errorf("captcha.min_score %.2f must be between 0 and 1", c.Captcha.MinScore))
	}
	if c.Archive.Enabled && strings.TrimSpace(c.Archive.S3.Bucket) == "" {
		errs = append(errs, errors.New("archive.s3.bucket is required when archive is enabled"))
	}
	if c.Redis.Enabled && strings.TrimSpace(c.Redis.Addr) == "" {
		errs = append(errs, errors.New("redis.addr is required when redis is enabled"))
	}
	switch strings.ToLower(c.Client.Encoding) {
	case "", "urlencoded", "multipart":
	default:
		errs = append(errs, fmt.Errorf("client.encoding %q must be urlencoded or multipart", c.Client.Encoding))
	}

	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}
