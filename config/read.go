package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/astraclean/offerte_backend/pkg/constants"
)

// ReadConfig loads config.yaml from configPath. The file is optional: every
// key can be supplied through the environment instead.
func ReadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(constants.ConfigName)
	v.SetConfigType(constants.ConfigFormat)
	v.AddConfigPath(configPath)

	setDefaults(v)

	// e.g. OFFERTE_EMAIL_SMTP_HOST overrides email.smtp.host
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}
	return config
}

// setDefaults registers every key so AutomaticEnv can also populate keys
// that are absent from the file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.domain", "")
	v.SetDefault("server.cors.enabled", false)
	v.SetDefault("server.cors.allow_origins", []string{})
	v.SetDefault("server.rate_limit.max", 5)
	v.SetDefault("server.rate_limit.expiration_seconds", 60)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.username", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("redis.dial_timeout_seconds", 5)
	v.SetDefault("redis.read_timeout_seconds", 3)
	v.SetDefault("redis.write_timeout_seconds", 3)

	v.SetDefault("email.enabled", false)
	v.SetDefault("email.from", "")
	v.SetDefault("email.smtp.host", "")
	v.SetDefault("email.smtp.port", 587)
	v.SetDefault("email.smtp.username", "")
	v.SetDefault("email.smtp.password", "")
	v.SetDefault("email.smtp.use_tls", false)
	v.SetDefault("email.smtp.timeout_seconds", 30)

	v.SetDefault("quote.recipient", "")
	v.SetDefault("quote.subject", "Nieuwe offerte aanvraag")

	v.SetDefault("captcha.enabled", false)
	v.SetDefault("captcha.secret", "")
	v.SetDefault("captcha.verify_url", "https://www.google.com/recaptcha/api/siteverify")
	v.SetDefault("captcha.min_score", 0.0)

	v.SetDefault("archive.enabled", false)
	v.SetDefault("archive.prefix", "quotes")
	v.SetDefault("archive.s3.endpoint", "")
	v.SetDefault("archive.s3.region", "")
	v.SetDefault("archive.s3.access_key_id", "")
	v.SetDefault("archive.s3.secret_access_key", "")
	v.SetDefault("archive.s3.bucket", "")

	v.SetDefault("client.endpoint", "http://localhost:8080/")
	v.SetDefault("client.encoding", "urlencoded")

	v.SetDefault("observability.enabled", false)
	v.SetDefault("observability.service_name", "offerte_backend")
	v.SetDefault("observability.service_version", "dev")
	v.SetDefault("observability.tracing.enabled", false)
	v.SetDefault("observability.tracing.otlp_endpoint", "")
	v.SetDefault("observability.tracing.otlp_insecure", false)
	v.SetDefault("observability.tracing.sampling_rate", 1.0)
	v.SetDefault("observability.metrics.enabled", false)
	v.SetDefault("observability.metrics.path", "/metrics")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output.stdout", true)
	v.SetDefault("logging.output.file.enabled", false)
	v.SetDefault("logging.output.file.path", "logs/app.log")
	v.SetDefault("logging.output.file.max_size_mb", 50)
	v.SetDefault("logging.output.file.max_backups", 5)
	v.SetDefault("logging.output.file.max_age_days", 30)
	v.SetDefault("logging.output.file.compress", true)
	v.SetDefault("logging.output.loki.enabled", false)
	v.SetDefault("logging.output.loki.endpoint", "")
	v.SetDefault("logging.output.loki.tenant_id", "")
	v.SetDefault("logging.output.loki.username", "")
	v.SetDefault("logging.output.loki.password", "")
}
