package constants

const (
	AppName = "offerte"

	ConfigName   = "config"
	ConfigFormat = "yaml"

	// EnvPrefix scopes environment overrides, e.g. OFFERTE_EMAIL_SMTP_HOST.
	EnvPrefix = "OFFERTE"
)
