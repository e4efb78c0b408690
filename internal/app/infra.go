package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/astraclean/offerte_backend/config"
	"github.com/astraclean/offerte_backend/pkg/captcha"
	"github.com/astraclean/offerte_backend/pkg/email"
	"github.com/astraclean/offerte_backend/pkg/observability"
	redispkg "github.com/astraclean/offerte_backend/pkg/redis"
	s3pkg "github.com/astraclean/offerte_backend/pkg/s3"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideEmailClient),
	fx.Provide(ProvideCaptchaVerifier),
	fx.Provide(ProvideArchiveClient),
	fx.Provide(ProvideOTel),
)

// ProvideRedis returns a nil client when Redis is disabled; consumers fall
// back to in-process state.
func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	rdb, err := redispkg.NewRedisFromCentral(context.Background(), cfg.Redis)
	if errors.Is(err, redispkg.ErrDisabled) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideEmailClient(cfg *config.Config) (*email.Client, error) {
	client, err := email.NewFromCentral(cfg.Email)
	if err != nil {
		return nil, err
	}
	if !client.IsEnabled() {
		slog.Warn("email is disabled, quote requests will not be delivered")
	}
	return client, nil
}

func ProvideCaptchaVerifier(cfg *config.Config) *captcha.Verifier {
	return captcha.New(cfg.Captcha)
}

// ProvideArchiveClient returns nil when archiving is disabled.
func ProvideArchiveClient(cfg *config.Config) (*s3pkg.Client, error) {
	if !cfg.Archive.Enabled {
		return nil, nil
	}
	return s3pkg.New(context.Background(), cfg.Archive.S3)
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.FromCentralConfig(cfg))
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
