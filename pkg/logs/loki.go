package logs

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/grafana/loki-client-go/loki"
	slogloki "github.com/samber/slog-loki/v3"

	"github.com/astraclean/offerte_backend/config"
)

const lokiPushPath = "/loki/api/v1/push"

type lokiShipper struct {
	client  *loki.Client
	handler slog.Handler
}

func newLokiShipper(cfg config.LokiConfig, level slog.Level) (*lokiShipper, error) {
	pushURL, err := lokiPushURL(cfg)
	if err != nil {
		return nil, err
	}

	lcfg, err := loki.NewDefaultConfig(pushURL)
	if err != nil {
		return nil, fmt.Errorf("loki config: %w", err)
	}
	lcfg.TenantID = cfg.TenantID

	client, err := loki.New(lcfg)
	if err != nil {
		return nil, fmt.Errorf("loki client: %w", err)
	}

	return &lokiShipper{
		client:  client,
		handler: slogloki.Option{Level: level, Client: client}.NewLokiHandler(),
	}, nil
}

func (s *lokiShipper) stop() { s.client.Stop() }

// lokiPushURL appends the push path and embeds basic auth credentials
// (Grafana Cloud) in the URL user info.
func lokiPushURL(cfg config.LokiConfig) (string, error) {
	endpoint := strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/")
	if endpoint == "" {
		return "", errors.New("loki endpoint is empty")
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("loki endpoint: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("loki endpoint %q must be an absolute URL", cfg.Endpoint)
	}
	if !strings.HasSuffix(u.Path, lokiPushPath) {
		u.Path += lokiPushPath
	}
	if cfg.Username != "" {
		u.User = url.UserPassword(cfg.Username, cfg.Password)
	}
	return u.String(), nil
}
