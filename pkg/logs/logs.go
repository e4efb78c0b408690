package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/astraclean/offerte_backend/config"
	"github.com/astraclean/offerte_backend/pkg/constants"
)

// New builds a logger from config, supporting multi-output fan-out.
// The returned func flushes buffered outputs and must be called on shutdown.
func New(cfg *config.Config) (*slog.Logger, func()) {
	level := parseLevel(cfg.Logging.Level)
	isDev := strings.EqualFold(cfg.Server.Environment, "development")

	var writers []io.Writer

	// Always write to stdout if enabled or nothing else is configured
	if cfg.Logging.Output.Stdout || (!cfg.Logging.Output.File.Enabled && !cfg.Logging.Output.Loki.Enabled) {
		writers = append(writers, os.Stdout)
	}

	// File output with rotation via lumberjack
	var rotator *lumberjack.Logger
	if cfg.Logging.Output.File.Enabled {
		rotator = &lumberjack.Logger{
			Filename:   cfg.Logging.Output.File.Path,
			MaxSize:    cfg.Logging.Output.File.MaxSizeMB,
			MaxBackups: cfg.Logging.Output.File.MaxBackups,
			MaxAge:     cfg.Logging.Output.File.MaxAgeDays,
			Compress:   cfg.Logging.Output.File.Compress,
		}
		writers = append(writers, rotator)
	}

	var handlers []slog.Handler

	if len(writers) > 0 {
		w := io.MultiWriter(writers...)
		opts := &slog.HandlerOptions{
			Level:     level,
			AddSource: isDev,
		}
		if strings.EqualFold(cfg.Logging.Format, "json") || !isDev {
			handlers = append(handlers, slog.NewJSONHandler(w, opts))
		} else {
			handlers = append(handlers, slog.NewTextHandler(w, opts))
		}
	}

	var shipper *lokiShipper
	var lokiErr error
	if cfg.Logging.Output.Loki.Enabled {
		shipper, lokiErr = newLokiShipper(cfg.Logging.Output.Loki, level)
		if lokiErr == nil {
			handlers = append(handlers, shipper.handler)
		}
	}

	var h slog.Handler
	switch len(handlers) {
	case 0:
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	case 1:
		h = handlers[0]
	default:
		h = &multiHandler{handlers: handlers}
	}

	logger := slog.New(h).With(
		slog.String("service", cfg.Observability.ServiceName),
		slog.String("version", cfg.Observability.ServiceVersion),
		slog.String("env", cfg.Server.Environment),
	)
	if lokiErr != nil {
		logger.Warn("loki output disabled", slog.String("error", lokiErr.Error()))
	}

	closer := func() {
		if shipper != nil {
			shipper.stop()
		}
		if rotator != nil {
			_ = rotator.Close()
		}
	}
	return logger, closer
}

func Default() *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: false,
	})
	return slog.New(h).With(slog.String("service", constants.AppName))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
