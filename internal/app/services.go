package app

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/astraclean/offerte_backend/config"
	"github.com/astraclean/offerte_backend/internal/service/quote"
	"github.com/astraclean/offerte_backend/pkg/captcha"
	"github.com/astraclean/offerte_backend/pkg/email"
	"github.com/astraclean/offerte_backend/pkg/observability"
	s3pkg "github.com/astraclean/offerte_backend/pkg/s3"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(ProvideQuoteService),
)

type quoteParams struct {
	fx.In

	Cfg      *config.Config
	Mailer   *email.Client
	Verifier *captcha.Verifier
	Archive  *s3pkg.Client           `optional:"true"`
	OTel     *observability.Provider `optional:"true"`
}

// ProvideQuoteService instruments the service through the telemetry
// provider when observability is enabled.
func ProvideQuoteService(p quoteParams) quote.Service {
	var archiver quote.Archiver
	if p.Archive != nil {
		archiver = p.Archive
	}
	return quote.New(p.Mailer, p.Verifier, archiver, quote.Options{
		Recipient:     p.Cfg.Quote.Recipient,
		Subject:       p.Cfg.Quote.Subject,
		ArchivePrefix: p.Cfg.Archive.Prefix,
		Logger:        slog.Default().With(slog.String("component", "quote")),
		Telemetry:     p.OTel,
	})
}
