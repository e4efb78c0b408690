package app

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/fx"

	"github.com/astraclean/offerte_backend/config"
	"github.com/astraclean/offerte_backend/internal/service/quote"
	"github.com/astraclean/offerte_backend/pkg/captcha"
	"github.com/astraclean/offerte_backend/pkg/email"
	"github.com/astraclean/offerte_backend/pkg/validate"
)

func TestModules_Validate(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{Port: 8080}}

	err := fx.ValidateApp(
		fx.Supply(cfg),
		InfraModule,
		ServiceModule,
		fx.Invoke(func(quote.Service) {}),
	)
	if err != nil {
		t.Fatalf("fx graph is incomplete: %v", err)
	}
}

func TestProvideQuoteService_EmailDisabled(t *testing.T) {
	cfg := &config.Config{Quote: config.QuoteConfig{Recipient: "info@astraclean.nl"}}
	mailer, err := ProvideEmailClient(cfg)
	if err != nil {
		t.Fatalf("ProvideEmailClient failed: %v", err)
	}

	svc := ProvideQuoteService(quoteParams{
		Cfg:      cfg,
		Mailer:   mailer,
		Verifier: captcha.New(cfg.Captcha),
	})

	_, err = svc.Submit(context.Background(), quote.Request{Values: validate.Values{
		validate.FieldName:        "Jan de Vries",
		validate.FieldEmail:       "jan@example.com",
		validate.FieldPhone:       "0612345678",
		validate.FieldService:     "Kantoorschoonmaak",
		validate.FieldDescription: "Twee verdiepingen, wekelijks.",
	}})
	if !errors.Is(err, quote.ErrDelivery) {
		t.Fatalf("Submit() error = %v, want ErrDelivery", err)
	}
	if !errors.Is(err, email.ErrDisabled) {
		t.Errorf("Submit() error = %v, want wrapped email.ErrDisabled", err)
	}
}
