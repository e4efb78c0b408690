package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/astraclean/offerte_backend/internal/service/quote"
	"github.com/astraclean/offerte_backend/pkg/submit"
	"github.com/astraclean/offerte_backend/pkg/validate"
)

type QuoteHandler struct {
	svc quote.Service
}

func NewQuoteHandler(svc quote.Service) *QuoteHandler {
	return &QuoteHandler{svc: svc}
}

// Submit relays a url-encoded or multipart quote form.
func (h *QuoteHandler) Submit(c fiber.Ctx) error {
	values := validate.ValuesFrom(func(key string) string { return c.FormValue(key) })

	receipt, err := h.svc.Submit(c.Context(), quote.Request{
		Values:       values,
		CaptchaToken: c.FormValue(submit.CaptchaField),
		RemoteIP:     c.IP(),
	})

	var verr *quote.ValidationError
	switch {
	case err == nil:
		return ok(c, msgSent, fiber.Map{"id": receipt.ID})
	case errors.As(err, &verr):
		return validationFailed(c, validationMessage(verr), verr.ByField())
	case errors.Is(err, quote.ErrCaptchaFailed):
		return forbidden(c, msgCaptcha)
	default:
		return internalError(c)
	}
}

// validationMessage is the reply line for a rejected form. A request whose
// only problem is the address gets the short email reply.
func validationMessage(verr *quote.ValidationError) string {
	if len(verr.Fields) == 1 && verr.Fields[0].Field == validate.FieldEmail {
		return msgInvalidEmail
	}
	return verr.Error()
}

// MethodNotAllowed answers every non-POST request on the quote endpoints.
func (h *QuoteHandler) MethodNotAllowed(c fiber.Ctx) error {
	return methodNotAllowed(c)
}
