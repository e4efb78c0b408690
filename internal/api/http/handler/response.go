package handler

import (
	"github.com/gofiber/fiber/v3"
)

const (
	msgSent         = "Bedankt! Jouw offerteaanvraag is verzonden."
	msgFailed       = "Er ging iets mis. Probeer het opnieuw."
	msgInvalid      = "Ongeldige aanvraag."
	msgInvalidEmail = "Ongeldig e-mailadres."
	msgCaptcha      = "CAPTCHA-verificatie mislukt."
	MsgRateLimited  = "Te veel aanvragen. Probeer het later opnieuw."
)

// wantsJSON reports whether the client prefers the JSON envelope over the
// plain-text reply the quote form reads.
func wantsJSON(c fiber.Ctx) bool {
	return c.Accepts(fiber.MIMETextPlain, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}

func text(c fiber.Ctx, status int, msg string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(status).SendString(msg)
}

func ok(c fiber.Ctx, msg string, data fiber.Map) error {
	if wantsJSON(c) {
		data["message"] = msg
		return c.JSON(fiber.Map{"data": data})
	}
	return text(c, fiber.StatusOK, msg)
}

func fail(c fiber.Ctx, status int, msg string) error {
	if wantsJSON(c) {
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}
	return text(c, status, msg)
}

func validationFailed(c fiber.Ctx, msg string, fields map[string]string) error {
	if wantsJSON(c) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg, "fields": fields})
	}
	return text(c, fiber.StatusBadRequest, msg)
}

func methodNotAllowed(c fiber.Ctx) error {
	c.Set(fiber.HeaderAllow, fiber.MethodPost)
	return fail(c, fiber.StatusMethodNotAllowed, msgInvalid)
}

func forbidden(c fiber.Ctx, msg string) error {
	return fail(c, fiber.StatusForbidden, msg)
}

// TooManyRequests is the limiter's LimitReached handler.
func TooManyRequests(c fiber.Ctx) error {
	return fail(c, fiber.StatusTooManyRequests, MsgRateLimited)
}

func internalError(c fiber.Ctx) error {
	return fail(c, fiber.StatusInternalServerError, msgFailed)
}
