package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/astraclean/offerte_backend/internal/api/http/handler"
)

// QuotePaths are the endpoints the quote form may post to.
var QuotePaths = []string{"/", "/send-offerte"}

func (r *Router) registerQuoteRoutes(app fiber.Router, h *handler.QuoteHandler) {
	for _, path := range QuotePaths {
		app.Post(path, h.Submit)
		app.All(path, h.MethodNotAllowed)
	}
}
