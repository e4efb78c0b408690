package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/astraclean/offerte_backend/config"
	"github.com/astraclean/offerte_backend/pkg/reqctx"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c fiber.Ctx) error {
		rid, ok := RequestIDFromFiber(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		if reqctx.RequestIDFromContext(c.Context()) != rid {
			return c.SendStatus(fiber.StatusConflict)
		}
		if _, ok := RequestMetaFromFiber(c); !ok {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.SendString(rid)
	})

	t.Run("generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		if err != nil {
			t.Fatalf("app.Test failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if resp.Header.Get(HeaderRequestID) == "" {
			t.Error("Expected generated request ID header")
		}
	})

	t.Run("preserved", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test failed: %v", err)
		}
		defer resp.Body.Close()
		if got := resp.Header.Get(HeaderRequestID); got != "abc-123" {
			t.Errorf("request ID = %q, want abc-123", got)
		}
	})
}

func TestLimiter_InMemory(t *testing.T) {
	app := fiber.New()
	app.Use(NewLimiter(config.RateLimitConfig{Max: 2, ExpirationSeconds: 60}, nil, func(c fiber.Ctx) error {
		return c.Status(fiber.StatusTooManyRequests).SendString("slow down")
	}))
	app.Post("/", func(c fiber.Ctx) error { return c.SendString("ok") })

	codes := make([]int, 0, 3)
	for range 3 {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/", nil))
		if err != nil {
			t.Fatalf("app.Test failed: %v", err)
		}
		resp.Body.Close()
		codes = append(codes, resp.StatusCode)
	}

	want := []int{fiber.StatusOK, fiber.StatusOK, fiber.StatusTooManyRequests}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("status codes = %v, want %v", codes, want)
		}
	}
}
