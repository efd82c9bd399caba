package middleware

import (
	"net/http/httptest"
	"testing"

	"salesdesk/utils"

	"github.com/gofiber/fiber/v2"
)

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", JWTMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"card_number": c.Locals("card_number")})
	})
	return app
}

func TestJWTMiddlewareMissingToken(t *testing.T) {
	app := protectedApp()

	req := httptest.NewRequest("GET", "/whoami", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}

func TestJWTMiddlewareInvalidToken(t *testing.T) {
	app := protectedApp()

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	app := protectedApp()

	token, err := utils.GenerateJWTToken("123456789012")
	if err != nil {
		t.Fatalf("GenerateJWTToken: %v", err)
	}

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
}
