package middleware

import (
	"strings"

	"salesdesk/utils"

	"github.com/gofiber/fiber/v2"
)

func JWTMiddleware(c *fiber.Ctx) error {
	auth := c.Get("Authorization")
	if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
	}

	token := strings.TrimPrefix(auth, "Bearer ")
	cardNumber, err := utils.ParseJWTToken(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	// caller identity for the controllers
	c.Locals("card_number", cardNumber)
	return c.Next()
}
