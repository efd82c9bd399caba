package controllers

import (
	"errors"
	"strings"

	"salesdesk/condb"
	"salesdesk/models"
	"salesdesk/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"
)

func Login(c *fiber.Ctx) error {
	var in models.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	var emp models.Employee
	err := condb.Pool.QueryRow(c.Context(),
		`SELECT id, card_number, name, password FROM employees WHERE card_number = $1`,
		in.CardNumber,
	).Scan(&emp.ID, &emp.CardNumber, &emp.Name, &emp.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Employee not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(in.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Incorrect password"})
	}

	token, err := utils.GenerateJWTToken(emp.CardNumber)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Token generation failed"})
	}

	utils.SetJWTCookie(c, token)

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"employee": fiber.Map{
			"card_number": emp.CardNumber,
			"name":        emp.Name,
		},
		"token": token,
	})
}

// Refresh re-issues a token for a caller whose current token is still
// valid.
func Refresh(c *fiber.Ctx) error {
	auth := c.Get("Authorization")
	if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
	}

	cardNumber, err := utils.ParseJWTToken(strings.TrimPrefix(auth, "Bearer "))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	token, err := utils.GenerateJWTToken(cardNumber)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Token generation failed"})
	}

	utils.SetJWTCookie(c, token)

	return c.JSON(fiber.Map{"token": token})
}
