package controllers

import (
	"errors"

	"salesdesk/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgconn"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool { return pgErrorCode(err) == "23505" }

func isFKViolation(err error) bool { return pgErrorCode(err) == "23503" }

// serialization failure or deadlock; safe to retry the transaction
func isTxConflict(err error) bool {
	code := pgErrorCode(err)
	return code == "40001" || code == "40P01"
}

// fail maps the service error taxonomy onto HTTP statuses.
func fail(c *fiber.Ctx, err error) error {
	var vErr *models.ValidationError
	switch {
	case errors.Is(err, models.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": vErr.Msg})
	case errors.Is(err, models.ErrConflict) || isTxConflict(err):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "conflicting update, please retry"})
	case isUniqueViolation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "duplicate value for a unique field"})
	case isFKViolation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "referenced record does not exist or is still referenced"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
