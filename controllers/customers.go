package controllers

import (
	"errors"
	"strings"

	"salesdesk/cache"
	"salesdesk/condb"
	"salesdesk/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v4"
)

func validateCustomerInput(in models.CustomerInput) error {
	if in.Name == "" {
		return models.Invalid("name is required")
	}
	if !strings.Contains(in.Email, "@") {
		return models.Invalid("a valid email is required")
	}
	if len(in.Phone) != 10 {
		return models.Invalid("phone must be exactly 10 digits")
	}
	for _, r := range in.Phone {
		if r < '0' || r > '9' {
			return models.Invalid("phone must contain digits only")
		}
	}
	return nil
}

func ListCustomers(c *fiber.Ctx) error {
	rows, err := condb.Pool.Query(c.Context(), `
        SELECT id, name, email, phone, created_at
        FROM customers
        ORDER BY id ASC
    `)
	if err != nil {
		return fail(c, err)
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var cus models.Customer
		if err := rows.Scan(&cus.ID, &cus.Name, &cus.Email, &cus.Phone, &cus.CreatedAt); err != nil {
			return fail(c, err)
		}
		customers = append(customers, cus)
	}
	if err := rows.Err(); err != nil {
		return fail(c, err)
	}

	return c.JSON(customers)
}

func GetCustomerByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid customer id"})
	}

	var cus models.Customer
	err = condb.Pool.QueryRow(c.Context(), `
        SELECT id, name, email, phone, created_at
        FROM customers
        WHERE id = $1
    `, id).Scan(&cus.ID, &cus.Name, &cus.Email, &cus.Phone, &cus.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fail(c, models.NotFound("customer"))
		}
		return fail(c, err)
	}

	return c.JSON(cus)
}

func CreateCustomer(c *fiber.Ctx) error {
	var in models.CustomerInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validateCustomerInput(in); err != nil {
		return fail(c, err)
	}

	var cus models.Customer
	cus.Name = in.Name
	cus.Email = in.Email
	cus.Phone = in.Phone
	err := condb.Pool.QueryRow(c.Context(),
		`INSERT INTO customers (name, email, phone)
         VALUES ($1, $2, $3)
         RETURNING id, created_at`,
		in.Name, in.Email, in.Phone,
	).Scan(&cus.ID, &cus.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fail(c, models.Invalid("email or phone already registered"))
		}
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(cus)
}

func UpdateCustomer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid customer id"})
	}

	var in models.CustomerInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validateCustomerInput(in); err != nil {
		return fail(c, err)
	}

	commandTag, err := condb.Pool.Exec(c.Context(),
		`UPDATE customers SET name=$1, email=$2, phone=$3 WHERE id=$4`,
		in.Name, in.Email, in.Phone, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fail(c, models.Invalid("email or phone already registered"))
		}
		return fail(c, err)
	}
	if commandTag.RowsAffected() == 0 {
		return fail(c, models.NotFound("customer"))
	}

	return c.JSON(fiber.Map{"message": "Customer updated successfully"})
}

func DeleteCustomer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid customer id"})
	}

	// dependent bills go with the customer (ON DELETE CASCADE)
	commandTag, err := condb.Pool.Exec(c.Context(), `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return fail(c, err)
	}
	if commandTag.RowsAffected() == 0 {
		return fail(c, models.NotFound("customer"))
	}

	cache.InvalidateAnalytics(c.Context())

	return c.JSON(fiber.Map{"message": "Customer deleted successfully"})
}
