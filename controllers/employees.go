package controllers

import (
	"errors"

	"salesdesk/condb"
	"salesdesk/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"
)

// ValidateCardNumber enforces the fixed 12-digit card number format.
func ValidateCardNumber(card string) error {
	if len(card) != 12 {
		return models.Invalid("card_number must be exactly 12 digits")
	}
	for _, r := range card {
		if r < '0' || r > '9' {
			return models.Invalid("card_number must contain digits only")
		}
	}
	return nil
}

func validateEmployeeInput(in models.EmployeeInput) error {
	if err := ValidateCardNumber(in.CardNumber); err != nil {
		return err
	}
	if in.Name == "" {
		return models.Invalid("name is required")
	}
	if in.Salary < 0 {
		return models.Invalid("salary must not be negative")
	}
	return nil
}

func ListEmployees(c *fiber.Ctx) error {
	rows, err := condb.Pool.Query(c.Context(), `
        SELECT id, card_number, name, salary, created_at
        FROM employees
        ORDER BY id ASC
    `)
	if err != nil {
		return fail(c, err)
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var emp models.Employee
		if err := rows.Scan(&emp.ID, &emp.CardNumber, &emp.Name, &emp.Salary, &emp.CreatedAt); err != nil {
			return fail(c, err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return fail(c, err)
	}

	return c.JSON(employees)
}

func GetEmployeeByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	var emp models.Employee
	err = condb.Pool.QueryRow(c.Context(), `
        SELECT id, card_number, name, salary, created_at
        FROM employees
        WHERE id = $1
    `, id).Scan(&emp.ID, &emp.CardNumber, &emp.Name, &emp.Salary, &emp.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fail(c, models.NotFound("employee"))
		}
		return fail(c, err)
	}

	return c.JSON(emp)
}

func CreateEmployee(c *fiber.Ctx) error {
	var in models.EmployeeInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validateEmployeeInput(in); err != nil {
		return fail(c, err)
	}
	if in.Password == "" {
		return fail(c, models.Invalid("password is required"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, err)
	}

	var emp models.Employee
	emp.CardNumber = in.CardNumber
	emp.Name = in.Name
	emp.Salary = in.Salary
	err = condb.Pool.QueryRow(c.Context(),
		`INSERT INTO employees (card_number, name, salary, password)
         VALUES ($1, $2, $3, $4)
         RETURNING id, created_at`,
		in.CardNumber, in.Name, in.Salary, string(hash),
	).Scan(&emp.ID, &emp.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fail(c, models.Invalid("card_number already registered"))
		}
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(emp)
}

func UpdateEmployee(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	var in models.EmployeeInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validateEmployeeInput(in); err != nil {
		return fail(c, err)
	}

	commandTag, err := condb.Pool.Exec(c.Context(),
		`UPDATE employees SET card_number=$1, name=$2, salary=$3 WHERE id=$4`,
		in.CardNumber, in.Name, in.Salary, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fail(c, models.Invalid("card_number already registered"))
		}
		return fail(c, err)
	}
	if commandTag.RowsAffected() == 0 {
		return fail(c, models.NotFound("employee"))
	}

	return c.JSON(fiber.Map{"message": "Employee updated successfully"})
}

func DeleteEmployee(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	commandTag, err := condb.Pool.Exec(c.Context(), `DELETE FROM employees WHERE id=$1`, id)
	if err != nil {
		// bills reference the employee; removal is blocked
		if isFKViolation(err) {
			return fail(c, models.Invalid("employee has bills on record and cannot be deleted"))
		}
		return fail(c, err)
	}
	if commandTag.RowsAffected() == 0 {
		return fail(c, models.NotFound("employee"))
	}

	return c.JSON(fiber.Map{"message": "Employee deleted successfully"})
}

// GetEmployeePassword identifies the employee behind the
// password-update path without echoing the stored credential.
func GetEmployeePassword(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	var cardNumber, name string
	err = condb.Pool.QueryRow(c.Context(),
		`SELECT card_number, name FROM employees WHERE id = $1`, id,
	).Scan(&cardNumber, &name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fail(c, models.NotFound("employee"))
		}
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"card_number": cardNumber,
		"name":        name,
	})
}

func UpdateEmployeePassword(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	var in models.PasswordInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if in.Password == "" {
		return fail(c, models.Invalid("password is required"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, err)
	}

	commandTag, err := condb.Pool.Exec(c.Context(),
		`UPDATE employees SET password=$1 WHERE id=$2`, string(hash), id,
	)
	if err != nil {
		return fail(c, err)
	}
	if commandTag.RowsAffected() == 0 {
		return fail(c, models.NotFound("employee"))
	}

	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}
