package controllers

import (
	"context"
	"errors"

	"salesdesk/cache"
	"salesdesk/condb"
	"salesdesk/events"
	"salesdesk/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v4"
)

// ComputeBillTotal prices a sale at the product's current price with
// the discount applied.
func ComputeBillTotal(price float64, quantity int, discountPercentage float64) float64 {
	return price * float64(quantity) * (1 - discountPercentage/100)
}

func ValidateBillInput(in models.BillInput) error {
	if in.Quantity < 1 {
		return models.Invalid("quantity must be at least 1")
	}
	if in.DiscountPercentage < 0 || in.DiscountPercentage > 100 {
		return models.Invalid("discount_percentage must be between 0 and 100")
	}
	switch in.Method {
	case models.MethodCash, models.MethodCard, models.MethodUPI:
	default:
		return models.Invalid("method must be one of Cash, Card, UPI")
	}
	return nil
}

// createBill runs the whole sale as one transaction. The product row
// is locked first so two concurrent sales of the same product cannot
// both pass the stock check; the guarded decrement is a second fence
// in case the row was touched outside this path.
func createBill(ctx context.Context, in models.BillInput) (models.Bill, error) {
	var bill models.Bill

	tx, err := condb.Pool.Begin(ctx)
	if err != nil {
		return bill, err
	}
	defer tx.Rollback(ctx)

	var productName string
	var price float64
	var stock int
	err = tx.QueryRow(ctx,
		`SELECT name, price, stock FROM products WHERE id = $1 FOR UPDATE`,
		in.ProductID,
	).Scan(&productName, &price, &stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bill, models.NotFound("product")
		}
		return bill, err
	}

	var customerName string
	err = tx.QueryRow(ctx, `SELECT name FROM customers WHERE id = $1`, in.CustomerID).Scan(&customerName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bill, models.NotFound("customer")
		}
		return bill, err
	}

	var employeeName string
	err = tx.QueryRow(ctx, `SELECT name FROM employees WHERE id = $1`, in.EmployeeID).Scan(&employeeName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bill, models.NotFound("employee")
		}
		return bill, err
	}

	if stock < in.Quantity {
		return bill, models.ErrOutOfStock
	}

	total := ComputeBillTotal(price, in.Quantity, in.DiscountPercentage)

	bill = models.Bill{
		CustomerID:         in.CustomerID,
		ProductID:          in.ProductID,
		EmployeeID:         in.EmployeeID,
		Quantity:           in.Quantity,
		DiscountPercentage: in.DiscountPercentage,
		Method:             in.Method,
		TotalAmount:        total,
		Customer:           customerName,
		Product:            productName,
		SalesBy:            employeeName,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO bills (customer_id, product_id, employee_id, quantity, discount_percentage, method, total_amount)
         VALUES ($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, date`,
		in.CustomerID, in.ProductID, in.EmployeeID, in.Quantity, in.DiscountPercentage, in.Method, total,
	).Scan(&bill.ID, &bill.Date)
	if err != nil {
		return bill, err
	}

	commandTag, err := tx.Exec(ctx,
		`UPDATE products SET stock = stock - $1 WHERE id = $2 AND stock >= $1`,
		in.Quantity, in.ProductID,
	)
	if err != nil {
		return bill, err
	}
	if commandTag.RowsAffected() == 0 {
		return bill, models.ErrOutOfStock
	}

	if err := tx.Commit(ctx); err != nil {
		return bill, err
	}
	return bill, nil
}

func CreateBill(c *fiber.Ctx) error {
	var in models.BillInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := ValidateBillInput(in); err != nil {
		return fail(c, err)
	}

	bill, err := createBill(c.Context(), in)
	if isTxConflict(err) {
		// one retry; the lock holder has committed or rolled back
		bill, err = createBill(c.Context(), in)
	}
	if err != nil {
		return fail(c, err)
	}

	events.EmitBillCreated(bill)
	cache.InvalidateAnalytics(c.Context())

	return c.Status(fiber.StatusCreated).JSON(bill)
}

const billSelect = `
    SELECT b.id, b.customer_id, b.product_id, b.employee_id,
           b.quantity, b.discount_percentage, b.method, b.total_amount, b.date,
           c.name, p.name, e.name
    FROM bills b
    JOIN customers c ON c.id = b.customer_id
    JOIN products p ON p.id = b.product_id
    JOIN employees e ON e.id = b.employee_id
`

func scanBill(row pgx.Row) (models.Bill, error) {
	var b models.Bill
	err := row.Scan(
		&b.ID, &b.CustomerID, &b.ProductID, &b.EmployeeID,
		&b.Quantity, &b.DiscountPercentage, &b.Method, &b.TotalAmount, &b.Date,
		&b.Customer, &b.Product, &b.SalesBy,
	)
	return b, err
}

func ListBills(c *fiber.Ctx) error {
	rows, err := condb.Pool.Query(c.Context(), billSelect+` ORDER BY b.id ASC`)
	if err != nil {
		return fail(c, err)
	}
	defer rows.Close()

	bills := []models.Bill{}
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return fail(c, err)
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return fail(c, err)
	}

	return c.JSON(bills)
}

func GetBillByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid bill id"})
	}

	b, err := scanBill(condb.Pool.QueryRow(c.Context(), billSelect+` WHERE b.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fail(c, models.NotFound("bill"))
		}
		return fail(c, err)
	}

	return c.JSON(b)
}

// UpdateBill changes the customer and payment method only. Quantity,
// product, discount, total and date are frozen at creation.
func UpdateBill(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid bill id"})
	}

	var in models.BillUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	switch in.Method {
	case models.MethodCash, models.MethodCard, models.MethodUPI:
	default:
		return fail(c, models.Invalid("method must be one of Cash, Card, UPI"))
	}

	commandTag, err := condb.Pool.Exec(c.Context(),
		`UPDATE bills SET customer_id=$1, method=$2 WHERE id=$3`,
		in.CustomerID, in.Method, id,
	)
	if err != nil {
		if isFKViolation(err) {
			return fail(c, models.NotFound("customer"))
		}
		return fail(c, err)
	}
	if commandTag.RowsAffected() == 0 {
		return fail(c, models.NotFound("bill"))
	}

	cache.InvalidateAnalytics(c.Context())

	return c.JSON(fiber.Map{"message": "Bill updated successfully"})
}

// DeleteBill removes the record without restoring stock.
func DeleteBill(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid bill id"})
	}

	commandTag, err := condb.Pool.Exec(c.Context(), `DELETE FROM bills WHERE id=$1`, id)
	if err != nil {
		return fail(c, err)
	}
	if commandTag.RowsAffected() == 0 {
		return fail(c, models.NotFound("bill"))
	}

	cache.InvalidateAnalytics(c.Context())

	return c.JSON(fiber.Map{"message": "Bill deleted successfully"})
}
