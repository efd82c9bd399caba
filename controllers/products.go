package controllers

import (
	"errors"

	"salesdesk/cache"
	"salesdesk/condb"
	"salesdesk/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v4"
)

func validateProductInput(in models.ProductInput) error {
	if in.Name == "" {
		return models.Invalid("name is required")
	}
	if in.Price < 0 {
		return models.Invalid("price must not be negative")
	}
	if in.Stock < 0 {
		return models.Invalid("stock must not be negative")
	}
	return nil
}

func ListProducts(c *fiber.Ctx) error {
	rows, err := condb.Pool.Query(c.Context(), `
        SELECT id, name, price, stock, created_at
        FROM products
        ORDER BY id ASC
    `)
	if err != nil {
		return fail(c, err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.CreatedAt); err != nil {
			return fail(c, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return fail(c, err)
	}

	return c.JSON(products)
}

func GetProductByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	var p models.Product
	err = condb.Pool.QueryRow(c.Context(), `
        SELECT id, name, price, stock, created_at
        FROM products
        WHERE id = $1
    `, id).Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fail(c, models.NotFound("product"))
		}
		return fail(c, err)
	}

	return c.JSON(p)
}

func CreateProduct(c *fiber.Ctx) error {
	var in models.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validateProductInput(in); err != nil {
		return fail(c, err)
	}

	var p models.Product
	p.Name = in.Name
	p.Price = in.Price
	p.Stock = in.Stock
	err := condb.Pool.QueryRow(c.Context(),
		`INSERT INTO products (name, price, stock)
         VALUES ($1, $2, $3)
         RETURNING id, created_at`,
		in.Name, in.Price, in.Stock,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(p)
}

func UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	var in models.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validateProductInput(in); err != nil {
		return fail(c, err)
	}

	commandTag, err := condb.Pool.Exec(c.Context(),
		`UPDATE products SET name=$1, price=$2, stock=$3 WHERE id=$4`,
		in.Name, in.Price, in.Stock, id,
	)
	if err != nil {
		return fail(c, err)
	}
	if commandTag.RowsAffected() == 0 {
		return fail(c, models.NotFound("product"))
	}

	return c.JSON(fiber.Map{"message": "Product updated successfully"})
}

func DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	// dependent bills go with the product (ON DELETE CASCADE)
	commandTag, err := condb.Pool.Exec(c.Context(), `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return fail(c, err)
	}
	if commandTag.RowsAffected() == 0 {
		return fail(c, models.NotFound("product"))
	}

	cache.InvalidateAnalytics(c.Context())

	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
