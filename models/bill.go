package models

import "time"

// Payment methods accepted on a bill.
const (
	MethodCash = "Cash"
	MethodCard = "Card"
	MethodUPI  = "UPI"
)

// Bill is a single sale: one customer, one product, one salesperson.
// Customer, Product and SalesBy carry the resolved display names;
// the *_id columns stay the source of truth in storage.
type Bill struct {
	ID                 int       `json:"id"`
	CustomerID         int       `json:"customer_id"`
	ProductID          int       `json:"product_id"`
	EmployeeID         int       `json:"employee_id"`
	Quantity           int       `json:"quantity"`
	DiscountPercentage float64   `json:"discount_percentage"`
	Method             string    `json:"method"`
	TotalAmount        float64   `json:"total_amount"`
	Date               time.Time `json:"date"`

	Customer string `json:"customer,omitempty"`
	Product  string `json:"product,omitempty"`
	SalesBy  string `json:"sales_by,omitempty"`
}

// BillInput is the client-supplied part of a bill. Total amount and
// date are assigned by the service, never by the caller.
type BillInput struct {
	CustomerID         int     `json:"customer_id"`
	ProductID          int     `json:"product_id"`
	EmployeeID         int     `json:"sales_by"`
	Quantity           int     `json:"quantity"`
	DiscountPercentage float64 `json:"discount_percentage"`
	Method             string  `json:"method"`
}

// BillUpdateInput covers the only fields that stay mutable after
// creation.
type BillUpdateInput struct {
	CustomerID int    `json:"customer_id"`
	Method     string `json:"method"`
}
