package models

import "time"

type Employee struct {
	ID         int       `json:"id"`
	CardNumber string    `json:"card_number"`
	Name       string    `json:"name"`
	Salary     float64   `json:"salary"`
	Password   string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

type EmployeeInput struct {
	CardNumber string  `json:"card_number"`
	Name       string  `json:"name"`
	Salary     float64 `json:"salary"`
	Password   string  `json:"password"`
}

type PasswordInput struct {
	Password string `json:"password"`
}

type LoginInput struct {
	CardNumber string `json:"card_number"`
	Password   string `json:"password"`
}
