package models

import "errors"

// ErrNotFound marks a lookup of a record that does not exist.
var ErrNotFound = errors.New("record not found")

// NotFoundError names the missing record; errors.Is(err, ErrNotFound)
// matches it.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func NotFound(entity string) *NotFoundError { return &NotFoundError{Entity: entity} }

// ErrConflict marks a transaction that lost a lock or serialization
// race; callers may retry.
var ErrConflict = errors.New("transaction conflict")

// ValidationError is a constraint violation: bad field range,
// insufficient stock, uniqueness collision.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Invalid(msg string) *ValidationError { return &ValidationError{Msg: msg} }

// ErrOutOfStock rejects a bill whose quantity exceeds current stock.
var ErrOutOfStock = Invalid("product is out of stock")
