package order

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrInvalidQuantity   = errors.New("item quantity must be a positive integer")
	ErrMissingAddress    = errors.New("delivery address is required")
	ErrInsufficientStock = errors.New("insufficient stock")
)
