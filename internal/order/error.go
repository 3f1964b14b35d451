package order

import "errors"

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrCartEmpty      = errors.New("cart is empty")
	ErrForbidden      = errors.New("cannot access others' orders")
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrMethodRequired = errors.New("payment method is required")
)
