package product

import "errors"

var (
	// -- Validation & Input --
	ErrTitleRequired = errors.New("product title is required")
	ErrNegativePrice = errors.New("product price must not be negative")
	ErrNoUpdateField = errors.New("no product field to update")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
)
