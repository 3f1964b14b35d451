package cart

import "errors"

var (
	// -- Authentication/Authorization --
	ErrUserRequired = errors.New("user ID is required")

	// -- Validation & Input --
	ErrProductRequired = errors.New("product is required")

	// -- Database & Operation Failures --
	ErrFailedLoadSnapshot = errors.New("failed to load cart snapshot")
	ErrFailedSaveSnapshot = errors.New("failed to save cart snapshot")
)
