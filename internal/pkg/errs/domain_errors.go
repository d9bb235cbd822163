package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Catalog errors
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrRingSizeRequired   = errors.New("ring size required")

	// Cart errors
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrEmptyCart        = errors.New("cart is empty")

	// Order errors
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderNotPending = errors.New("order is not pending")

	// Payment reconciliation errors
	ErrPaymentDecode     = errors.New("payment callback decode failed")
	ErrSignatureMismatch = errors.New("payment signature mismatch")
	ErrPaymentIncomplete = errors.New("payment status incomplete")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
