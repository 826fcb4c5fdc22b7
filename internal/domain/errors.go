package domain

import "errors"

// Validation failures surfaced to the caller. None of these are retried; any
// of them aborts the enclosing transaction.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("item not found in cart")
	ErrCartEmpty       = errors.New("cart is empty")
	// ErrNoValidItemsSelected: a selective checkout named only line ids that
	// do not belong to the caller's cart.
	ErrNoValidItemsSelected = errors.New("no valid items selected")
	// ErrOrderNotFound covers both "does not exist" and "owned by someone
	// else" so lookups cannot probe for other users' orders.
	ErrOrderNotFound = errors.New("order not found")
)
