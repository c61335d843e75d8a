// Package usecase implements order placement and fulfilment.
package usecase

import "loomspace_backend/internal/platform/apperr"

var (
	// ErrUnauthenticated is returned when no user id accompanies the request.
	ErrUnauthenticated = apperr.Unauthorized("Unauthorized")

	// ErrNoItems is returned for an order without lines.
	ErrNoItems = apperr.Validation("order must contain at least one item")

	// ErrInvalidQuantity is returned when a line quantity is below 1.
	ErrInvalidQuantity = apperr.Validation("quantity must be at least 1")

	// ErrUnknownProduct is returned when a line names a product that does not exist.
	// The offending id is attached with Wrap.
	ErrUnknownProduct = apperr.Validation("product does not exist")

	// ErrShippingIncomplete is returned when a shipping field is blank.
	ErrShippingIncomplete = apperr.Validation("shipping details are incomplete")

	// ErrOrderNotFound is returned when no order matches the given id.
	ErrOrderNotFound = apperr.NotFound("order not found")

	// ErrStatusRequired is returned when a status update carries no status.
	ErrStatusRequired = apperr.Validation("Status is required")

	// ErrInvalidStatus is returned for a status outside the five known values.
	ErrInvalidStatus = apperr.Validation("invalid order status")
)
