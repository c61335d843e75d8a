// Package usecase implements the business logic for the catalog feature.
package usecase

import "loomspace_backend/internal/platform/apperr"

var (
	// ErrProductNotFound is returned when no product matches the given id or slug.
	ErrProductNotFound = apperr.NotFound("product not found")

	// ErrCategoryNotFound is returned when no category matches the given id.
	ErrCategoryNotFound = apperr.NotFound("category not found")

	// ErrUnknownCategory is returned when a product names a category that does not exist.
	ErrUnknownCategory = apperr.Validation("category does not exist")

	// ErrInvalidPrice is returned for a negative price.
	ErrInvalidPrice = apperr.Validation("price must be a non-negative number")

	// ErrNameRequired is returned when a name is empty or only whitespace.
	ErrNameRequired = apperr.Validation("name is required")

	// ErrInvalidRating is returned when a review rating is outside 1..5.
	ErrInvalidRating = apperr.Validation("rating must be between %d and %d", MinRating, MaxRating)

	// ErrCategoryExists is returned when a category name is already taken.
	ErrCategoryExists = apperr.Conflict("category already exists")

	// ErrSlugTaken is returned when a concurrent write claimed the same slug.
	ErrSlugTaken = apperr.Conflict("slug already exists")

	// ErrCategoryInUse is returned when deleting a category that still has products.
	ErrCategoryInUse = apperr.Conflict("category has products and cannot be deleted")

	// ErrProductInOrders is returned when deleting a product that appears in orders.
	ErrProductInOrders = apperr.Conflict("product is referenced by orders and cannot be deleted")

	// ErrReviewerNotFound is returned when the authenticated user no longer exists.
	ErrReviewerNotFound = apperr.Unauthorized("user no longer exists")
)
