// Package usecase implements the business logic for the auth feature.
package usecase

import "loomspace_backend/internal/platform/apperr"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = apperr.NotFound("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = apperr.Conflict("email already exists")

	// ErrInvalidCredentials is returned for an unknown email or a wrong password.
	// The two cases share one message so that callers cannot tell which emails are registered.
	ErrInvalidCredentials = apperr.Unauthorized("invalid email or password")

	// ErrWeakPassword is returned when a password is shorter than minPasswordLength.
	ErrWeakPassword = apperr.Validation("password must be at least %d characters long", minPasswordLength)

	// ErrUserHasOrders is returned when deleting a user that still owns orders.
	ErrUserHasOrders = apperr.Conflict("user has orders and cannot be deleted")

	// ErrCannotDeleteSelf is returned when an admin tries to delete their own account.
	ErrCannotDeleteSelf = apperr.Validation("cannot delete your own account")
)
