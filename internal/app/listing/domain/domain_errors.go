package domain

import "errors"

var (
	// ErrListingNotFound indicates the listing does not exist or is inactive.
	ErrListingNotFound = errors.New("listing not found")

	// ErrNotOwner indicates the actor does not own the listing.
	ErrNotOwner = errors.New("actor is not the listing owner")

	// ErrSellerRoleRequired indicates the actor's role cannot list businesses.
	ErrSellerRoleRequired = errors.New("seller role required")

	// ErrAlreadyInactive indicates the listing was already deactivated.
	ErrAlreadyInactive = errors.New("listing already inactive")

	// ErrInvalidArgument indicates a malformed listing field.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnavailable indicates a storage failure.
	ErrUnavailable = errors.New("service unavailable")
)
