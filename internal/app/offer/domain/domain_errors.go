package domain

import (
	"errors"
	"fmt"
)

// Domain errors as sentinel values
var (
	// Lookup errors
	ErrOfferNotFound   = errors.New("offer not found")
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")

	// Authorization errors (actor is not the role-appropriate party)
	ErrNotSeller       = errors.New("only the seller can act on this offer")
	ErrNotBuyer        = errors.New("only the buyer can act on this offer")
	ErrNotListingOwner = errors.New("only the product owner can view offers for this product")

	// Forbidden errors (account role disallows the action entirely)
	ErrBuyerRoleRequired  = errors.New("only buyers can make offers")
	ErrSellerRoleRequired = errors.New("only sellers can perform this action")

	// Argument errors
	ErrNegativeAmount         = errors.New("offer amount must not be negative")
	ErrSelfOffer              = errors.New("cannot make an offer on your own product")
	ErrUnknownCounterResponse = errors.New("unrecognized counter response type")

	// State errors
	ErrInvalidTransition = errors.New("action is not valid for the current offer status")

	// Infrastructure errors
	ErrUnavailable   = errors.New("collaborator temporarily unavailable")
	ErrMoneyOverflow = errors.New("amount exceeds storage capacity")
)

// TransitionError reports an action attempted from a status that does not allow it.
// It unwraps to ErrInvalidTransition so callers can classify it with errors.Is.
type TransitionError struct {
	Action OfferAction
	Status OfferStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s an offer in status %s", e.Action, e.Status)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func newTransitionError(action OfferAction, status OfferStatus) error {
	return &TransitionError{Action: action, Status: status}
}
