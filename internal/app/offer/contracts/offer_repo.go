package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/avick-dev/bizmarket-service/internal/app/offer/domain"
)

// OfferRepository defines the interface for offer persistence.
// Repositories return mutations, they don't apply them; usecases collect the
// mutations into a commit plan and apply it atomically.
type OfferRepository interface {
	// InsertMut creates a mutation for inserting a new offer
	InsertMut(offer *domain.Offer) (*spanner.Mutation, error)

	// UpdateMut creates a mutation for updating an offer (only dirty fields).
	// The mutation always bumps the version column for optimistic locking.
	UpdateMut(offer *domain.Offer) (*spanner.Mutation, error)

	// GetByID retrieves an offer by ID, reconstructing the domain aggregate
	GetByID(ctx context.Context, offerID string) (*domain.Offer, error)
}
