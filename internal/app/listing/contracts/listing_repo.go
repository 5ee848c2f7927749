package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/avick-dev/bizmarket-service/internal/app/listing/domain"
)

// ListFilter narrows the public listing catalog.
// Empty fields are ignored; only active listings are ever returned.
type ListFilter struct {
	Category string
	Location string
	Search   string
}

// ListingRepository defines the persistence contract for listings.
// Write methods return mutations for the caller's commit plan.
type ListingRepository interface {
	InsertMut(listing *domain.Listing) (*spanner.Mutation, error)
	DeactivateMut(listing *domain.Listing) *spanner.Mutation
	GetByID(ctx context.Context, productID string) (*domain.Listing, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Listing, error)
	ListByIDs(ctx context.Context, productIDs []string) ([]*domain.Listing, error)
}

// FavoriteRepository defines the persistence contract for bookmarks.
type FavoriteRepository interface {
	InsertMut(userID, productID string) *spanner.Mutation
	DeleteMut(userID, productID string) *spanner.Mutation
	ListProductIDs(ctx context.Context, userID string) ([]string, error)
}
