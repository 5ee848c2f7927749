package get_listing

import (
	"context"

	"github.com/avick-dev/bizmarket-service/internal/app/listing/contracts"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/domain"
)

// Request identifies the listing to fetch.
type Request struct {
	ProductID string
}

// Query handles the get listing query use case.
type Query struct {
	listings contracts.ListingRepository
}

// NewQuery creates a new get listing query.
func NewQuery(listings contracts.ListingRepository) *Query {
	return &Query{listings: listings}
}

// Execute retrieves a single active listing's public view.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ListingView, error) {
	listing, err := q.listings.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !listing.IsActive() {
		return nil, domain.ErrListingNotFound
	}
	return contracts.ViewOf(listing), nil
}
