package received_offers

import (
	"context"
	"errors"

	"github.com/avick-dev/bizmarket-service/internal/app/offer/contracts"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/domain"
)

// Request identifies the seller whose received offers are listed.
type Request struct {
	SellerID string
}

// Query handles the received offers query use case.
type Query struct {
	readModel contracts.OfferReadModel
	listings  contracts.ListingDirectory
}

// NewQuery creates a new received offers query.
func NewQuery(readModel contracts.OfferReadModel, listings contracts.ListingDirectory) *Query {
	return &Query{
		readModel: readModel,
		listings:  listings,
	}
}

// Execute lists all offers received by a seller, newest first.
// Each projection is enriched with the current product name when the listing
// is still active; a missing or inactive listing is tolerated.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.OfferProjection, error) {
	offers, err := q.readModel.ListBySeller(ctx, req.SellerID)
	if err != nil {
		return nil, err
	}

	for _, offer := range offers {
		product, err := q.listings.GetActiveProduct(ctx, offer.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				continue
			}
			return nil, err
		}
		offer.ProductName = &product.Name
	}

	return offers, nil
}
