package product_offers

import (
	"context"

	"github.com/avick-dev/bizmarket-service/internal/app/offer/contracts"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/domain"
)

// Request identifies the product and the actor asking for its offers.
type Request struct {
	ProductID string
	ActorID   string
}

// Query handles the product offers query use case.
type Query struct {
	readModel contracts.OfferReadModel
	listings  contracts.ListingDirectory
}

// NewQuery creates a new product offers query.
func NewQuery(readModel contracts.OfferReadModel, listings contracts.ListingDirectory) *Query {
	return &Query{
		readModel: readModel,
		listings:  listings,
	}
}

// Execute lists all offers on a product, newest first. Only the listing's
// seller may view them.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.OfferProjection, error) {
	product, err := q.listings.GetActiveProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product.SellerID != req.ActorID {
		return nil, domain.ErrNotListingOwner
	}

	offers, err := q.readModel.ListByProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	for _, offer := range offers {
		offer.ProductName = &product.Name
	}

	return offers, nil
}
