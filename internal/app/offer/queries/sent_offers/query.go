package sent_offers

import (
	"context"
	"errors"

	"github.com/avick-dev/bizmarket-service/internal/app/offer/contracts"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/domain"
)

// Request identifies the buyer whose sent offers are listed.
type Request struct {
	BuyerID string
}

// Query handles the sent offers query use case.
type Query struct {
	readModel contracts.OfferReadModel
	listings  contracts.ListingDirectory
	users     contracts.UserDirectory
}

// NewQuery creates a new sent offers query.
func NewQuery(readModel contracts.OfferReadModel, listings contracts.ListingDirectory, users contracts.UserDirectory) *Query {
	return &Query{
		readModel: readModel,
		listings:  listings,
		users:     users,
	}
}

// Execute lists all offers sent by a buyer, newest first. Projections are
// enriched with the current product name when the listing is still active.
// Offers whose status discloses contact carry the seller's current contact
// details, looked up fresh at query time.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.OfferProjection, error) {
	offers, err := q.readModel.ListByBuyer(ctx, req.BuyerID)
	if err != nil {
		return nil, err
	}

	for _, offer := range offers {
		product, err := q.listings.GetActiveProduct(ctx, offer.ProductID)
		if err == nil {
			offer.ProductName = &product.Name
		} else if !errors.Is(err, domain.ErrProductNotFound) {
			return nil, err
		}

		if offer.Status != string(domain.StatusAccepted) && offer.Status != string(domain.StatusCounterAccepted) {
			continue
		}
		seller, err := q.users.GetUser(ctx, offer.SellerID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		contact := contracts.ContactOf(seller)
		offer.SellerContact = &contact
	}

	return offers, nil
}
