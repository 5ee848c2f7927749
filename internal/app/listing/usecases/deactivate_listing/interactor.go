package deactivate_listing

import (
	"context"
	"fmt"

	"github.com/avick-dev/bizmarket-service/internal/app/listing/contracts"
	"github.com/avick-dev/bizmarket-service/internal/pkg/committer"
)

// Request identifies the listing and the actor taking it off the market.
type Request struct {
	ProductID string
	ActorID   string
}

// Interactor handles the deactivate listing use case.
type Interactor struct {
	listings  contracts.ListingRepository
	committer *committer.Committer
}

// NewInteractor creates a new deactivate listing interactor.
func NewInteractor(listings contracts.ListingRepository, c *committer.Committer) *Interactor {
	return &Interactor{
		listings:  listings,
		committer: c,
	}
}

// Execute takes a listing off the market. Only the owner may do this.
// Offers already opened on the listing keep their own lifecycle.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	listing, err := i.listings.GetByID(ctx, req.ProductID)
	if err != nil {
		return err
	}

	if err := listing.Deactivate(req.ActorID); err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(i.listings.DeactivateMut(listing))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
