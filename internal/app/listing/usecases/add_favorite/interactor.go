package add_favorite

import (
	"context"
	"fmt"

	"github.com/avick-dev/bizmarket-service/internal/app/listing/contracts"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/domain"
	"github.com/avick-dev/bizmarket-service/internal/pkg/committer"
)

// Request identifies the user and the product being bookmarked.
type Request struct {
	ProductID string
	ActorID   string
}

// Interactor handles the add favorite use case.
type Interactor struct {
	listings  contracts.ListingRepository
	favorites contracts.FavoriteRepository
	committer *committer.Committer
}

// NewInteractor creates a new add favorite interactor.
func NewInteractor(listings contracts.ListingRepository, favorites contracts.FavoriteRepository, c *committer.Committer) *Interactor {
	return &Interactor{
		listings:  listings,
		favorites: favorites,
		committer: c,
	}
}

// Execute bookmarks an active listing. Bookmarking twice is a no-op.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	listing, err := i.listings.GetByID(ctx, req.ProductID)
	if err != nil {
		return err
	}
	if !listing.IsActive() {
		return domain.ErrListingNotFound
	}

	plan := committer.NewPlan()
	plan.Add(i.favorites.InsertMut(req.ActorID, req.ProductID))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
