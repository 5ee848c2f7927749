package remove_favorite

import (
	"context"
	"fmt"

	"github.com/avick-dev/bizmarket-service/internal/app/listing/contracts"
	"github.com/avick-dev/bizmarket-service/internal/pkg/committer"
)

// Request identifies the user and the bookmark being removed.
type Request struct {
	ProductID string
	ActorID   string
}

// Interactor handles the remove favorite use case.
type Interactor struct {
	favorites contracts.FavoriteRepository
	committer *committer.Committer
}

// NewInteractor creates a new remove favorite interactor.
func NewInteractor(favorites contracts.FavoriteRepository, c *committer.Committer) *Interactor {
	return &Interactor{
		favorites: favorites,
		committer: c,
	}
}

// Execute removes a bookmark. Removing an absent bookmark is a no-op.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	plan := committer.NewPlan()
	plan.Add(i.favorites.DeleteMut(req.ActorID, req.ProductID))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
