package list_favorites

import (
	"context"

	"github.com/avick-dev/bizmarket-service/internal/app/listing/contracts"
)

// Request identifies the user whose bookmarks are listed.
type Request struct {
	ActorID string
}

// Query handles the list favorites query use case.
type Query struct {
	listings  contracts.ListingRepository
	favorites contracts.FavoriteRepository
}

// NewQuery creates a new list favorites query.
func NewQuery(listings contracts.ListingRepository, favorites contracts.FavoriteRepository) *Query {
	return &Query{
		listings:  listings,
		favorites: favorites,
	}
}

// Execute lists the user's bookmarked listings. Bookmarks pointing at
// deactivated listings are filtered out rather than surfaced as errors.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ListingView, error) {
	ids, err := q.favorites.ListProductIDs(ctx, req.ActorID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*contracts.ListingView{}, nil
	}

	listings, err := q.listings.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]*contracts.ListingView, 0, len(listings))
	for _, listing := range listings {
		if !listing.IsActive() {
			continue
		}
		views = append(views, contracts.ViewOf(listing))
	}
	return views, nil
}
