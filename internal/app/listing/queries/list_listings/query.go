package list_listings

import (
	"context"

	"github.com/avick-dev/bizmarket-service/internal/app/listing/contracts"
)

// Request carries the optional catalog filters.
type Request struct {
	Category string
	Location string
	Search   string
}

// Query handles the listing catalog query use case.
type Query struct {
	listings contracts.ListingRepository
}

// NewQuery creates a new list listings query.
func NewQuery(listings contracts.ListingRepository) *Query {
	return &Query{listings: listings}
}

// Execute lists active listings matching the filters, newest first.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ListingView, error) {
	listings, err := q.listings.List(ctx, contracts.ListFilter{
		Category: req.Category,
		Location: req.Location,
		Search:   req.Search,
	})
	if err != nil {
		return nil, err
	}

	views := make([]*contracts.ListingView, 0, len(listings))
	for _, listing := range listings {
		views = append(views, contracts.ViewOf(listing))
	}
	return views, nil
}
