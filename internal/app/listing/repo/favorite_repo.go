package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/avick-dev/bizmarket-service/internal/app/listing/domain"
	"github.com/avick-dev/bizmarket-service/internal/models/m_favorite"
	"github.com/avick-dev/bizmarket-service/internal/pkg/query"
)

// FavoriteRepo implements FavoriteRepository for Spanner.
type FavoriteRepo struct {
	client *spanner.Client
	model  *m_favorite.Model
}

// NewFavoriteRepo creates a new FavoriteRepo.
func NewFavoriteRepo(client *spanner.Client) *FavoriteRepo {
	return &FavoriteRepo{
		client: client,
		model:  m_favorite.NewModel(),
	}
}

// InsertMut creates a mutation for bookmarking a product.
// Bookmarking twice is a no-op.
func (r *FavoriteRepo) InsertMut(userID, productID string) *spanner.Mutation {
	return r.model.InsertMut(userID, productID)
}

// DeleteMut creates a mutation for removing a bookmark.
func (r *FavoriteRepo) DeleteMut(userID, productID string) *spanner.Mutation {
	return r.model.DeleteMut(userID, productID)
}

// ListProductIDs retrieves the product IDs a user has bookmarked,
// newest bookmark first.
func (r *FavoriteRepo) ListProductIDs(ctx context.Context, userID string) ([]string, error) {
	stmt := query.From(m_favorite.TableName).
		Select(m_favorite.ProductID).
		Where(query.Eq(m_favorite.UserID, userID)).
		OrderBy(m_favorite.CreatedAt, query.Desc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var ids []string
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
		}
		var id string
		if err := row.Column(0, &id); err != nil {
			return nil, fmt.Errorf("failed to read favorite: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
