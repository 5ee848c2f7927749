package m_favorite

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the favorites table.
// Favorites are keyed by (user_id, product_id); no separate Data struct is
// needed for a two-column bookmark.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for bookmarking a product.
func (m *Model) InsertMut(userID, productID string) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{UserID, ProductID, CreatedAt},
		[]interface{}{userID, productID, spanner.CommitTimestamp},
	)
}

// DeleteMut creates a Spanner mutation for removing a bookmark.
func (m *Model) DeleteMut(userID, productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{userID, productID})
}
