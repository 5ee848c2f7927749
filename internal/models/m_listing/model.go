package m_listing

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the listings table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a listing.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			ProductID,
			SellerID,
			SellerName,
			SellerEmail,
			Name,
			Description,
			Category,
			Revenue,
			AskValue,
			Profit,
			Location,
			Image,
			Documents,
			IsActive,
			CreatedAt,
		},
		[]interface{}{
			data.ProductID,
			data.SellerID,
			data.SellerName,
			data.SellerEmail,
			data.Name,
			data.Description,
			data.Category,
			data.Revenue,
			data.AskValue,
			data.Profit,
			data.Location,
			data.Image,
			data.Documents,
			data.IsActive,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific listing fields.
func (m *Model) UpdateMut(productID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, ProductID)
	values = append(values, productID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}
