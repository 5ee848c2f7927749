package m_offer

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the offers table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an offer.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			OfferID,
			ProductID,
			BuyerID,
			BuyerName,
			BuyerEmail,
			SellerID,
			AmountNumerator,
			AmountDenominator,
			Message,
			Status,
			CounterAmountNumerator,
			CounterAmountDenominator,
			CounterMessage,
			CounterResponse,
			CounterResponseMessage,
			History,
			Version,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.OfferID,
			data.ProductID,
			data.BuyerID,
			data.BuyerName,
			data.BuyerEmail,
			data.SellerID,
			data.AmountNumerator,
			data.AmountDenominator,
			data.Message,
			data.Status,
			data.CounterAmountNumerator,
			data.CounterAmountDenominator,
			data.CounterMessage,
			data.CounterResponse,
			data.CounterResponseMessage,
			data.History,
			data.Version,
			data.CreatedAt,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific offer fields.
// The updates map should contain field names as keys and new values.
func (m *Model) UpdateMut(offerID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	// Always update the UpdatedAt timestamp
	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, OfferID)
	values = append(values, offerID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}
