package m_offer

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the offers table.
type Data struct {
	OfferID                  string             `spanner:"offer_id"`
	ProductID                string             `spanner:"product_id"`
	BuyerID                  string             `spanner:"buyer_id"`
	BuyerName                string             `spanner:"buyer_name"`
	BuyerEmail               string             `spanner:"buyer_email"`
	SellerID                 string             `spanner:"seller_id"`
	AmountNumerator          int64              `spanner:"amount_numerator"`
	AmountDenominator        int64              `spanner:"amount_denominator"`
	Message                  spanner.NullString `spanner:"message"`
	Status                   string             `spanner:"status"`
	CounterAmountNumerator   spanner.NullInt64  `spanner:"counter_amount_numerator"`
	CounterAmountDenominator spanner.NullInt64  `spanner:"counter_amount_denominator"`
	CounterMessage           spanner.NullString `spanner:"counter_message"`
	CounterResponse          spanner.NullString `spanner:"counter_response"`
	CounterResponseMessage   spanner.NullString `spanner:"counter_response_message"`
	History                  spanner.NullJSON   `spanner:"history"`
	Version                  int64              `spanner:"version"`
	CreatedAt                time.Time          `spanner:"created_at"`
	UpdatedAt                time.Time          `spanner:"updated_at"`
}
