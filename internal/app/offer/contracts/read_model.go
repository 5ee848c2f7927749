package contracts

import (
	"context"
	"time"
)

// OfferProjection is the read-side view of one offer, as returned by the
// query operations. Counter fields are nil until the matching transition has
// happened. ProductName and SellerContact are enrichment fields filled in by
// the query layer, not by the read model.
type OfferProjection struct {
	OfferID                string    `json:"offer_id"`
	ProductID              string    `json:"product_id"`
	BuyerID                string    `json:"buyer_id"`
	BuyerName              string    `json:"buyer_name"`
	BuyerEmail             string    `json:"buyer_email"`
	SellerID               string    `json:"seller_id"`
	Amount                 float64   `json:"amount"`
	Message                string    `json:"message,omitempty"`
	Status                 string    `json:"status"`
	CounterAmount          *float64  `json:"counter_amount,omitempty"`
	CounterMessage         *string   `json:"counter_message,omitempty"`
	CounterResponse        *string   `json:"counter_response,omitempty"`
	CounterResponseMessage *string   `json:"counter_response_message,omitempty"`
	CreatedAt              time.Time `json:"created_at"`

	ProductName   *string  `json:"product_name,omitempty"`
	SellerContact *Contact `json:"seller_contact,omitempty"`
}

// OfferReadModel provides the query-side views over stored offers.
// All listings are ordered newest-first by creation time.
type OfferReadModel interface {
	ListBySeller(ctx context.Context, sellerID string) ([]*OfferProjection, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]*OfferProjection, error)
	ListByProduct(ctx context.Context, productID string) ([]*OfferProjection, error)
}
