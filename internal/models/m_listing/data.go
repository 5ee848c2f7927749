package m_listing

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the listings table.
type Data struct {
	ProductID   string              `spanner:"product_id"`
	SellerID    string              `spanner:"seller_id"`
	SellerName  string              `spanner:"seller_name"`
	SellerEmail string              `spanner:"seller_email"`
	Name        string              `spanner:"name"`
	Description spanner.NullString  `spanner:"description"`
	Category    string              `spanner:"category"`
	Revenue     spanner.NullFloat64 `spanner:"revenue"`
	AskValue    spanner.NullFloat64 `spanner:"ask_value"`
	Profit      spanner.NullFloat64 `spanner:"profit"`
	Location    spanner.NullString  `spanner:"location"`
	Image       spanner.NullString  `spanner:"image"`
	Documents   []string            `spanner:"documents"`
	IsActive    bool                `spanner:"is_active"`
	CreatedAt   time.Time           `spanner:"created_at"`
}
