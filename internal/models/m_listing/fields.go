package m_listing

// Field name constants for the listings table.
const (
	TableName = "listings"

	ProductID   = "product_id"
	SellerID    = "seller_id"
	SellerName  = "seller_name"
	SellerEmail = "seller_email"
	Name        = "name"
	Description = "description"
	Category    = "category"
	Revenue     = "revenue"
	AskValue    = "ask_value"
	Profit      = "profit"
	Location    = "location"
	Image       = "image"
	Documents   = "documents"
	IsActive    = "is_active"
	CreatedAt   = "created_at"
)
