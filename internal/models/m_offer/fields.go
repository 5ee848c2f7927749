package m_offer

// Field name constants for the offers table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "offers"

	OfferID                  = "offer_id"
	ProductID                = "product_id"
	BuyerID                  = "buyer_id"
	BuyerName                = "buyer_name"
	BuyerEmail               = "buyer_email"
	SellerID                 = "seller_id"
	AmountNumerator          = "amount_numerator"
	AmountDenominator        = "amount_denominator"
	Message                  = "message"
	Status                   = "status"
	CounterAmountNumerator   = "counter_amount_numerator"
	CounterAmountDenominator = "counter_amount_denominator"
	CounterMessage           = "counter_message"
	CounterResponse          = "counter_response"
	CounterResponseMessage   = "counter_response_message"
	History                  = "history"
	Version                  = "version"
	CreatedAt                = "created_at"
	UpdatedAt                = "updated_at"
)
