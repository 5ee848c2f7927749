package m_favorite

// Field name constants for the favorites table.
const (
	TableName = "favorites"

	UserID    = "user_id"
	ProductID = "product_id"
	CreatedAt = "created_at"
)
