package m_user

// Field name constants for the users table.
const (
	TableName = "users"

	UserID       = "user_id"
	Name         = "name"
	Email        = "email"
	PasswordHash = "password_hash"
	Phone        = "phone"
	Role         = "role"
	Location     = "location"
	IsVerified   = "is_verified"
	CreatedAt    = "created_at"
)
