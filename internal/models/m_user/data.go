package m_user

import "time"

// Data represents the database model for the users table.
type Data struct {
	UserID       string    `spanner:"user_id"`
	Name         string    `spanner:"name"`
	Email        string    `spanner:"email"`
	PasswordHash string    `spanner:"password_hash"`
	Phone        string    `spanner:"phone"`
	Role         string    `spanner:"role"`
	Location     string    `spanner:"location"`
	IsVerified   bool      `spanner:"is_verified"`
	CreatedAt    time.Time `spanner:"created_at"`
}
