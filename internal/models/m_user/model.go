package m_user

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the users table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a user.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			UserID,
			Name,
			Email,
			PasswordHash,
			Phone,
			Role,
			Location,
			IsVerified,
			CreatedAt,
		},
		[]interface{}{
			data.UserID,
			data.Name,
			data.Email,
			data.PasswordHash,
			data.Phone,
			data.Role,
			data.Location,
			data.IsVerified,
			spanner.CommitTimestamp,
		},
	)
}
