package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/avick-dev/bizmarket-service/internal/app/user/domain"
)

// UserRepository defines the persistence contract for user accounts.
// Write methods return mutations for the caller's commit plan.
type UserRepository interface {
	InsertMut(user *domain.User) (*spanner.Mutation, error)
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}
