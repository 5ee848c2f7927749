package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	offercontracts "github.com/avick-dev/bizmarket-service/internal/app/offer/contracts"
	offerdomain "github.com/avick-dev/bizmarket-service/internal/app/offer/domain"
	"github.com/avick-dev/bizmarket-service/internal/app/user/domain"
	"github.com/avick-dev/bizmarket-service/internal/models/m_user"
	"github.com/avick-dev/bizmarket-service/internal/pkg/query"
)

var userColumns = []string{
	m_user.UserID,
	m_user.Name,
	m_user.Email,
	m_user.PasswordHash,
	m_user.Phone,
	m_user.Role,
	m_user.Location,
	m_user.IsVerified,
	m_user.CreatedAt,
}

// UserRepo implements UserRepository for Spanner. It also serves as the
// identity directory for the offer context.
type UserRepo struct {
	client *spanner.Client
	model  *m_user.Model
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(client *spanner.Client) *UserRepo {
	return &UserRepo{
		client: client,
		model:  m_user.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new user.
func (r *UserRepo) InsertMut(user *domain.User) (*spanner.Mutation, error) {
	return r.model.InsertMut(&m_user.Data{
		UserID:       user.ID(),
		Name:         user.Name(),
		Email:        user.Email(),
		PasswordHash: user.PasswordHash(),
		Phone:        user.Phone(),
		Role:         string(user.Role()),
		Location:     user.Location(),
		IsVerified:   user.IsVerified(),
	}), nil
}

// GetByID retrieves a user by primary key.
func (r *UserRepo) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	row, err := r.client.Single().ReadRow(ctx, m_user.TableName, spanner.Key{userID}, userColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	return rowToUser(row)
}

// GetByEmail retrieves a user by email address.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	stmt := query.From(m_user.TableName).
		Select(userColumns...).
		Where(query.Eq(m_user.Email, email)).
		Limit(1).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	return rowToUser(row)
}

// ExistsByEmail reports whether a user with the given email exists.
func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	stmt := query.From(m_user.TableName).
		Where(query.Eq(m_user.Email, email)).
		Count().
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	var count int64
	if err := row.Column(0, &count); err != nil {
		return false, fmt.Errorf("failed to read count: %w", err)
	}
	return count > 0, nil
}

// GetUser implements the offer context's UserDirectory.
func (r *UserRepo) GetUser(ctx context.Context, userID string) (*offercontracts.UserRecord, error) {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, offerdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &offercontracts.UserRecord{
		UserID: user.ID(),
		Name:   user.Name(),
		Email:  user.Email(),
		Phone:  user.Phone(),
		Role:   offercontracts.Role(user.Role()),
	}, nil
}

func rowToUser(row *spanner.Row) (*domain.User, error) {
	var data m_user.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}
	return domain.ReconstructUser(
		data.UserID,
		data.Name,
		data.Email,
		data.PasswordHash,
		data.Phone,
		domain.Role(data.Role),
		data.Location,
		data.IsVerified,
		data.CreatedAt,
	), nil
}
