//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	offerdomain "github.com/avick-dev/bizmarket-service/internal/app/offer/domain"
	"github.com/avick-dev/bizmarket-service/internal/app/user/domain"
	"github.com/avick-dev/bizmarket-service/internal/app/user/repo"
	"github.com/avick-dev/bizmarket-service/tests/testutil"
)

func TestUserRepository_InsertAndGetByID(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewUserRepo(client)

	user, err := domain.NewUser("user-1", "Clara Seller", "Clara@Example.com", "hashed-secret", "+49 30 7654321", domain.RoleSeller, "Hamburg", time.Now())
	require.NoError(t, err)

	mutation, err := repository.InsertMut(user)
	require.NoError(t, err)

	_, err = client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err)

	retrieved, err := repository.GetByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Clara Seller", retrieved.Name())
	assert.Equal(t, "clara@example.com", retrieved.Email())
	assert.Equal(t, domain.RoleSeller, retrieved.Role())
	assert.False(t, retrieved.IsVerified())
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	repository := repo.NewUserRepo(client)

	_, err := repository.GetByID(context.Background(), "no-such-user")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewUserRepo(client)

	userID := testutil.CreateTestUser(t, client, "Clara Seller", "clara@example.com", "seller")

	retrieved, err := repository.GetByEmail(ctx, "clara@example.com")
	require.NoError(t, err)
	assert.Equal(t, userID, retrieved.ID())

	_, err = repository.GetByEmail(ctx, "nobody@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewUserRepo(client)

	testutil.CreateTestUser(t, client, "Clara Seller", "clara@example.com", "seller")

	exists, err := repository.ExistsByEmail(ctx, "clara@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repository.ExistsByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_GetUserDirectoryLookup(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewUserRepo(client)

	userID := testutil.CreateTestUser(t, client, "Clara Seller", "clara@example.com", "seller")

	record, err := repository.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Clara Seller", record.Name)
	assert.Equal(t, "clara@example.com", record.Email)
	assert.Equal(t, "+49 30 1234567", record.Phone)
	assert.True(t, record.Role.CanSell())

	_, err = repository.GetUser(ctx, "no-such-user")
	require.Error(t, err)
	assert.ErrorIs(t, err, offerdomain.ErrUserNotFound)
}
