package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Run("known roles", func(t *testing.T) {
		for _, s := range []string{"buyer", "seller", "both", " Seller ", "BOTH"} {
			role, err := ParseRole(s)
			require.NoError(t, err, s)
			assert.NotEmpty(t, role)
		}
	})

	t.Run("unknown role returns error", func(t *testing.T) {
		_, err := ParseRole("admin")
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestRolePermissions(t *testing.T) {
	assert.True(t, RoleBuyer.CanBuy())
	assert.False(t, RoleBuyer.CanSell())
	assert.False(t, RoleSeller.CanBuy())
	assert.True(t, RoleSeller.CanSell())
	assert.True(t, RoleBoth.CanBuy())
	assert.True(t, RoleBoth.CanSell())
}

func TestNewUser(t *testing.T) {
	now := time.Now()

	t.Run("valid registration", func(t *testing.T) {
		user, err := NewUser("user-1", " Alice ", " Alice@Example.com ", "hash", "12345", RoleBuyer, "Berlin", now)
		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name())
		assert.Equal(t, "alice@example.com", user.Email())
		assert.False(t, user.IsVerified())
	})

	t.Run("empty name returns error", func(t *testing.T) {
		_, err := NewUser("user-1", "  ", "alice@example.com", "hash", "", RoleBuyer, "", now)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("invalid email returns error", func(t *testing.T) {
		_, err := NewUser("user-1", "Alice", "not-an-email", "hash", "", RoleBuyer, "", now)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("missing password hash returns error", func(t *testing.T) {
		_, err := NewUser("user-1", "Alice", "alice@example.com", "", "", RoleBuyer, "", now)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}
