package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avick-dev/bizmarket-service/internal/pkg/clock"
)

func TestManager_IssueAndValidate(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	mgr := NewManager("test-secret", time.Hour, "bizmarket-test", clk)

	tok, err := mgr.Issue("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := mgr.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "bizmarket-test", claims.Issuer)
}

func TestManager_Validate(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	mgr := NewManager("test-secret", time.Hour, "bizmarket-test", clk)

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := mgr.Validate("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := NewManager("other-secret", time.Hour, "bizmarket-test", clk)
		tok, err := other.Issue("user-1")
		require.NoError(t, err)

		_, err = mgr.Validate(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		tok, err := mgr.Issue("user-1")
		require.NoError(t, err)

		clk.Advance(2 * time.Hour)
		defer clk.Advance(-2 * time.Hour)

		_, err = mgr.Validate(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
