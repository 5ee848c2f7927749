package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBuyer() BuyerSnapshot {
	return BuyerSnapshot{ID: "buyer-1", Name: "Alice", Email: "alice@example.com"}
}

func newTestOffer(t *testing.T) *Offer {
	t.Helper()
	amount, err := NewMoney(50000, 1)
	require.NoError(t, err)
	offer, err := NewOffer("offer-1", "product-1", testBuyer(), "seller-1", amount, "interested", time.Now())
	require.NoError(t, err)
	return offer
}

func TestNewOffer(t *testing.T) {
	amount, _ := NewMoney(50000, 1)
	now := time.Now()

	t.Run("valid offer creation", func(t *testing.T) {
		offer, err := NewOffer("offer-1", "product-1", testBuyer(), "seller-1", amount, "interested", now)
		require.NoError(t, err)
		assert.Equal(t, "offer-1", offer.ID())
		assert.Equal(t, StatusPending, offer.Status())
		assert.Equal(t, int64(1), offer.Version())
		assert.Nil(t, offer.Counter())
		assert.Nil(t, offer.Decision())
		assert.Len(t, offer.History(), 1)
		assert.Len(t, offer.DomainEvents(), 1)
		assert.False(t, offer.DisclosesContact())
	})

	t.Run("nil amount returns error", func(t *testing.T) {
		_, err := NewOffer("offer-1", "product-1", testBuyer(), "seller-1", nil, "", now)
		assert.ErrorIs(t, err, ErrNegativeAmount)
	})

	t.Run("negative amount returns error", func(t *testing.T) {
		negative, _ := NewMoney(-1, 1)
		_, err := NewOffer("offer-1", "product-1", testBuyer(), "seller-1", negative, "", now)
		assert.ErrorIs(t, err, ErrNegativeAmount)
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		zero, _ := NewMoney(0, 1)
		offer, err := NewOffer("offer-1", "product-1", testBuyer(), "seller-1", zero, "", now)
		require.NoError(t, err)
		assert.True(t, offer.Amount().IsZero())
	})

	t.Run("buyer offering on own product returns error", func(t *testing.T) {
		_, err := NewOffer("offer-1", "product-1", testBuyer(), "buyer-1", amount, "", now)
		assert.ErrorIs(t, err, ErrSelfOffer)
	})
}

func TestOffer_Accept(t *testing.T) {
	now := time.Now()

	t.Run("seller accepts pending offer", func(t *testing.T) {
		offer := newTestOffer(t)
		err := offer.Accept("seller-1", now)
		require.NoError(t, err)
		assert.Equal(t, StatusAccepted, offer.Status())
		assert.True(t, offer.DisclosesContact())
		assert.True(t, offer.Changes().Dirty(FieldStatus))
		assert.Len(t, offer.History(), 2)
	})

	t.Run("buyer cannot accept", func(t *testing.T) {
		offer := newTestOffer(t)
		err := offer.Accept("buyer-1", now)
		assert.ErrorIs(t, err, ErrNotSeller)
		assert.Equal(t, StatusPending, offer.Status())
		assert.Len(t, offer.History(), 1)
	})

	t.Run("stranger cannot accept", func(t *testing.T) {
		offer := newTestOffer(t)
		err := offer.Accept("someone-else", now)
		assert.ErrorIs(t, err, ErrNotSeller)
	})

	t.Run("accept is not repeatable", func(t *testing.T) {
		offer := newTestOffer(t)
		require.NoError(t, offer.Accept("seller-1", now))
		err := offer.Accept("seller-1", now)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestOffer_Reject(t *testing.T) {
	now := time.Now()

	t.Run("seller rejects pending offer", func(t *testing.T) {
		offer := newTestOffer(t)
		err := offer.Reject("seller-1", now)
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, offer.Status())
		assert.False(t, offer.DisclosesContact())
	})

	t.Run("buyer cannot reject", func(t *testing.T) {
		offer := newTestOffer(t)
		err := offer.Reject("buyer-1", now)
		assert.ErrorIs(t, err, ErrNotSeller)
	})

	t.Run("rejected offer cannot be accepted", func(t *testing.T) {
		offer := newTestOffer(t)
		require.NoError(t, offer.Reject("seller-1", now))
		err := offer.Accept("seller-1", now)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestOffer_MakeCounter(t *testing.T) {
	now := time.Now()
	counterAmount, _ := NewMoney(60000, 1)

	t.Run("seller counters pending offer", func(t *testing.T) {
		offer := newTestOffer(t)
		err := offer.MakeCounter("seller-1", counterAmount, "how about this", now)
		require.NoError(t, err)
		assert.Equal(t, StatusCountered, offer.Status())
		require.NotNil(t, offer.Counter())
		assert.True(t, offer.Counter().Amount().Equals(counterAmount))
		assert.Equal(t, "how about this", offer.Counter().Message())
		assert.Nil(t, offer.Decision())
		assert.True(t, offer.Changes().Dirty(FieldCounter))
	})

	t.Run("buyer cannot counter", func(t *testing.T) {
		offer := newTestOffer(t)
		err := offer.MakeCounter("buyer-1", counterAmount, "", now)
		assert.ErrorIs(t, err, ErrNotSeller)
		assert.Nil(t, offer.Counter())
	})

	t.Run("negative counter amount returns error", func(t *testing.T) {
		offer := newTestOffer(t)
		negative, _ := NewMoney(-5, 1)
		err := offer.MakeCounter("seller-1", negative, "", now)
		assert.ErrorIs(t, err, ErrNegativeAmount)
		assert.Equal(t, StatusPending, offer.Status())
	})

	t.Run("countered offer cannot be countered again", func(t *testing.T) {
		offer := newTestOffer(t)
		require.NoError(t, offer.MakeCounter("seller-1", counterAmount, "", now))
		err := offer.MakeCounter("seller-1", counterAmount, "", now)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestOffer_RespondToCounter(t *testing.T) {
	now := time.Now()
	counterAmount, _ := NewMoney(60000, 1)

	countered := func(t *testing.T) *Offer {
		offer := newTestOffer(t)
		require.NoError(t, offer.MakeCounter("seller-1", counterAmount, "", now))
		return offer
	}

	t.Run("buyer accepts counter", func(t *testing.T) {
		offer := countered(t)
		err := offer.RespondToCounter("buyer-1", ResponseTypeAccept, "deal", now)
		require.NoError(t, err)
		assert.Equal(t, StatusCounterAccepted, offer.Status())
		require.NotNil(t, offer.Decision())
		assert.Equal(t, CounterResponseAccepted, offer.Decision().Response())
		assert.Equal(t, "deal", offer.Decision().Message())
		assert.True(t, offer.DisclosesContact())
	})

	t.Run("buyer rejects counter", func(t *testing.T) {
		offer := countered(t)
		err := offer.RespondToCounter("buyer-1", ResponseTypeReject, "too much", now)
		require.NoError(t, err)
		assert.Equal(t, StatusCounterRejected, offer.Status())
		assert.Equal(t, CounterResponseRejected, offer.Decision().Response())
		assert.False(t, offer.DisclosesContact())
	})

	t.Run("seller cannot respond to own counter", func(t *testing.T) {
		offer := countered(t)
		err := offer.RespondToCounter("seller-1", ResponseTypeAccept, "", now)
		assert.ErrorIs(t, err, ErrNotBuyer)
		assert.Equal(t, StatusCountered, offer.Status())
	})

	t.Run("unknown response type returns error", func(t *testing.T) {
		offer := countered(t)
		err := offer.RespondToCounter("buyer-1", "maybe", "", now)
		assert.ErrorIs(t, err, ErrUnknownCounterResponse)
		assert.Equal(t, StatusCountered, offer.Status())
		assert.Nil(t, offer.Decision())
	})

	t.Run("cannot respond before counter exists", func(t *testing.T) {
		offer := newTestOffer(t)
		err := offer.RespondToCounter("buyer-1", ResponseTypeAccept, "", now)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("response is not repeatable", func(t *testing.T) {
		offer := countered(t)
		require.NoError(t, offer.RespondToCounter("buyer-1", ResponseTypeReject, "", now))
		err := offer.RespondToCounter("buyer-1", ResponseTypeAccept, "", now)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestOffer_TransitionMatrix(t *testing.T) {
	now := time.Now()
	counterAmount, _ := NewMoney(60000, 1)

	// From every terminal status, every transition fails with ErrInvalidTransition.
	terminalStates := map[string]func(t *testing.T) *Offer{
		"accepted": func(t *testing.T) *Offer {
			offer := newTestOffer(t)
			require.NoError(t, offer.Accept("seller-1", now))
			return offer
		},
		"rejected": func(t *testing.T) *Offer {
			offer := newTestOffer(t)
			require.NoError(t, offer.Reject("seller-1", now))
			return offer
		},
		"counter_accepted": func(t *testing.T) *Offer {
			offer := newTestOffer(t)
			require.NoError(t, offer.MakeCounter("seller-1", counterAmount, "", now))
			require.NoError(t, offer.RespondToCounter("buyer-1", ResponseTypeAccept, "", now))
			return offer
		},
		"counter_rejected": func(t *testing.T) *Offer {
			offer := newTestOffer(t)
			require.NoError(t, offer.MakeCounter("seller-1", counterAmount, "", now))
			require.NoError(t, offer.RespondToCounter("buyer-1", ResponseTypeReject, "", now))
			return offer
		},
	}

	for name, build := range terminalStates {
		t.Run(name, func(t *testing.T) {
			offer := build(t)
			assert.True(t, offer.Status().IsTerminal())
			historyLen := len(offer.History())

			assert.ErrorIs(t, offer.Accept("seller-1", now), ErrInvalidTransition)
			assert.ErrorIs(t, offer.Reject("seller-1", now), ErrInvalidTransition)
			assert.ErrorIs(t, offer.MakeCounter("seller-1", counterAmount, "", now), ErrInvalidTransition)
			assert.ErrorIs(t, offer.RespondToCounter("buyer-1", ResponseTypeAccept, "", now), ErrInvalidTransition)

			// Failed transitions leave no trace in the history.
			assert.Len(t, offer.History(), historyLen)
		})
	}
}

func TestOffer_HistoryGrowth(t *testing.T) {
	now := time.Now()
	counterAmount, _ := NewMoney(60000, 1)

	offer := newTestOffer(t)
	require.NoError(t, offer.MakeCounter("seller-1", counterAmount, "counter", now))
	require.NoError(t, offer.RespondToCounter("buyer-1", ResponseTypeAccept, "deal", now))

	history := offer.History()
	require.Len(t, history, 3)
	assert.Equal(t, KindCreated, history[0].EntryKind())
	assert.Equal(t, KindCountered, history[1].EntryKind())
	assert.Equal(t, KindCounterAccepted, history[2].EntryKind())
	assert.Equal(t, "buyer-1", history[0].ActorID())
	assert.Equal(t, "seller-1", history[1].ActorID())
	assert.Equal(t, "buyer-1", history[2].ActorID())
}

func TestOffer_TransitionErrorCarriesStatus(t *testing.T) {
	now := time.Now()
	offer := newTestOffer(t)
	require.NoError(t, offer.Accept("seller-1", now))

	err := offer.Reject("seller-1", now)
	require.Error(t, err)

	var transitionErr *TransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, ActionReject, transitionErr.Action)
	assert.Equal(t, StatusAccepted, transitionErr.Status)
}
