package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avick-dev/bizmarket-service/internal/app/offer/domain"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/usecases/counter_offer"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/usecases/respond_counter"
	"github.com/avick-dev/bizmarket-service/tests/testutil"
)

func counterRequest(t *testing.T, offerID, actorID string, amount float64, message string) *counter_offer.Request {
	t.Helper()
	money, err := domain.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	return &counter_offer.Request{
		OfferID:        offerID,
		CounterAmount:  money,
		CounterMessage: message,
		ActorID:        actorID,
	}
}

// TestCounterThenAccept walks the full back-and-forth: buyer offers, seller
// counters, buyer accepts the counter, contacts are disclosed.
func TestCounterThenAccept(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	sellerID := testutil.CreateTestUser(t, suite.Client, "Clara Seller", "clara@example.com", "seller")
	buyerID := testutil.CreateTestUser(t, suite.Client, "Anna Buyer", "anna@example.com", "buyer")

	productID, err := suite.CreateListing.Execute(ctx(), NewListingBuilder(sellerID).Build())
	require.NoError(t, err)

	offerID, err := suite.CreateOffer.Execute(ctx(), NewOfferBuilder(productID, buyerID).WithAmount(180000).Build())
	require.NoError(t, err)

	err = suite.CounterOffer.Execute(ctx(), counterRequest(t, offerID, sellerID, 210000, "can meet at 210k"))
	require.NoError(t, err)

	data := testutil.GetOfferData(t, suite.Client, offerID)
	assert.Equal(t, "countered", data.Status)
	require.True(t, data.CounterAmountNumerator.Valid)

	result, err := suite.RespondCounter.Execute(ctx(), &respond_counter.Request{
		OfferID:      offerID,
		ResponseType: "accept",
		Message:      "deal",
		ActorID:      buyerID,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "anna@example.com", result.BuyerContact.Email)
	assert.Equal(t, "clara@example.com", result.SellerContact.Email)

	data = testutil.GetOfferData(t, suite.Client, offerID)
	assert.Equal(t, "counter_accepted", data.Status)
	require.True(t, data.CounterResponse.Valid)
	assert.Equal(t, string(domain.CounterResponseAccepted), data.CounterResponse.StringVal)

	testutil.AssertOutboxEvent(t, suite.Client, "offer.countered")
	testutil.AssertOutboxEvent(t, suite.Client, "offer.counter.accepted")
}

// TestCounterThenReject verifies a declined counter ends the negotiation
// without any contact disclosure.
func TestCounterThenReject(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	sellerID := testutil.CreateTestUser(t, suite.Client, "Clara Seller", "clara@example.com", "seller")
	buyerID := testutil.CreateTestUser(t, suite.Client, "Anna Buyer", "anna@example.com", "buyer")

	productID, err := suite.CreateListing.Execute(ctx(), NewListingBuilder(sellerID).Build())
	require.NoError(t, err)

	offerID, err := suite.CreateOffer.Execute(ctx(), NewOfferBuilder(productID, buyerID).Build())
	require.NoError(t, err)

	err = suite.CounterOffer.Execute(ctx(), counterRequest(t, offerID, sellerID, 230000, "firm"))
	require.NoError(t, err)

	result, err := suite.RespondCounter.Execute(ctx(), &respond_counter.Request{
		OfferID:      offerID,
		ResponseType: "reject",
		Message:      "too high for me",
		ActorID:      buyerID,
	})
	require.NoError(t, err)
	assert.Nil(t, result)

	data := testutil.GetOfferData(t, suite.Client, offerID)
	assert.Equal(t, "counter_rejected", data.Status)

	testutil.AssertOutboxEvent(t, suite.Client, "offer.counter.rejected")
}

// TestCounterFlowAuthorization pins the role split of the counter phase:
// countering is seller-only, responding is buyer-only.
func TestCounterFlowAuthorization(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	sellerID := testutil.CreateTestUser(t, suite.Client, "Clara Seller", "clara@example.com", "seller")
	buyerID := testutil.CreateTestUser(t, suite.Client, "Anna Buyer", "anna@example.com", "buyer")

	productID, err := suite.CreateListing.Execute(ctx(), NewListingBuilder(sellerID).Build())
	require.NoError(t, err)

	offerID, err := suite.CreateOffer.Execute(ctx(), NewOfferBuilder(productID, buyerID).Build())
	require.NoError(t, err)

	t.Run("buyer cannot counter", func(t *testing.T) {
		err := suite.CounterOffer.Execute(ctx(), counterRequest(t, offerID, buyerID, 190000, ""))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotSeller)
	})

	t.Run("cannot respond before a counter exists", func(t *testing.T) {
		_, err := suite.RespondCounter.Execute(ctx(), &respond_counter.Request{
			OfferID:      offerID,
			ResponseType: "accept",
			ActorID:      buyerID,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("seller cannot respond to own counter", func(t *testing.T) {
		err := suite.CounterOffer.Execute(ctx(), counterRequest(t, offerID, sellerID, 210000, ""))
		require.NoError(t, err)

		_, err = suite.RespondCounter.Execute(ctx(), &respond_counter.Request{
			OfferID:      offerID,
			ResponseType: "accept",
			ActorID:      sellerID,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotBuyer)
	})

	t.Run("unknown response type is rejected", func(t *testing.T) {
		_, err := suite.RespondCounter.Execute(ctx(), &respond_counter.Request{
			OfferID:      offerID,
			ResponseType: "maybe",
			ActorID:      buyerID,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownCounterResponse)
	})
}
