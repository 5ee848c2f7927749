package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avick-dev/bizmarket-service/internal/app/offer/domain"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/queries/product_offers"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/queries/received_offers"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/queries/sent_offers"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/usecases/accept_offer"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/usecases/reject_offer"
	"github.com/avick-dev/bizmarket-service/tests/testutil"
)

// TestDirectAcceptance walks the happy path: a buyer offers, the seller
// accepts, and both parties' current contact details are disclosed.
func TestDirectAcceptance(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	sellerID := testutil.CreateTestUser(t, suite.Client, "Clara Seller", "clara@example.com", "seller")
	buyerID := testutil.CreateTestUser(t, suite.Client, "Anna Buyer", "anna@example.com", "buyer")

	productID, err := suite.CreateListing.Execute(ctx(), NewListingBuilder(sellerID).Build())
	require.NoError(t, err)

	offerID, err := suite.CreateOffer.Execute(ctx(), NewOfferBuilder(productID, buyerID).WithAmount(180000).Build())
	require.NoError(t, err)

	result, err := suite.AcceptOffer.Execute(ctx(), &accept_offer.Request{OfferID: offerID, ActorID: sellerID})
	require.NoError(t, err)

	// Contact disclosure comes from a fresh directory lookup.
	assert.Equal(t, "Anna Buyer", result.BuyerContact.Name)
	assert.Equal(t, "anna@example.com", result.BuyerContact.Email)
	assert.NotEmpty(t, result.BuyerContact.Phone)
	assert.Equal(t, "Clara Seller", result.SellerContact.Name)
	assert.Equal(t, "clara@example.com", result.SellerContact.Email)

	// The stored offer is terminal.
	data := testutil.GetOfferData(t, suite.Client, offerID)
	assert.Equal(t, "accepted", data.Status)
	assert.Equal(t, int64(2), data.Version)

	// Both transitions landed in the outbox.
	testutil.AssertOutboxEvent(t, suite.Client, "offer.created")
	testutil.AssertOutboxEvent(t, suite.Client, "offer.accepted")
}

// TestRejection verifies a rejected offer stays terminal and discloses nothing.
func TestRejection(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	sellerID := testutil.CreateTestUser(t, suite.Client, "Clara Seller", "clara@example.com", "seller")
	buyerID := testutil.CreateTestUser(t, suite.Client, "Anna Buyer", "anna@example.com", "buyer")

	productID, err := suite.CreateListing.Execute(ctx(), NewListingBuilder(sellerID).Build())
	require.NoError(t, err)

	offerID, err := suite.CreateOffer.Execute(ctx(), NewOfferBuilder(productID, buyerID).Build())
	require.NoError(t, err)

	err = suite.RejectOffer.Execute(ctx(), &reject_offer.Request{OfferID: offerID, ActorID: sellerID})
	require.NoError(t, err)

	data := testutil.GetOfferData(t, suite.Client, offerID)
	assert.Equal(t, "rejected", data.Status)

	// Rejected offers accept no further transitions.
	_, err = suite.AcceptOffer.Execute(ctx(), &accept_offer.Request{OfferID: offerID, ActorID: sellerID})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	testutil.AssertOutboxEvent(t, suite.Client, "offer.rejected")
}

// TestOfferAuthorization covers the actor checks on both sides of the table.
func TestOfferAuthorization(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	sellerID := testutil.CreateTestUser(t, suite.Client, "Clara Seller", "clara@example.com", "seller")
	buyerID := testutil.CreateTestUser(t, suite.Client, "Anna Buyer", "anna@example.com", "buyer")
	strangerID := testutil.CreateTestUser(t, suite.Client, "Third Party", "third@example.com", "both")

	productID, err := suite.CreateListing.Execute(ctx(), NewListingBuilder(sellerID).Build())
	require.NoError(t, err)

	t.Run("seller cannot offer on own listing", func(t *testing.T) {
		sellerAsBuyerID := testutil.CreateTestUser(t, suite.Client, "Both Roles", "bothroles@example.com", "both")
		ownProductID, err := suite.CreateListing.Execute(ctx(), NewListingBuilder(sellerAsBuyerID).Build())
		require.NoError(t, err)

		_, err = suite.CreateOffer.Execute(ctx(), NewOfferBuilder(ownProductID, sellerAsBuyerID).Build())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrSelfOffer)
	})

	t.Run("seller role cannot make offers", func(t *testing.T) {
		_, err := suite.CreateOffer.Execute(ctx(), NewOfferBuilder(productID, sellerID).Build())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBuyerRoleRequired)
	})

	t.Run("only the seller may accept", func(t *testing.T) {
		offerID, err := suite.CreateOffer.Execute(ctx(), NewOfferBuilder(productID, buyerID).Build())
		require.NoError(t, err)

		_, err = suite.AcceptOffer.Execute(ctx(), &accept_offer.Request{OfferID: offerID, ActorID: strangerID})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotSeller)

		// The offer stays pending for the real seller.
		data := testutil.GetOfferData(t, suite.Client, offerID)
		assert.Equal(t, "pending", data.Status)
	})
}

// TestOfferQueries covers the three projection endpoints.
func TestOfferQueries(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	sellerID := testutil.CreateTestUser(t, suite.Client, "Clara Seller", "clara@example.com", "seller")
	buyerID := testutil.CreateTestUser(t, suite.Client, "Anna Buyer", "anna@example.com", "buyer")

	productID, err := suite.CreateListing.Execute(ctx(), NewListingBuilder(sellerID).WithName("Corner Bakery").Build())
	require.NoError(t, err)

	offerID, err := suite.CreateOffer.Execute(ctx(), NewOfferBuilder(productID, buyerID).WithAmount(180000).Build())
	require.NoError(t, err)

	t.Run("received offers enriched with product name", func(t *testing.T) {
		offers, err := suite.ReceivedOffers.Execute(ctx(), &received_offers.Request{SellerID: sellerID})
		require.NoError(t, err)
		require.Len(t, offers, 1)
		assert.Equal(t, offerID, offers[0].OfferID)
		assert.Equal(t, 180000.0, offers[0].Amount)
		require.NotNil(t, offers[0].ProductName)
		assert.Equal(t, "Corner Bakery", *offers[0].ProductName)
		assert.Nil(t, offers[0].SellerContact)
	})

	t.Run("sent offers hide seller contact while pending", func(t *testing.T) {
		offers, err := suite.SentOffers.Execute(ctx(), &sent_offers.Request{BuyerID: buyerID})
		require.NoError(t, err)
		require.Len(t, offers, 1)
		assert.Nil(t, offers[0].SellerContact)
	})

	t.Run("sent offers disclose seller contact once accepted", func(t *testing.T) {
		_, err := suite.AcceptOffer.Execute(ctx(), &accept_offer.Request{OfferID: offerID, ActorID: sellerID})
		require.NoError(t, err)

		offers, err := suite.SentOffers.Execute(ctx(), &sent_offers.Request{BuyerID: buyerID})
		require.NoError(t, err)
		require.Len(t, offers, 1)
		require.NotNil(t, offers[0].SellerContact)
		assert.Equal(t, "clara@example.com", offers[0].SellerContact.Email)
	})

	t.Run("product offers restricted to the listing owner", func(t *testing.T) {
		offers, err := suite.ProductOffers.Execute(ctx(), &product_offers.Request{ProductID: productID, ActorID: sellerID})
		require.NoError(t, err)
		require.Len(t, offers, 1)

		_, err = suite.ProductOffers.Execute(ctx(), &product_offers.Request{ProductID: productID, ActorID: buyerID})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotListingOwner)
	})
}
