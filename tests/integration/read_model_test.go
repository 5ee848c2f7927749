//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avick-dev/bizmarket-service/internal/app/offer/domain"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/repo"
	"github.com/avick-dev/bizmarket-service/tests/testutil"
)

func TestOfferReadModel_ListBySeller(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	readModel := repo.NewReadModel(client)

	buyer := domain.BuyerSnapshot{ID: "buyer-1", Name: "Anna Buyer", Email: "anna@example.com"}

	first := testutil.CreatePendingTestOffer(t, client, "product-1", buyer, "seller-1", 100000)
	time.Sleep(10 * time.Millisecond)
	second := testutil.CreatePendingTestOffer(t, client, "product-2", buyer, "seller-1", 150000)
	testutil.CreatePendingTestOffer(t, client, "product-3", buyer, "other-seller", 99000)

	offers, err := readModel.ListBySeller(ctx, "seller-1")
	require.NoError(t, err)
	require.Len(t, offers, 2)

	// Newest first.
	assert.Equal(t, second, offers[0].OfferID)
	assert.Equal(t, first, offers[1].OfferID)
	assert.Equal(t, 150000.0, offers[0].Amount)
	assert.Equal(t, "pending", offers[0].Status)
	assert.Equal(t, "Anna Buyer", offers[0].BuyerName)
	assert.Nil(t, offers[0].CounterAmount)
}

func TestOfferReadModel_ListByBuyer(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	readModel := repo.NewReadModel(client)

	anna := domain.BuyerSnapshot{ID: "buyer-1", Name: "Anna Buyer", Email: "anna@example.com"}
	bruno := domain.BuyerSnapshot{ID: "buyer-2", Name: "Bruno Buyer", Email: "bruno@example.com"}

	first := testutil.CreatePendingTestOffer(t, client, "product-1", anna, "seller-1", 100000)
	time.Sleep(10 * time.Millisecond)
	second := testutil.CreatePendingTestOffer(t, client, "product-2", anna, "seller-2", 80000)
	testutil.CreatePendingTestOffer(t, client, "product-1", bruno, "seller-1", 95000)

	offers, err := readModel.ListByBuyer(ctx, "buyer-1")
	require.NoError(t, err)
	require.Len(t, offers, 2)

	assert.Equal(t, second, offers[0].OfferID)
	assert.Equal(t, first, offers[1].OfferID)
}

func TestOfferReadModel_ListByProduct(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	readModel := repo.NewReadModel(client)

	anna := domain.BuyerSnapshot{ID: "buyer-1", Name: "Anna Buyer", Email: "anna@example.com"}
	bruno := domain.BuyerSnapshot{ID: "buyer-2", Name: "Bruno Buyer", Email: "bruno@example.com"}

	testutil.CreatePendingTestOffer(t, client, "product-1", anna, "seller-1", 100000)
	time.Sleep(10 * time.Millisecond)
	latest := testutil.CreatePendingTestOffer(t, client, "product-1", bruno, "seller-1", 120000)
	testutil.CreatePendingTestOffer(t, client, "product-2", anna, "seller-1", 60000)

	offers, err := readModel.ListByProduct(ctx, "product-1")
	require.NoError(t, err)
	require.Len(t, offers, 2)

	assert.Equal(t, latest, offers[0].OfferID)
	assert.Equal(t, "buyer-2", offers[0].BuyerID)
}

func TestOfferReadModel_CounterFieldsProjected(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewOfferRepo(client)
	readModel := repo.NewReadModel(client)

	buyer := domain.BuyerSnapshot{ID: "buyer-1", Name: "Anna Buyer", Email: "anna@example.com"}
	offerID := testutil.CreatePendingTestOffer(t, client, "product-1", buyer, "seller-1", 180000)

	offer, err := repository.GetByID(ctx, offerID)
	require.NoError(t, err)

	counter, err := domain.NewMoneyFromFloat(210000)
	require.NoError(t, err)
	require.NoError(t, offer.MakeCounter("seller-1", counter, "can meet at 210k", time.Now()))

	updateMut, err := repository.UpdateMut(offer)
	require.NoError(t, err)
	_, err = client.Apply(ctx, []*spanner.Mutation{updateMut})
	require.NoError(t, err)

	offers, err := readModel.ListBySeller(ctx, "seller-1")
	require.NoError(t, err)
	require.Len(t, offers, 1)

	projection := offers[0]
	assert.Equal(t, "countered", projection.Status)
	require.NotNil(t, projection.CounterAmount)
	assert.Equal(t, 210000.0, *projection.CounterAmount)
	require.NotNil(t, projection.CounterMessage)
	assert.Equal(t, "can meet at 210k", *projection.CounterMessage)
	assert.Nil(t, projection.CounterResponse)
}
