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
	"github.com/avick-dev/bizmarket-service/internal/app/offer/queries/list_events"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/repo"
	"github.com/avick-dev/bizmarket-service/internal/models/m_outbox"
	"github.com/avick-dev/bizmarket-service/tests/testutil"
)

func TestOutboxRepository_InsertMut(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	repository := repo.NewOutboxRepo(client)

	event := &domain.OfferAcceptedEvent{
		OfferID:    "offer-1",
		SellerID:   "seller-1",
		AcceptedAt: time.Now(),
	}

	outboxEvent := repository.EnrichEvent(event, `{"offer_id": "offer-1"}`)

	mutation := repository.InsertMut(outboxEvent)
	require.NotNil(t, mutation)

	ctx := context.Background()
	_, err := client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err)

	testutil.AssertRowCount(t, client, "outbox_events", 1)
	testutil.AssertOutboxEvent(t, client, "offer.accepted")
}

func TestOutboxRepository_EnrichEvent(t *testing.T) {
	repository := repo.NewOutboxRepo(nil) // No client needed for enrichment

	event := &domain.OfferCounteredEvent{
		OfferID:       "offer-1",
		SellerID:      "seller-1",
		CounterAmount: "210000",
		CounteredAt:   time.Now(),
	}

	outboxEvent := repository.EnrichEvent(event, `{"offer_id": "offer-1"}`)

	assert.NotEmpty(t, outboxEvent.EventID, "event ID should be generated")
	assert.Equal(t, "offer.countered", outboxEvent.EventType)
	assert.Equal(t, "offer-1", outboxEvent.AggregateID)
	assert.Equal(t, m_outbox.StatusPending, outboxEvent.Status)
}

func TestEventsReadModel_FiltersAndOrdering(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	readModel := repo.NewEventsReadModel(client)

	testutil.CreateTestOutboxEvent(t, client, "offer.created", "offer-1")
	time.Sleep(10 * time.Millisecond)
	testutil.CreateTestOutboxEvent(t, client, "offer.accepted", "offer-1")
	testutil.CreateTestOutboxEvent(t, client, "offer.created", "offer-2")

	records, err := readModel.ListEvents(ctx, eventsRequest("offer.accepted", "", ""))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "offer-1", records[0].AggregateID)

	records, err = readModel.ListEvents(ctx, eventsRequest("", "offer-1", ""))
	require.NoError(t, err)
	require.Len(t, records, 2)

	records, err = readModel.ListEvents(ctx, eventsRequest("", "", m_outbox.StatusPending))
	require.NoError(t, err)
	require.Len(t, records, 3)
}

func eventsRequest(eventType, aggregateID, status string) *list_events.Request {
	req := &list_events.Request{Limit: 100}
	if eventType != "" {
		req.EventType = &eventType
	}
	if aggregateID != "" {
		req.AggregateID = &aggregateID
	}
	if status != "" {
		req.Status = &status
	}
	return req
}
