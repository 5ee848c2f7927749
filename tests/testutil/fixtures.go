package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/avick-dev/bizmarket-service/internal/app/offer/domain"
	offerrepo "github.com/avick-dev/bizmarket-service/internal/app/offer/repo"
	"github.com/avick-dev/bizmarket-service/internal/models/m_listing"
	"github.com/avick-dev/bizmarket-service/internal/models/m_offer"
	"github.com/avick-dev/bizmarket-service/internal/models/m_outbox"
	"github.com/avick-dev/bizmarket-service/internal/models/m_user"
)

// TestPassword is the plaintext password every fixture user is created with.
const TestPassword = "password123"

// CreateTestUser creates a test user directly in the database.
func CreateTestUser(t *testing.T, client *spanner.Client, name, email, role string) string {
	t.Helper()

	ctx := context.Background()
	userID := uuid.New().String()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	require.NoError(t, err, "failed to hash test password")

	model := m_user.NewModel()
	data := &m_user.Data{
		UserID:       userID,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        "+49 30 1234567",
		Role:         role,
		Location:     "Berlin",
		IsVerified:   false,
		CreatedAt:    time.Now(),
	}

	mutation := model.InsertMut(data)
	_, err = client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test user")

	return userID
}

// CreateActiveTestListing creates an active listing owned by the given seller.
func CreateActiveTestListing(t *testing.T, client *spanner.Client, sellerID, sellerName, sellerEmail, name string) string {
	t.Helper()
	return createTestListing(t, client, sellerID, sellerName, sellerEmail, name, "food", true)
}

// CreateInactiveTestListing creates a deactivated listing.
func CreateInactiveTestListing(t *testing.T, client *spanner.Client, sellerID, sellerName, sellerEmail, name string) string {
	t.Helper()
	return createTestListing(t, client, sellerID, sellerName, sellerEmail, name, "food", false)
}

// CreateTestListingInCategory creates an active listing in a specific category.
func CreateTestListingInCategory(t *testing.T, client *spanner.Client, sellerID, sellerName, sellerEmail, name, category string) string {
	t.Helper()
	return createTestListing(t, client, sellerID, sellerName, sellerEmail, name, category, true)
}

func createTestListing(t *testing.T, client *spanner.Client, sellerID, sellerName, sellerEmail, name, category string, active bool) string {
	t.Helper()

	ctx := context.Background()
	productID := uuid.New().String()

	model := m_listing.NewModel()
	data := &m_listing.Data{
		ProductID:   productID,
		SellerID:    sellerID,
		SellerName:  sellerName,
		SellerEmail: sellerEmail,
		Name:        name,
		Description: spanner.NullString{StringVal: "Test listing description", Valid: true},
		Category:    category,
		Revenue:     spanner.NullFloat64{Float64: 120000, Valid: true},
		AskValue:    spanner.NullFloat64{Float64: 250000, Valid: true},
		Profit:      spanner.NullFloat64{Float64: 45000, Valid: true},
		Location:    spanner.NullString{StringVal: "Berlin", Valid: true},
		Documents:   []string{},
		IsActive:    active,
		CreatedAt:   time.Now(),
	}

	mutation := model.InsertMut(data)
	_, err := client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test listing")

	return productID
}

// CreatePendingTestOffer inserts a fresh pending offer through the real
// aggregate and repository so the stored row matches production shape.
func CreatePendingTestOffer(t *testing.T, client *spanner.Client, productID string, buyer domain.BuyerSnapshot, sellerID string, amount float64) string {
	t.Helper()

	ctx := context.Background()
	offerID := uuid.New().String()

	money, err := domain.NewMoneyFromFloat(amount)
	require.NoError(t, err, "failed to build offer amount")

	offer, err := domain.NewOffer(offerID, productID, buyer, sellerID, money, "test offer", time.Now())
	require.NoError(t, err, "failed to build test offer")

	repo := offerrepo.NewOfferRepo(client)
	mutation, err := repo.InsertMut(offer)
	require.NoError(t, err, "failed to build offer mutation")

	_, err = client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test offer")

	return offerID
}

// GetOfferData retrieves the raw offer row for verification.
func GetOfferData(t *testing.T, client *spanner.Client, offerID string) *m_offer.Data {
	t.Helper()

	ctx := context.Background()
	row, err := client.Single().ReadRow(ctx, m_offer.TableName, spanner.Key{offerID}, []string{
		m_offer.OfferID,
		m_offer.ProductID,
		m_offer.BuyerID,
		m_offer.BuyerName,
		m_offer.BuyerEmail,
		m_offer.SellerID,
		m_offer.AmountNumerator,
		m_offer.AmountDenominator,
		m_offer.Message,
		m_offer.Status,
		m_offer.CounterAmountNumerator,
		m_offer.CounterAmountDenominator,
		m_offer.CounterMessage,
		m_offer.CounterResponse,
		m_offer.CounterResponseMessage,
		m_offer.History,
		m_offer.Version,
		m_offer.CreatedAt,
		m_offer.UpdatedAt,
	})
	require.NoError(t, err, "failed to get offer by id")

	var data m_offer.Data
	err = row.ToStruct(&data)
	require.NoError(t, err, "failed to parse offer data")

	return &data
}

// CreateTestOutboxEvent creates a test outbox event.
func CreateTestOutboxEvent(t *testing.T, client *spanner.Client, eventType string, aggregateID string) string {
	t.Helper()

	ctx := context.Background()
	eventID := uuid.New().String()

	model := m_outbox.NewModel()
	data := &m_outbox.Data{
		EventID:     eventID,
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     spanner.NullJSON{Value: `{"test": "data"}`, Valid: true},
		Status:      m_outbox.StatusPending,
		RetryCount:  0,
	}

	mutation := model.InsertMut(data)
	_, err := client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test outbox event")

	return eventID
}

// AssertOutboxEvent verifies an outbox event exists with the given event type.
func AssertOutboxEvent(t *testing.T, client *spanner.Client, eventType string) {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{
		SQL:    "SELECT event_id FROM outbox_events WHERE event_type = @eventType",
		Params: map[string]interface{}{"eventType": eventType},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "outbox event not found for type: %s", eventType)
	require.NotNil(t, row, "outbox event not found for type: %s", eventType)
}

// AssertOutboxEventCount verifies the count of outbox events.
func AssertOutboxEventCount(t *testing.T, client *spanner.Client, expectedCount int) {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{
		SQL: "SELECT COUNT(*) FROM outbox_events",
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "failed to query outbox event count")

	var count int64
	err = row.Columns(&count)
	require.NoError(t, err, "failed to parse count")

	require.Equal(t, int64(expectedCount), count, "unexpected outbox event count")
}
