package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/avick-dev/bizmarket-service/internal/app/offer/contracts"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/domain"
	"github.com/avick-dev/bizmarket-service/internal/models/m_offer"
)

// OfferRepo implements OfferRepository for Spanner.
type OfferRepo struct {
	client *spanner.Client
	model  *m_offer.Model
}

// NewOfferRepo creates a new OfferRepo.
func NewOfferRepo(client *spanner.Client) contracts.OfferRepository {
	return &OfferRepo{
		client: client,
		model:  m_offer.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new offer.
func (r *OfferRepo) InsertMut(offer *domain.Offer) (*spanner.Mutation, error) {
	data, err := r.domainToData(offer)
	if err != nil {
		return nil, err
	}
	return r.model.InsertMut(data), nil
}

// UpdateMut creates a mutation for updating an offer (only dirty fields).
// The version column is always incremented for optimistic locking.
func (r *OfferRepo) UpdateMut(offer *domain.Offer) (*spanner.Mutation, error) {
	changes := offer.Changes()
	if !changes.HasChanges() {
		return nil, nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldStatus) {
		updates[m_offer.Status] = string(offer.Status())
	}

	if changes.Dirty(domain.FieldCounter) {
		counter := offer.Counter()
		if counter != nil {
			amount := counter.Amount()
			if !amount.IsSafeForStorage() {
				return nil, fmt.Errorf("counter amount exceeds storage capacity: %w", domain.ErrMoneyOverflow)
			}
			updates[m_offer.CounterAmountNumerator] = spanner.NullInt64{Int64: amount.Numerator(), Valid: true}
			updates[m_offer.CounterAmountDenominator] = spanner.NullInt64{Int64: amount.Denominator(), Valid: true}
			updates[m_offer.CounterMessage] = nullString(counter.Message())
		} else {
			updates[m_offer.CounterAmountNumerator] = spanner.NullInt64{}
			updates[m_offer.CounterAmountDenominator] = spanner.NullInt64{}
			updates[m_offer.CounterMessage] = spanner.NullString{}
		}
	}

	if changes.Dirty(domain.FieldCounterDecision) {
		decision := offer.Decision()
		if decision != nil {
			updates[m_offer.CounterResponse] = spanner.NullString{StringVal: string(decision.Response()), Valid: true}
			updates[m_offer.CounterResponseMessage] = nullString(decision.Message())
		} else {
			updates[m_offer.CounterResponse] = spanner.NullString{}
			updates[m_offer.CounterResponseMessage] = spanner.NullString{}
		}
	}

	if changes.Dirty(domain.FieldHistory) {
		history, err := domain.MarshalHistory(offer.History())
		if err != nil {
			return nil, err
		}
		updates[m_offer.History] = historyColumn(history)
	}

	if len(updates) == 0 {
		return nil, nil
	}

	// Increment version for optimistic locking
	updates[m_offer.Version] = offer.Version() + 1

	return r.model.UpdateMut(offer.ID(), updates), nil
}

// GetByID retrieves an offer by ID, reconstructing the domain aggregate.
func (r *OfferRepo) GetByID(ctx context.Context, offerID string) (*domain.Offer, error) {
	row, err := r.client.Single().ReadRow(ctx, m_offer.TableName, spanner.Key{offerID}, []string{
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
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrOfferNotFound
		}
		return nil, domainUnavailable(err)
	}

	var data m_offer.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse offer: %w", err)
	}

	return dataToDomain(&data)
}

// domainToData converts a domain Offer to database Data.
func (r *OfferRepo) domainToData(offer *domain.Offer) (*m_offer.Data, error) {
	amount := offer.Amount()
	if !amount.IsSafeForStorage() {
		return nil, fmt.Errorf("amount exceeds storage capacity: %w", domain.ErrMoneyOverflow)
	}

	history, err := domain.MarshalHistory(offer.History())
	if err != nil {
		return nil, err
	}

	buyer := offer.Buyer()
	data := &m_offer.Data{
		OfferID:           offer.ID(),
		ProductID:         offer.ProductID(),
		BuyerID:           buyer.ID,
		BuyerName:         buyer.Name,
		BuyerEmail:        buyer.Email,
		SellerID:          offer.SellerID(),
		AmountNumerator:   amount.Numerator(),
		AmountDenominator: amount.Denominator(),
		Message:           nullString(offer.Message()),
		Status:            string(offer.Status()),
		History:           historyColumn(history),
		Version:           offer.Version(),
		CreatedAt:         offer.CreatedAt(),
		UpdatedAt:         offer.UpdatedAt(),
	}

	// Counter fields (nullable, only set after the matching transitions)
	if counter := offer.Counter(); counter != nil {
		counterAmount := counter.Amount()
		if !counterAmount.IsSafeForStorage() {
			return nil, fmt.Errorf("counter amount exceeds storage capacity: %w", domain.ErrMoneyOverflow)
		}
		data.CounterAmountNumerator = spanner.NullInt64{Int64: counterAmount.Numerator(), Valid: true}
		data.CounterAmountDenominator = spanner.NullInt64{Int64: counterAmount.Denominator(), Valid: true}
		data.CounterMessage = nullString(counter.Message())
	}

	if decision := offer.Decision(); decision != nil {
		data.CounterResponse = spanner.NullString{StringVal: string(decision.Response()), Valid: true}
		data.CounterResponseMessage = nullString(decision.Message())
	}

	return data, nil
}

// dataToDomain converts database Data to a domain Offer.
func dataToDomain(data *m_offer.Data) (*domain.Offer, error) {
	amount, err := domain.NewMoney(data.AmountNumerator, data.AmountDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid offer amount: %w", err)
	}

	var counter *domain.CounterOffer
	if data.CounterAmountNumerator.Valid && data.CounterAmountDenominator.Valid {
		counterAmount, err := domain.NewMoney(data.CounterAmountNumerator.Int64, data.CounterAmountDenominator.Int64)
		if err != nil {
			return nil, fmt.Errorf("invalid counter amount: %w", err)
		}
		counter = domain.NewCounterOffer(counterAmount, data.CounterMessage.StringVal)
	}

	var decision *domain.CounterDecision
	if data.CounterResponse.Valid {
		decision = domain.NewCounterDecision(
			domain.CounterResponse(data.CounterResponse.StringVal),
			data.CounterResponseMessage.StringVal,
		)
	}

	history, err := domain.UnmarshalHistory(historyJSON(data.History))
	if err != nil {
		return nil, err
	}

	return domain.ReconstructOffer(
		data.OfferID,
		data.ProductID,
		domain.BuyerSnapshot{ID: data.BuyerID, Name: data.BuyerName, Email: data.BuyerEmail},
		data.SellerID,
		amount,
		data.Message.StringVal,
		domain.OfferStatus(data.Status),
		counter,
		decision,
		history,
		data.Version,
		data.CreatedAt,
		data.UpdatedAt,
	), nil
}

// historyColumn wraps serialized history JSON for a Spanner JSON column.
// json.RawMessage keeps the already-encoded array from being double-encoded.
func historyColumn(history string) spanner.NullJSON {
	return spanner.NullJSON{Value: json.RawMessage(history), Valid: true}
}

// historyJSON extracts the raw JSON string from a Spanner JSON column.
func historyJSON(col spanner.NullJSON) string {
	if !col.Valid {
		return ""
	}
	return col.String()
}

func nullString(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: s != ""}
}

// domainUnavailable classifies unexpected store failures as retryable.
func domainUnavailable(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
}
