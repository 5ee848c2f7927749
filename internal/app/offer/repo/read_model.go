package repo

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/avick-dev/bizmarket-service/internal/app/offer/contracts"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/domain"
	"github.com/avick-dev/bizmarket-service/internal/models/m_offer"
	"github.com/avick-dev/bizmarket-service/internal/pkg/query"
)

// ReadModelImpl implements OfferReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new OfferReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.OfferReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

var projectionColumns = []string{
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
	m_offer.CreatedAt,
}

// ListBySeller retrieves all offers received by a seller, newest first.
func (rm *ReadModelImpl) ListBySeller(ctx context.Context, sellerID string) ([]*contracts.OfferProjection, error) {
	return rm.list(ctx, query.Eq(m_offer.SellerID, sellerID))
}

// ListByBuyer retrieves all offers sent by a buyer, newest first.
func (rm *ReadModelImpl) ListByBuyer(ctx context.Context, buyerID string) ([]*contracts.OfferProjection, error) {
	return rm.list(ctx, query.Eq(m_offer.BuyerID, buyerID))
}

// ListByProduct retrieves all offers made on a product, newest first.
func (rm *ReadModelImpl) ListByProduct(ctx context.Context, productID string) ([]*contracts.OfferProjection, error) {
	return rm.list(ctx, query.Eq(m_offer.ProductID, productID))
}

func (rm *ReadModelImpl) list(ctx context.Context, cond query.Condition) ([]*contracts.OfferProjection, error) {
	stmt := query.From(m_offer.TableName).
		Select(projectionColumns...).
		Where(cond).
		OrderBy(m_offer.CreatedAt, query.Desc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	offers := make([]*contracts.OfferProjection, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, domainUnavailable(err)
		}

		var data m_offer.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, domainUnavailable(err)
		}

		projection, err := dataToProjection(&data)
		if err != nil {
			return nil, err
		}

		offers = append(offers, projection)
	}

	return offers, nil
}

// dataToProjection converts database Data to an OfferProjection.
func dataToProjection(data *m_offer.Data) (*contracts.OfferProjection, error) {
	amount, err := domain.NewMoney(data.AmountNumerator, data.AmountDenominator)
	if err != nil {
		return nil, err
	}

	projection := &contracts.OfferProjection{
		OfferID:    data.OfferID,
		ProductID:  data.ProductID,
		BuyerID:    data.BuyerID,
		BuyerName:  data.BuyerName,
		BuyerEmail: data.BuyerEmail,
		SellerID:   data.SellerID,
		Amount:     amount.Float64(),
		Message:    data.Message.StringVal,
		Status:     data.Status,
		CreatedAt:  data.CreatedAt,
	}

	if data.CounterAmountNumerator.Valid && data.CounterAmountDenominator.Valid {
		counterAmount, err := domain.NewMoney(data.CounterAmountNumerator.Int64, data.CounterAmountDenominator.Int64)
		if err != nil {
			return nil, err
		}
		f := counterAmount.Float64()
		projection.CounterAmount = &f
	}

	if data.CounterMessage.Valid {
		projection.CounterMessage = &data.CounterMessage.StringVal
	}

	if data.CounterResponse.Valid {
		projection.CounterResponse = &data.CounterResponse.StringVal
	}

	if data.CounterResponseMessage.Valid {
		projection.CounterResponseMessage = &data.CounterResponseMessage.StringVal
	}

	return projection, nil
}
