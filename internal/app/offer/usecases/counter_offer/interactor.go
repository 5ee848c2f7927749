package counter_offer

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/avick-dev/bizmarket-service/internal/app/offer/contracts"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/domain"
	"github.com/avick-dev/bizmarket-service/internal/models/m_offer"
	"github.com/avick-dev/bizmarket-service/internal/pkg/clock"
	"github.com/avick-dev/bizmarket-service/internal/pkg/committer"
)

// Request carries the seller's alternative price for a pending offer.
type Request struct {
	OfferID        string
	CounterAmount  *domain.Money
	CounterMessage string
	ActorID        string
}

// Interactor handles the counter offer use case.
type Interactor struct {
	offers    contracts.OfferRepository
	outbox    contracts.OutboxRepository
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new counter offer interactor.
func NewInteractor(
	offers contracts.OfferRepository,
	outbox contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		offers:    offers,
		outbox:    outbox,
		committer: committer,
		clock:     clock,
	}
}

// Execute counters a pending offer with the seller's alternative price.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.CounterAmount == nil || req.CounterAmount.IsNegative() {
		return domain.ErrNegativeAmount
	}

	offer, err := i.offers.GetByID(ctx, req.OfferID)
	if err != nil {
		return err
	}

	defer offer.ClearEvents()

	if err := offer.MakeCounter(req.ActorID, req.CounterAmount, req.CounterMessage, i.clock.Now()); err != nil {
		return err
	}

	plan := committer.NewPlan()

	updateMut, err := i.offers.UpdateMut(offer)
	if err != nil {
		return err
	}
	plan.Add(updateMut)

	for _, event := range offer.DomainEvents() {
		payload, err := serializeEvent(event)
		if err != nil {
			return fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outbox.InsertMut(i.outbox.EnrichEvent(event, payload)))
	}

	return i.committer.ApplyWithVersionCheck(ctx, m_offer.TableName, spanner.Key{offer.ID()}, m_offer.Version, offer.Version(), plan)
}

// serializeEvent converts a domain event to JSON payload.
func serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
