package respond_counter

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

// Request carries the buyer's verdict on a countered offer.
// ResponseType must be "accept" or "reject".
type Request struct {
	OfferID      string
	ResponseType string
	Message      string
	ActorID      string
}

// Result carries the contact disclosure produced by an accepting verdict.
// Nil when the counter was rejected.
type Result struct {
	BuyerContact  contracts.Contact
	SellerContact contracts.Contact
}

// Interactor handles the respond-to-counter use case. This is the only
// entry point for counter responses; the seller's counter operation never
// doubles as a response channel.
type Interactor struct {
	users     contracts.UserDirectory
	offers    contracts.OfferRepository
	outbox    contracts.OutboxRepository
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new respond-to-counter interactor.
func NewInteractor(
	users contracts.UserDirectory,
	offers contracts.OfferRepository,
	outbox contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		users:     users,
		offers:    offers,
		outbox:    outbox,
		committer: committer,
		clock:     clock,
	}
}

// Execute records the buyer's verdict on a countered offer.
// An accepting verdict discloses both parties' current contact details.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	offer, err := i.offers.GetByID(ctx, req.OfferID)
	if err != nil {
		return nil, err
	}

	defer offer.ClearEvents()

	if err := offer.RespondToCounter(req.ActorID, req.ResponseType, req.Message, i.clock.Now()); err != nil {
		return nil, err
	}

	plan := committer.NewPlan()

	updateMut, err := i.offers.UpdateMut(offer)
	if err != nil {
		return nil, err
	}
	plan.Add(updateMut)

	for _, event := range offer.DomainEvents() {
		payload, err := serializeEvent(event)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outbox.InsertMut(i.outbox.EnrichEvent(event, payload)))
	}

	err = i.committer.ApplyWithVersionCheck(ctx, m_offer.TableName, spanner.Key{offer.ID()}, m_offer.Version, offer.Version(), plan)
	if err != nil {
		return nil, err
	}

	if !offer.DisclosesContact() {
		return nil, nil
	}

	buyer, err := i.users.GetUser(ctx, offer.Buyer().ID)
	if err != nil {
		return nil, err
	}

	seller, err := i.users.GetUser(ctx, offer.SellerID())
	if err != nil {
		return nil, err
	}

	return &Result{
		BuyerContact:  contracts.ContactOf(buyer),
		SellerContact: contracts.ContactOf(seller),
	}, nil
}

// serializeEvent converts a domain event to JSON payload.
func serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
