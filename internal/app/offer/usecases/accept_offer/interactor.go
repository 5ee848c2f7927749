package accept_offer

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

// Request identifies the offer being accepted and the acting seller.
type Request struct {
	OfferID string
	ActorID string
}

// Result carries the contact disclosure produced by a successful acceptance.
// Contact details come from a fresh directory lookup, not from the
// creation-time snapshot, so a party's current phone and email are disclosed.
type Result struct {
	BuyerContact  contracts.Contact
	SellerContact contracts.Contact
}

// Interactor handles the accept offer use case.
type Interactor struct {
	users     contracts.UserDirectory
	offers    contracts.OfferRepository
	outbox    contracts.OutboxRepository
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new accept offer interactor.
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

// Execute accepts a pending offer and discloses both parties' contact details.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	offer, err := i.offers.GetByID(ctx, req.OfferID)
	if err != nil {
		return nil, err
	}

	defer offer.ClearEvents()

	if err := offer.Accept(req.ActorID, i.clock.Now()); err != nil {
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
