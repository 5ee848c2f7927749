package create_offer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/avick-dev/bizmarket-service/internal/app/offer/contracts"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/domain"
	"github.com/avick-dev/bizmarket-service/internal/pkg/clock"
	"github.com/avick-dev/bizmarket-service/internal/pkg/committer"
)

// Request contains the data needed to open a negotiation on a listed business.
type Request struct {
	ProductID string
	Amount    *domain.Money
	Message   string
	ActorID   string
}

// Interactor handles the create offer use case.
type Interactor struct {
	users     contracts.UserDirectory
	listings  contracts.ListingDirectory
	offers    contracts.OfferRepository
	outbox    contracts.OutboxRepository
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new create offer interactor.
func NewInteractor(
	users contracts.UserDirectory,
	listings contracts.ListingDirectory,
	offers contracts.OfferRepository,
	outbox contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		users:     users,
		listings:  listings,
		offers:    offers,
		outbox:    outbox,
		committer: committer,
		clock:     clock,
	}
}

// Execute creates a new pending offer.
// The buyer's name and email are snapshotted into the aggregate and the
// seller is denormalized from the listing; neither is re-synced afterwards.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	if err := i.validate(req); err != nil {
		return "", err
	}

	user, err := i.users.GetUser(ctx, req.ActorID)
	if err != nil {
		return "", err
	}

	if !user.Role.CanBuy() {
		return "", domain.ErrBuyerRoleRequired
	}

	product, err := i.listings.GetActiveProduct(ctx, req.ProductID)
	if err != nil {
		return "", err
	}

	if product.SellerID == req.ActorID {
		return "", domain.ErrSelfOffer
	}

	offerID := uuid.New().String()
	now := i.clock.Now()

	offer, err := domain.NewOffer(
		offerID,
		product.ProductID,
		domain.BuyerSnapshot{ID: user.UserID, Name: user.Name, Email: user.Email},
		product.SellerID,
		req.Amount,
		req.Message,
		now,
	)
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()

	insertMut, err := i.offers.InsertMut(offer)
	if err != nil {
		return "", err
	}
	plan.Add(insertMut)

	for _, event := range offer.DomainEvents() {
		payload, err := serializeEvent(event)
		if err != nil {
			return "", fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outbox.InsertMut(i.outbox.EnrichEvent(event, payload)))
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return offer.ID(), nil
}

// validate validates the request.
func (i *Interactor) validate(req *Request) error {
	if req.ProductID == "" {
		return fmt.Errorf("product ID is required: %w", domain.ErrProductNotFound)
	}
	if req.Amount == nil || req.Amount.IsNegative() {
		return domain.ErrNegativeAmount
	}
	return nil
}

// serializeEvent converts a domain event to JSON payload.
func serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
