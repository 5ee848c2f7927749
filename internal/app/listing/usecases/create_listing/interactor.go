package create_listing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avick-dev/bizmarket-service/internal/app/listing/contracts"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/domain"
	usercontracts "github.com/avick-dev/bizmarket-service/internal/app/user/contracts"
	"github.com/avick-dev/bizmarket-service/internal/pkg/clock"
	"github.com/avick-dev/bizmarket-service/internal/pkg/committer"
)

// Request contains the data needed to list a business for sale.
type Request struct {
	Name        string
	Description string
	Category    string
	Revenue     *float64
	AskValue    *float64
	Profit      *float64
	Location    string
	Image       string
	Documents   []string
	ActorID     string
}

// Interactor handles the create listing use case.
type Interactor struct {
	users     usercontracts.UserRepository
	listings  contracts.ListingRepository
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new create listing interactor.
func NewInteractor(
	users usercontracts.UserRepository,
	listings contracts.ListingRepository,
	c *committer.Committer,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		users:     users,
		listings:  listings,
		committer: c,
		clock:     clk,
	}
}

// Execute lists a business for sale and returns the new product ID.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	user, err := i.users.GetByID(ctx, req.ActorID)
	if err != nil {
		return "", err
	}
	if !user.Role().CanSell() {
		return "", domain.ErrSellerRoleRequired
	}

	listing, err := domain.NewListing(
		uuid.New().String(),
		domain.SellerSnapshot{ID: user.ID(), Name: user.Name(), Email: user.Email()},
		req.Name,
		req.Description,
		req.Category,
		domain.Financials{Revenue: req.Revenue, AskValue: req.AskValue, Profit: req.Profit},
		req.Location,
		req.Image,
		req.Documents,
		i.clock.Now(),
	)
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()
	insertMut, err := i.listings.InsertMut(listing)
	if err != nil {
		return "", err
	}
	plan.Add(insertMut)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return listing.ID(), nil
}
