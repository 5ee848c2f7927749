package domain

import (
	"fmt"
	"strings"
	"time"
)

// SellerSnapshot captures the seller's identity at listing time.
// It is denormalized onto the listing row for display; contact details
// handed out during negotiation always come from a fresh directory lookup.
type SellerSnapshot struct {
	ID    string
	Name  string
	Email string
}

// Financials holds the optional business figures shown on a listing.
type Financials struct {
	Revenue  *float64
	AskValue *float64
	Profit   *float64
}

// Listing is the business-for-sale aggregate.
type Listing struct {
	id          string
	seller      SellerSnapshot
	name        string
	description string
	category    string
	financials  Financials
	location    string
	image       string
	documents   []string
	isActive    bool
	createdAt   time.Time
}

// NewListing creates an active listing.
func NewListing(id string, seller SellerSnapshot, name, description, category string, financials Financials, location, image string, documents []string, now time.Time) (*Listing, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidArgument)
	}
	for _, v := range []*float64{financials.Revenue, financials.AskValue, financials.Profit} {
		if v != nil && *v < 0 {
			return nil, fmt.Errorf("%w: financial figures cannot be negative", ErrInvalidArgument)
		}
	}

	return &Listing{
		id:          id,
		seller:      seller,
		name:        name,
		description: strings.TrimSpace(description),
		category:    category,
		financials:  financials,
		location:    strings.TrimSpace(location),
		image:       image,
		documents:   documents,
		isActive:    true,
		createdAt:   now,
	}, nil
}

// ReconstructListing rebuilds a listing from storage without validation.
func ReconstructListing(id string, seller SellerSnapshot, name, description, category string, financials Financials, location, image string, documents []string, isActive bool, createdAt time.Time) *Listing {
	return &Listing{
		id:          id,
		seller:      seller,
		name:        name,
		description: description,
		category:    category,
		financials:  financials,
		location:    location,
		image:       image,
		documents:   documents,
		isActive:    isActive,
		createdAt:   createdAt,
	}
}

func (l *Listing) ID() string             { return l.id }
func (l *Listing) Seller() SellerSnapshot { return l.seller }
func (l *Listing) Name() string           { return l.name }
func (l *Listing) Description() string    { return l.description }
func (l *Listing) Category() string       { return l.category }
func (l *Listing) Financials() Financials { return l.financials }
func (l *Listing) Location() string       { return l.location }
func (l *Listing) Image() string          { return l.image }
func (l *Listing) Documents() []string    { return l.documents }
func (l *Listing) IsActive() bool         { return l.isActive }
func (l *Listing) CreatedAt() time.Time   { return l.createdAt }

// Deactivate takes the listing off the market. Only the owner may do this.
func (l *Listing) Deactivate(actorID string) error {
	if actorID != l.seller.ID {
		return ErrNotOwner
	}
	if !l.isActive {
		return ErrAlreadyInactive
	}
	l.isActive = false
	return nil
}
