package e2e

import (
	"github.com/avick-dev/bizmarket-service/internal/app/listing/usecases/create_listing"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/domain"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/usecases/create_offer"
)

// ListingBuilder helps create listings for tests with a fluent interface
type ListingBuilder struct {
	name     string
	category string
	location string
	askValue float64
	actorID  string
}

// NewListingBuilder creates a new builder with default values
func NewListingBuilder(actorID string) *ListingBuilder {
	return &ListingBuilder{
		name:     "Corner Bakery",
		category: "food",
		location: "Berlin",
		askValue: 250000,
		actorID:  actorID,
	}
}

// WithName sets the listing name
func (b *ListingBuilder) WithName(name string) *ListingBuilder {
	b.name = name
	return b
}

// WithCategory sets the listing category
func (b *ListingBuilder) WithCategory(category string) *ListingBuilder {
	b.category = category
	return b
}

// WithAskValue sets the asking price
func (b *ListingBuilder) WithAskValue(askValue float64) *ListingBuilder {
	b.askValue = askValue
	return b
}

// Build creates the create_listing.Request
func (b *ListingBuilder) Build() *create_listing.Request {
	askValue := b.askValue
	return &create_listing.Request{
		Name:        b.name,
		Description: "Established business with loyal customers",
		Category:    b.category,
		AskValue:    &askValue,
		Location:    b.location,
		ActorID:     b.actorID,
	}
}

// OfferBuilder helps create offers for tests with a fluent interface
type OfferBuilder struct {
	productID string
	amount    float64
	message   string
	actorID   string
}

// NewOfferBuilder creates a new builder with default values
func NewOfferBuilder(productID, actorID string) *OfferBuilder {
	return &OfferBuilder{
		productID: productID,
		amount:    180000,
		message:   "Very interested, can close quickly",
		actorID:   actorID,
	}
}

// WithAmount sets the offered amount
func (b *OfferBuilder) WithAmount(amount float64) *OfferBuilder {
	b.amount = amount
	return b
}

// WithMessage sets the offer message
func (b *OfferBuilder) WithMessage(message string) *OfferBuilder {
	b.message = message
	return b
}

// Build creates the create_offer.Request
func (b *OfferBuilder) Build() *create_offer.Request {
	amount, _ := domain.NewMoneyFromFloat(b.amount)

	return &create_offer.Request{
		ProductID: b.productID,
		Amount:    amount,
		Message:   b.message,
		ActorID:   b.actorID,
	}
}
