package domain

import "time"

// DomainEvent is the base interface for all offer domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// OfferCreatedEvent is emitted when a buyer opens a negotiation.
type OfferCreatedEvent struct {
	OfferID   string
	ProductID string
	BuyerID   string
	SellerID  string
	Amount    string
	CreatedAt time.Time
}

func (e *OfferCreatedEvent) EventType() string {
	return "offer.created"
}

func (e *OfferCreatedEvent) AggregateID() string {
	return e.OfferID
}

// OfferAcceptedEvent is emitted when the seller accepts the buyer's ask.
type OfferAcceptedEvent struct {
	OfferID    string
	SellerID   string
	AcceptedAt time.Time
}

func (e *OfferAcceptedEvent) EventType() string {
	return "offer.accepted"
}

func (e *OfferAcceptedEvent) AggregateID() string {
	return e.OfferID
}

// OfferRejectedEvent is emitted when the seller declines the buyer's ask.
type OfferRejectedEvent struct {
	OfferID    string
	SellerID   string
	RejectedAt time.Time
}

func (e *OfferRejectedEvent) EventType() string {
	return "offer.rejected"
}

func (e *OfferRejectedEvent) AggregateID() string {
	return e.OfferID
}

// OfferCounteredEvent is emitted when the seller proposes an alternative price.
type OfferCounteredEvent struct {
	OfferID       string
	SellerID      string
	CounterAmount string
	CounteredAt   time.Time
}

func (e *OfferCounteredEvent) EventType() string {
	return "offer.countered"
}

func (e *OfferCounteredEvent) AggregateID() string {
	return e.OfferID
}

// CounterAcceptedEvent is emitted when the buyer agrees to the counter price.
type CounterAcceptedEvent struct {
	OfferID    string
	BuyerID    string
	AcceptedAt time.Time
}

func (e *CounterAcceptedEvent) EventType() string {
	return "offer.counter.accepted"
}

func (e *CounterAcceptedEvent) AggregateID() string {
	return e.OfferID
}

// CounterRejectedEvent is emitted when the buyer declines the counter price.
type CounterRejectedEvent struct {
	OfferID    string
	BuyerID    string
	RejectedAt time.Time
}

func (e *CounterRejectedEvent) EventType() string {
	return "offer.counter.rejected"
}

func (e *CounterRejectedEvent) AggregateID() string {
	return e.OfferID
}
