package domain

import "time"

// Field names for change tracking
const (
	FieldStatus          = "status"
	FieldCounter         = "counter"
	FieldCounterDecision = "counter_decision"
	FieldHistory         = "history"
)

// OfferStatus represents the negotiation status of an offer.
type OfferStatus string

const (
	StatusPending         OfferStatus = "pending"
	StatusAccepted        OfferStatus = "accepted"
	StatusRejected        OfferStatus = "rejected"
	StatusCountered       OfferStatus = "countered"
	StatusCounterAccepted OfferStatus = "counter_accepted"
	StatusCounterRejected OfferStatus = "counter_rejected"
)

// IsTerminal returns true if no further transition is defined from this status.
func (s OfferStatus) IsTerminal() bool {
	switch s {
	case StatusAccepted, StatusRejected, StatusCounterAccepted, StatusCounterRejected:
		return true
	}
	return false
}

// CounterResponse is the buyer's verdict on a counter offer.
type CounterResponse string

const (
	CounterResponseAccepted CounterResponse = "accepted"
	CounterResponseRejected CounterResponse = "rejected"
)

// Raw response type values accepted by the respond-to-counter operation.
const (
	ResponseTypeAccept = "accept"
	ResponseTypeReject = "reject"
)

// BuyerSnapshot is the buyer identity captured at offer creation time.
// It is never re-synced if the buyer's profile later changes; contact
// disclosure on acceptance uses a fresh directory lookup instead.
type BuyerSnapshot struct {
	ID    string
	Name  string
	Email string
}

// CounterOffer carries the fields that only exist once the seller has countered.
type CounterOffer struct {
	amount  *Money
	message string
}

func (c *CounterOffer) Amount() *Money  { return c.amount.Copy() }
func (c *CounterOffer) Message() string { return c.message }

// CounterDecision carries the fields that only exist once the buyer has
// responded to a counter offer.
type CounterDecision struct {
	response CounterResponse
	message  string
}

func (d *CounterDecision) Response() CounterResponse { return d.response }
func (d *CounterDecision) Message() string           { return d.message }

// Offer is the aggregate root for price negotiation on a listed business.
// All state changes go through the transition methods; each successful
// transition appends exactly one history entry and records one domain event.
type Offer struct {
	id        string
	productID string
	buyer     BuyerSnapshot
	sellerID  string
	amount    *Money
	message   string
	status    OfferStatus
	counter   *CounterOffer
	decision  *CounterDecision
	history   []HistoryEntry
	version   int64
	createdAt time.Time
	updatedAt time.Time

	// Change tracking for optimized repository updates
	changes *ChangeTracker

	// Domain events to be published
	events []DomainEvent
}

// NewOffer creates a new Offer aggregate in status pending.
// The buyer identity is snapshotted and the seller is denormalized from the listing.
func NewOffer(id, productID string, buyer BuyerSnapshot, sellerID string, amount *Money, message string, now time.Time) (*Offer, error) {
	if amount == nil || amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	if buyer.ID == sellerID {
		return nil, ErrSelfOffer
	}

	o := &Offer{
		id:        id,
		productID: productID,
		buyer:     buyer,
		sellerID:  sellerID,
		amount:    amount.Copy(),
		message:   message,
		status:    StatusPending,
		version:   1,
		createdAt: now,
		updatedAt: now,
		changes:   NewChangeTracker(),
		events:    make([]DomainEvent, 0),
	}

	o.appendHistory(&CreatedEntry{
		By:        buyer.ID,
		Amount:    amount.Copy(),
		Message:   message,
		Timestamp: now,
	})

	o.recordEvent(&OfferCreatedEvent{
		OfferID:   o.id,
		ProductID: o.productID,
		BuyerID:   o.buyer.ID,
		SellerID:  o.sellerID,
		Amount:    o.amount.String(),
		CreatedAt: now,
	})

	return o, nil
}

// ReconstructOffer reconstitutes an Offer from the store.
func ReconstructOffer(
	id, productID string,
	buyer BuyerSnapshot,
	sellerID string,
	amount *Money,
	message string,
	status OfferStatus,
	counter *CounterOffer,
	decision *CounterDecision,
	history []HistoryEntry,
	version int64,
	createdAt, updatedAt time.Time,
) *Offer {
	return &Offer{
		id:        id,
		productID: productID,
		buyer:     buyer,
		sellerID:  sellerID,
		amount:    amount,
		message:   message,
		status:    status,
		counter:   counter,
		decision:  decision,
		history:   history,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
		changes:   NewChangeTracker(),
		events:    make([]DomainEvent, 0),
	}
}

// NewCounterOffer builds a CounterOffer from stored values.
func NewCounterOffer(amount *Money, message string) *CounterOffer {
	return &CounterOffer{amount: amount, message: message}
}

// NewCounterDecision builds a CounterDecision from stored values.
func NewCounterDecision(response CounterResponse, message string) *CounterDecision {
	return &CounterDecision{response: response, message: message}
}

// Getters
func (o *Offer) ID() string                  { return o.id }
func (o *Offer) ProductID() string           { return o.productID }
func (o *Offer) Buyer() BuyerSnapshot        { return o.buyer }
func (o *Offer) SellerID() string            { return o.sellerID }
func (o *Offer) Amount() *Money              { return o.amount.Copy() }
func (o *Offer) Message() string             { return o.message }
func (o *Offer) Status() OfferStatus         { return o.status }
func (o *Offer) Counter() *CounterOffer      { return o.counter }
func (o *Offer) Decision() *CounterDecision  { return o.decision }
func (o *Offer) History() []HistoryEntry     { return o.history }
func (o *Offer) Version() int64              { return o.version }
func (o *Offer) CreatedAt() time.Time        { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time        { return o.updatedAt }
func (o *Offer) Changes() *ChangeTracker     { return o.changes }
func (o *Offer) DomainEvents() []DomainEvent { return o.events }

// Accept transitions a pending offer to accepted. Seller only.
// The caller is expected to disclose both parties' current contact details
// after this transition commits.
func (o *Offer) Accept(actorID string, now time.Time) error {
	if actorID != o.sellerID {
		return ErrNotSeller
	}

	if o.status != StatusPending {
		return newTransitionError(ActionAccept, o.status)
	}

	o.status = StatusAccepted
	o.updatedAt = now
	o.changes.MarkDirty(FieldStatus)

	o.appendHistory(&AcceptedEntry{By: actorID, Timestamp: now})

	o.recordEvent(&OfferAcceptedEvent{
		OfferID:    o.id,
		SellerID:   actorID,
		AcceptedAt: now,
	})

	return nil
}

// Reject transitions a pending offer to rejected. Seller only. No disclosure.
func (o *Offer) Reject(actorID string, now time.Time) error {
	if actorID != o.sellerID {
		return ErrNotSeller
	}

	if o.status != StatusPending {
		return newTransitionError(ActionReject, o.status)
	}

	o.status = StatusRejected
	o.updatedAt = now
	o.changes.MarkDirty(FieldStatus)

	o.appendHistory(&RejectedEntry{By: actorID, Timestamp: now})

	o.recordEvent(&OfferRejectedEvent{
		OfferID:    o.id,
		SellerID:   actorID,
		RejectedAt: now,
	})

	return nil
}

// MakeCounter transitions a pending offer to countered with the seller's
// alternative price. Seller only.
func (o *Offer) MakeCounter(actorID string, counterAmount *Money, counterMessage string, now time.Time) error {
	if actorID != o.sellerID {
		return ErrNotSeller
	}

	if o.status != StatusPending {
		return newTransitionError(ActionCounter, o.status)
	}

	if counterAmount == nil || counterAmount.IsNegative() {
		return ErrNegativeAmount
	}

	o.status = StatusCountered
	o.counter = &CounterOffer{amount: counterAmount.Copy(), message: counterMessage}
	o.updatedAt = now
	o.changes.MarkDirty(FieldStatus)
	o.changes.MarkDirty(FieldCounter)

	o.appendHistory(&CounteredEntry{
		By:        actorID,
		Amount:    counterAmount.Copy(),
		Message:   counterMessage,
		Timestamp: now,
	})

	o.recordEvent(&OfferCounteredEvent{
		OfferID:       o.id,
		SellerID:      actorID,
		CounterAmount: counterAmount.String(),
		CounteredAt:   now,
	})

	return nil
}

// RespondToCounter records the buyer's verdict on a countered offer. Buyer only.
// responseType must be "accept" or "reject". An accepting verdict signals the
// caller to disclose both parties' current contact details after commit.
func (o *Offer) RespondToCounter(actorID, responseType, message string, now time.Time) error {
	if actorID != o.buyer.ID {
		return ErrNotBuyer
	}

	if o.status != StatusCountered {
		return newTransitionError(ActionRespondCounter, o.status)
	}

	switch responseType {
	case ResponseTypeAccept:
		o.status = StatusCounterAccepted
		o.decision = &CounterDecision{response: CounterResponseAccepted, message: message}
		o.appendHistory(&CounterAcceptedEntry{By: actorID, Message: message, Timestamp: now})
		o.recordEvent(&CounterAcceptedEvent{OfferID: o.id, BuyerID: actorID, AcceptedAt: now})

	case ResponseTypeReject:
		o.status = StatusCounterRejected
		o.decision = &CounterDecision{response: CounterResponseRejected, message: message}
		o.appendHistory(&CounterRejectedEntry{By: actorID, Message: message, Timestamp: now})
		o.recordEvent(&CounterRejectedEvent{OfferID: o.id, BuyerID: actorID, RejectedAt: now})

	default:
		return ErrUnknownCounterResponse
	}

	o.updatedAt = now
	o.changes.MarkDirty(FieldStatus)
	o.changes.MarkDirty(FieldCounterDecision)

	return nil
}

// DisclosesContact returns true if the offer has reached an agreed state in
// which both parties' contact details may be revealed.
func (o *Offer) DisclosesContact() bool {
	return o.status == StatusAccepted || o.status == StatusCounterAccepted
}

// appendHistory appends one audit entry. Entries are never reordered or removed.
func (o *Offer) appendHistory(entry HistoryEntry) {
	o.history = append(o.history, entry)
	o.changes.MarkDirty(FieldHistory)
}

// recordEvent adds a domain event to the list of events.
func (o *Offer) recordEvent(event DomainEvent) {
	o.events = append(o.events, event)
}

// ClearEvents clears all recorded domain events (called after publishing).
func (o *Offer) ClearEvents() {
	o.events = make([]DomainEvent, 0)
}
