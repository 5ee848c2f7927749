package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// OfferAction identifies a state-changing action on an offer.
type OfferAction string

const (
	ActionCreate         OfferAction = "create"
	ActionAccept         OfferAction = "accept"
	ActionReject         OfferAction = "reject"
	ActionCounter        OfferAction = "counter"
	ActionRespondCounter OfferAction = "respond_to_counter"
)

// HistoryEntry is one immutable record in an offer's audit trail.
// The set of implementations is closed; consumers can switch exhaustively.
type HistoryEntry interface {
	EntryKind() string
	ActorID() string
	OccurredAt() time.Time
}

// Entry kind tags used in the persisted JSON form.
const (
	KindCreated         = "created"
	KindAccepted        = "accepted"
	KindRejected        = "rejected"
	KindCountered       = "countered"
	KindCounterAccepted = "counter_accepted"
	KindCounterRejected = "counter_rejected"
)

// CreatedEntry records the buyer opening the negotiation.
type CreatedEntry struct {
	By        string
	Amount    *Money
	Message   string
	Timestamp time.Time
}

func (e *CreatedEntry) EntryKind() string     { return KindCreated }
func (e *CreatedEntry) ActorID() string       { return e.By }
func (e *CreatedEntry) OccurredAt() time.Time { return e.Timestamp }

// AcceptedEntry records the seller accepting the buyer's ask.
type AcceptedEntry struct {
	By        string
	Timestamp time.Time
}

func (e *AcceptedEntry) EntryKind() string     { return KindAccepted }
func (e *AcceptedEntry) ActorID() string       { return e.By }
func (e *AcceptedEntry) OccurredAt() time.Time { return e.Timestamp }

// RejectedEntry records the seller declining the buyer's ask.
type RejectedEntry struct {
	By        string
	Timestamp time.Time
}

func (e *RejectedEntry) EntryKind() string     { return KindRejected }
func (e *RejectedEntry) ActorID() string       { return e.By }
func (e *RejectedEntry) OccurredAt() time.Time { return e.Timestamp }

// CounteredEntry records the seller proposing an alternative price.
type CounteredEntry struct {
	By        string
	Amount    *Money
	Message   string
	Timestamp time.Time
}

func (e *CounteredEntry) EntryKind() string     { return KindCountered }
func (e *CounteredEntry) ActorID() string       { return e.By }
func (e *CounteredEntry) OccurredAt() time.Time { return e.Timestamp }

// CounterAcceptedEntry records the buyer agreeing to the counter price.
type CounterAcceptedEntry struct {
	By        string
	Message   string
	Timestamp time.Time
}

func (e *CounterAcceptedEntry) EntryKind() string     { return KindCounterAccepted }
func (e *CounterAcceptedEntry) ActorID() string       { return e.By }
func (e *CounterAcceptedEntry) OccurredAt() time.Time { return e.Timestamp }

// CounterRejectedEntry records the buyer declining the counter price.
type CounterRejectedEntry struct {
	By        string
	Message   string
	Timestamp time.Time
}

func (e *CounterRejectedEntry) EntryKind() string     { return KindCounterRejected }
func (e *CounterRejectedEntry) ActorID() string       { return e.By }
func (e *CounterRejectedEntry) OccurredAt() time.Time { return e.Timestamp }

// historyRecord is the persisted JSON form of a single history entry.
// Amounts are stored as numerator/denominator pairs, matching the offer columns.
type historyRecord struct {
	Kind        string    `json:"kind"`
	By          string    `json:"by"`
	Timestamp   time.Time `json:"timestamp"`
	AmountNum   *int64    `json:"amount_numerator,omitempty"`
	AmountDenom *int64    `json:"amount_denominator,omitempty"`
	Message     *string   `json:"message,omitempty"`
}

// MarshalHistory serializes an audit trail to its JSON storage form.
func MarshalHistory(entries []HistoryEntry) (string, error) {
	records := make([]historyRecord, 0, len(entries))
	for _, entry := range entries {
		rec := historyRecord{
			Kind:      entry.EntryKind(),
			By:        entry.ActorID(),
			Timestamp: entry.OccurredAt(),
		}

		switch e := entry.(type) {
		case *CreatedEntry:
			setRecordAmount(&rec, e.Amount)
			setRecordMessage(&rec, e.Message)
		case *CounteredEntry:
			setRecordAmount(&rec, e.Amount)
			setRecordMessage(&rec, e.Message)
		case *CounterAcceptedEntry:
			setRecordMessage(&rec, e.Message)
		case *CounterRejectedEntry:
			setRecordMessage(&rec, e.Message)
		case *AcceptedEntry, *RejectedEntry:
			// no extra fields
		default:
			return "", fmt.Errorf("unknown history entry kind %q", entry.EntryKind())
		}

		records = append(records, rec)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to serialize history: %w", err)
	}
	return string(data), nil
}

// UnmarshalHistory reconstructs an audit trail from its JSON storage form.
func UnmarshalHistory(raw string) ([]HistoryEntry, error) {
	if raw == "" {
		return nil, nil
	}

	var records []historyRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}

	entries := make([]HistoryEntry, 0, len(records))
	for _, rec := range records {
		switch rec.Kind {
		case KindCreated:
			amount, err := recordAmount(rec)
			if err != nil {
				return nil, err
			}
			entries = append(entries, &CreatedEntry{By: rec.By, Amount: amount, Message: recordMessage(rec), Timestamp: rec.Timestamp})
		case KindAccepted:
			entries = append(entries, &AcceptedEntry{By: rec.By, Timestamp: rec.Timestamp})
		case KindRejected:
			entries = append(entries, &RejectedEntry{By: rec.By, Timestamp: rec.Timestamp})
		case KindCountered:
			amount, err := recordAmount(rec)
			if err != nil {
				return nil, err
			}
			entries = append(entries, &CounteredEntry{By: rec.By, Amount: amount, Message: recordMessage(rec), Timestamp: rec.Timestamp})
		case KindCounterAccepted:
			entries = append(entries, &CounterAcceptedEntry{By: rec.By, Message: recordMessage(rec), Timestamp: rec.Timestamp})
		case KindCounterRejected:
			entries = append(entries, &CounterRejectedEntry{By: rec.By, Message: recordMessage(rec), Timestamp: rec.Timestamp})
		default:
			return nil, fmt.Errorf("unknown history entry kind %q", rec.Kind)
		}
	}

	return entries, nil
}

func setRecordAmount(rec *historyRecord, amount *Money) {
	if amount == nil {
		return
	}
	num := amount.Numerator()
	denom := amount.Denominator()
	rec.AmountNum = &num
	rec.AmountDenom = &denom
}

func setRecordMessage(rec *historyRecord, message string) {
	if message != "" {
		rec.Message = &message
	}
}

func recordAmount(rec historyRecord) (*Money, error) {
	if rec.AmountNum == nil || rec.AmountDenom == nil {
		return nil, nil
	}
	amount, err := NewMoney(*rec.AmountNum, *rec.AmountDenom)
	if err != nil {
		return nil, fmt.Errorf("invalid history amount: %w", err)
	}
	return amount, nil
}

func recordMessage(rec historyRecord) string {
	if rec.Message == nil {
		return ""
	}
	return *rec.Message
}
