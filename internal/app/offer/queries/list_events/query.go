package list_events

import (
	"context"

	"github.com/avick-dev/bizmarket-service/internal/models/m_outbox"
)

// Request contains filtering parameters for listing negotiation events.
type Request struct {
	EventType   *string // e.g. "offer.created", "offer.counter.accepted"
	AggregateID *string // offer ID
	Status      *string // "pending", "processed", "failed"
	Limit       int
}

// EventsReadModel defines the interface for reading the event feed.
type EventsReadModel interface {
	ListEvents(ctx context.Context, req *Request) ([]*m_outbox.Data, error)
}

// Query handles the list events query use case.
type Query struct {
	readModel EventsReadModel
}

// NewQuery creates a new list events query.
func NewQuery(readModel EventsReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves recent negotiation events, newest first.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*m_outbox.Data, error) {
	if req.Limit <= 0 {
		req.Limit = 100
	}
	if req.Limit > 1000 {
		req.Limit = 1000
	}

	return q.readModel.ListEvents(ctx, req)
}
