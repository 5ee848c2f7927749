package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avick-dev/bizmarket-service/internal/app/offer/queries/list_events"
)

// EventsHandler serves the negotiation event feed backing integrations.
type EventsHandler struct {
	events *list_events.Query
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(events *list_events.Query) *EventsHandler {
	return &EventsHandler{events: events}
}

// Event represents a domain event in the HTTP response.
type Event struct {
	EventID     string  `json:"event_id"`
	EventType   string  `json:"event_type"`
	AggregateID string  `json:"aggregate_id"`
	Payload     string  `json:"payload"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	ProcessedAt *string `json:"processed_at,omitempty"`
}

// List handles GET /api/v1/events.
func (h *EventsHandler) List(c *gin.Context) {
	req := &list_events.Request{}

	if eventType := c.Query("event_type"); eventType != "" {
		req.EventType = &eventType
	}
	if aggregateID := c.Query("aggregate_id"); aggregateID != "" {
		req.AggregateID = &aggregateID
	}
	if status := c.Query("status"); status != "" {
		req.Status = &status
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			req.Limit = limit
		}
	}

	records, err := h.events.Execute(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	events := make([]Event, 0, len(records))
	for _, record := range records {
		event := Event{
			EventID:     record.EventID,
			EventType:   record.EventType,
			AggregateID: record.AggregateID,
			Status:      record.Status,
			CreatedAt:   record.CreatedAt.Format(time.RFC3339),
		}
		if record.Payload.Valid {
			event.Payload = record.Payload.String()
		}
		if record.ProcessedAt.Valid {
			processedAt := record.ProcessedAt.Time.Format(time.RFC3339)
			event.ProcessedAt = &processedAt
		}
		events = append(events, event)
	}

	c.JSON(http.StatusOK, gin.H{
		"events":      events,
		"total_count": len(events),
	})
}
