package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avick-dev/bizmarket-service/internal/app/offer/domain"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/queries/product_offers"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/queries/received_offers"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/queries/sent_offers"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/usecases/accept_offer"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/usecases/counter_offer"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/usecases/create_offer"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/usecases/reject_offer"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/usecases/respond_counter"
)

// OfferHandler serves the negotiation endpoints.
type OfferHandler struct {
	create   *create_offer.Interactor
	accept   *accept_offer.Interactor
	reject   *reject_offer.Interactor
	counter  *counter_offer.Interactor
	respond  *respond_counter.Interactor
	received *received_offers.Query
	sent     *sent_offers.Query
	byProd   *product_offers.Query
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(
	create *create_offer.Interactor,
	accept *accept_offer.Interactor,
	reject *reject_offer.Interactor,
	counter *counter_offer.Interactor,
	respond *respond_counter.Interactor,
	received *received_offers.Query,
	sent *sent_offers.Query,
	byProd *product_offers.Query,
) *OfferHandler {
	return &OfferHandler{
		create:   create,
		accept:   accept,
		reject:   reject,
		counter:  counter,
		respond:  respond,
		received: received,
		sent:     sent,
		byProd:   byProd,
	}
}

type createOfferRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Amount    float64 `json:"amount"`
	Message   string  `json:"message"`
}

// Create handles POST /api/v1/offers.
func (h *OfferHandler) Create(c *gin.Context) {
	var req createOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount, err := domain.NewMoneyFromFloat(req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	offerID, err := h.create.Execute(c.Request.Context(), &create_offer.Request{
		ProductID: req.ProductID,
		Amount:    amount,
		Message:   req.Message,
		ActorID:   actorID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"offer_id": offerID})
}

// Accept handles POST /api/v1/offers/:id/accept.
// On success the response carries both parties' current contact details.
func (h *OfferHandler) Accept(c *gin.Context) {
	result, err := h.accept.Execute(c.Request.Context(), &accept_offer.Request{
		OfferID: c.Param("id"),
		ActorID: actorID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         string(domain.StatusAccepted),
		"buyer_contact":  result.BuyerContact,
		"seller_contact": result.SellerContact,
	})
}

// Reject handles POST /api/v1/offers/:id/reject.
func (h *OfferHandler) Reject(c *gin.Context) {
	err := h.reject.Execute(c.Request.Context(), &reject_offer.Request{
		OfferID: c.Param("id"),
		ActorID: actorID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": string(domain.StatusRejected)})
}

type counterOfferRequest struct {
	Amount  float64 `json:"amount"`
	Message string  `json:"message"`
}

// Counter handles POST /api/v1/offers/:id/counter.
func (h *OfferHandler) Counter(c *gin.Context) {
	var req counterOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount, err := domain.NewMoneyFromFloat(req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	err = h.counter.Execute(c.Request.Context(), &counter_offer.Request{
		OfferID:        c.Param("id"),
		CounterAmount:  amount,
		CounterMessage: req.Message,
		ActorID:        actorID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": string(domain.StatusCountered)})
}

type respondCounterRequest struct {
	Response string `json:"response" binding:"required"`
	Message  string `json:"message"`
}

// Respond handles POST /api/v1/offers/:id/respond.
// Accepting the counter discloses both parties' contact details.
func (h *OfferHandler) Respond(c *gin.Context) {
	var req respondCounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.respond.Execute(c.Request.Context(), &respond_counter.Request{
		OfferID:      c.Param("id"),
		ResponseType: req.Response,
		Message:      req.Message,
		ActorID:      actorID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if result == nil {
		c.JSON(http.StatusOK, gin.H{"status": string(domain.StatusCounterRejected)})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":         string(domain.StatusCounterAccepted),
		"buyer_contact":  result.BuyerContact,
		"seller_contact": result.SellerContact,
	})
}

// Received handles GET /api/v1/offers/received.
func (h *OfferHandler) Received(c *gin.Context) {
	offers, err := h.received.Execute(c.Request.Context(), &received_offers.Request{
		SellerID: actorID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

// Sent handles GET /api/v1/offers/sent.
func (h *OfferHandler) Sent(c *gin.Context) {
	offers, err := h.sent.Execute(c.Request.Context(), &sent_offers.Request{
		BuyerID: actorID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

// ByProduct handles GET /api/v1/listings/:id/offers.
func (h *OfferHandler) ByProduct(c *gin.Context) {
	offers, err := h.byProd.Execute(c.Request.Context(), &product_offers.Request{
		ProductID: c.Param("id"),
		ActorID:   actorID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offers": offers})
}
