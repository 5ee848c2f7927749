package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avick-dev/bizmarket-service/internal/app/listing/queries/get_listing"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/queries/list_favorites"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/queries/list_listings"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/usecases/add_favorite"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/usecases/create_listing"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/usecases/deactivate_listing"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/usecases/remove_favorite"
)

// ListingHandler serves the catalog and bookmark endpoints.
type ListingHandler struct {
	create     *create_listing.Interactor
	deactivate *deactivate_listing.Interactor
	addFav     *add_favorite.Interactor
	removeFav  *remove_favorite.Interactor
	get        *get_listing.Query
	list       *list_listings.Query
	favorites  *list_favorites.Query
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(
	create *create_listing.Interactor,
	deactivate *deactivate_listing.Interactor,
	addFav *add_favorite.Interactor,
	removeFav *remove_favorite.Interactor,
	get *get_listing.Query,
	list *list_listings.Query,
	favorites *list_favorites.Query,
) *ListingHandler {
	return &ListingHandler{
		create:     create,
		deactivate: deactivate,
		addFav:     addFav,
		removeFav:  removeFav,
		get:        get,
		list:       list,
		favorites:  favorites,
	}
}

type createListingRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Revenue     *float64 `json:"revenue"`
	AskValue    *float64 `json:"ask_value"`
	Profit      *float64 `json:"profit"`
	Location    string   `json:"location"`
	Image       string   `json:"image"`
	Documents   []string `json:"documents"`
}

// Create handles POST /api/v1/listings.
func (h *ListingHandler) Create(c *gin.Context) {
	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	productID, err := h.create.Execute(c.Request.Context(), &create_listing.Request{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Revenue:     req.Revenue,
		AskValue:    req.AskValue,
		Profit:      req.Profit,
		Location:    req.Location,
		Image:       req.Image,
		Documents:   req.Documents,
		ActorID:     actorID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product_id": productID})
}

// Deactivate handles DELETE /api/v1/listings/:id.
func (h *ListingHandler) Deactivate(c *gin.Context) {
	err := h.deactivate.Execute(c.Request.Context(), &deactivate_listing.Request{
		ProductID: c.Param("id"),
		ActorID:   actorID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Get handles GET /api/v1/listings/:id.
func (h *ListingHandler) Get(c *gin.Context) {
	view, err := h.get.Execute(c.Request.Context(), &get_listing.Request{
		ProductID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// List handles GET /api/v1/listings.
func (h *ListingHandler) List(c *gin.Context) {
	views, err := h.list.Execute(c.Request.Context(), &list_listings.Request{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": views})
}

// AddFavorite handles POST /api/v1/listings/:id/favorite.
func (h *ListingHandler) AddFavorite(c *gin.Context) {
	err := h.addFav.Execute(c.Request.Context(), &add_favorite.Request{
		ProductID: c.Param("id"),
		ActorID:   actorID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveFavorite handles DELETE /api/v1/listings/:id/favorite.
func (h *ListingHandler) RemoveFavorite(c *gin.Context) {
	err := h.removeFav.Execute(c.Request.Context(), &remove_favorite.Request{
		ProductID: c.Param("id"),
		ActorID:   actorID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Favorites handles GET /api/v1/favorites.
func (h *ListingHandler) Favorites(c *gin.Context) {
	views, err := h.favorites.Execute(c.Request.Context(), &list_favorites.Request{
		ActorID: actorID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": views})
}
