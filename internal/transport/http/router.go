// Package http wires the JSON API on top of the use case layer.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/avick-dev/bizmarket-service/internal/pkg/token"
)

// NewRouter builds the Gin engine with all routes registered.
func NewRouter(tokens *token.Manager, auth *AuthHandler, listings *ListingHandler, offers *OfferHandler, events *EventsHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", auth.Register)
	v1.POST("/auth/login", auth.Login)

	v1.GET("/listings", listings.List)
	v1.GET("/listings/:id", listings.Get)

	authed := v1.Group("", AuthRequired(tokens))

	authed.POST("/listings", listings.Create)
	authed.DELETE("/listings/:id", listings.Deactivate)
	authed.POST("/listings/:id/favorite", listings.AddFavorite)
	authed.DELETE("/listings/:id/favorite", listings.RemoveFavorite)
	authed.GET("/favorites", listings.Favorites)

	authed.POST("/offers", offers.Create)
	authed.POST("/offers/:id/accept", offers.Accept)
	authed.POST("/offers/:id/reject", offers.Reject)
	authed.POST("/offers/:id/counter", offers.Counter)
	authed.POST("/offers/:id/respond", offers.Respond)
	authed.GET("/offers/received", offers.Received)
	authed.GET("/offers/sent", offers.Sent)
	authed.GET("/listings/:id/offers", offers.ByProduct)

	authed.GET("/events", events.List)

	return router
}
