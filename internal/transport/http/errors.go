package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	listingdomain "github.com/avick-dev/bizmarket-service/internal/app/listing/domain"
	offerdomain "github.com/avick-dev/bizmarket-service/internal/app/offer/domain"
	userdomain "github.com/avick-dev/bizmarket-service/internal/app/user/domain"
	"github.com/avick-dev/bizmarket-service/internal/pkg/committer"
)

// respondError translates domain errors into HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, offerdomain.ErrOfferNotFound),
		errors.Is(err, offerdomain.ErrProductNotFound),
		errors.Is(err, offerdomain.ErrUserNotFound),
		errors.Is(err, userdomain.ErrUserNotFound),
		errors.Is(err, listingdomain.ErrListingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, userdomain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	case errors.Is(err, offerdomain.ErrNotSeller),
		errors.Is(err, offerdomain.ErrNotBuyer),
		errors.Is(err, offerdomain.ErrNotListingOwner),
		errors.Is(err, offerdomain.ErrBuyerRoleRequired),
		errors.Is(err, offerdomain.ErrSellerRoleRequired),
		errors.Is(err, listingdomain.ErrSellerRoleRequired),
		errors.Is(err, listingdomain.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	case errors.Is(err, offerdomain.ErrInvalidTransition),
		errors.Is(err, committer.ErrVersionConflict),
		errors.Is(err, listingdomain.ErrAlreadyInactive),
		errors.Is(err, userdomain.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, offerdomain.ErrNegativeAmount),
		errors.Is(err, offerdomain.ErrSelfOffer),
		errors.Is(err, offerdomain.ErrUnknownCounterResponse),
		errors.Is(err, offerdomain.ErrMoneyOverflow),
		errors.Is(err, userdomain.ErrInvalidRole),
		errors.Is(err, userdomain.ErrInvalidArgument),
		errors.Is(err, listingdomain.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, offerdomain.ErrUnavailable),
		errors.Is(err, userdomain.ErrUnavailable),
		errors.Is(err, listingdomain.ErrUnavailable):
		log.Error().Err(err).Msg("storage unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})

	default:
		log.Error().Err(err).Msg("unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
