package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/kost/internal/helpers"
	"github.com/joshua-takyi/kost/internal/models"
	"github.com/joshua-takyi/kost/internal/services"
)

// currentClaims returns the caller's claims or writes a 401 and returns false.
func currentClaims(c *gin.Context) (*helpers.EnhancedClaims, bool) {
	user, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
		return nil, false
	}
	claims, ok := user.(*helpers.EnhancedClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid user claims"))
		return nil, false
	}
	return claims, true
}

func actorFrom(claims *helpers.EnhancedClaims) services.Actor {
	return services.Actor{ID: claims.UserID, Role: models.Role(claims.Role)}
}

// respondError maps service errors onto status codes. Store failures are
// attached to the context for logging and answered with a generic message.
func respondError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, models.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrInvalidTransition), errors.Is(err, models.ErrConflict):
		status = http.StatusConflict
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("internal server error"))
		return
	}
	c.JSON(status, models.ErrorResponse(err.Error()))
}
