package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/kost/internal/helpers"
	"github.com/joshua-takyi/kost/internal/models"
	"github.com/joshua-takyi/kost/internal/services"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

func CreateListing(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var listing models.Listing
		if err := c.ShouldBindJSON(&listing); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := l.CreateListing(c.Request.Context(), actorFrom(claims), &listing)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Listing created successfully"))
	}
}

// ListListings serves ?page=&limit= pagination; bad values fall back to defaults.
func ListListings(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))
		if err != nil || limit < 1 {
			limit = defaultPageLimit
		}
		if limit > maxPageLimit {
			limit = maxPageLimit
		}

		listings, total, err := l.ListListings(c.Request.Context(), (page-1)*limit, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.PaginatedResponse(listings, page, limit, total))
	}
}

func GetListing(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listing, err := l.GetListing(c.Request.Context(), helpers.StringTrim(c.Param("id")))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(listing, ""))
	}
}

func UpdateListingStatus(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var req struct {
			Status models.ListingStatus `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		listing, err := l.SetListingStatus(c.Request.Context(), actorFrom(claims), helpers.StringTrim(c.Param("id")), req.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(listing, "Listing status updated"))
	}
}

func ListOwnerListings(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := l.ListListingsByOwner(c.Request.Context(), helpers.StringTrim(c.Param("owner_id")))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(listings, ""))
	}
}
