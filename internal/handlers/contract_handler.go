package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/kost/internal/helpers"
	"github.com/joshua-takyi/kost/internal/models"
	"github.com/joshua-takyi/kost/internal/services"
)

func ListContracts(cs *services.ContractService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		contracts, err := cs.ListAll(c.Request.Context(), actorFrom(claims))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(contracts, ""))
	}
}

func ListUserContracts(cs *services.ContractService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		contracts, err := cs.ListByUser(c.Request.Context(), actorFrom(claims), helpers.StringTrim(c.Param("user_id")))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(contracts, ""))
	}
}
