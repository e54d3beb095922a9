package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/kost/internal/helpers"
	"github.com/joshua-takyi/kost/internal/models"
	"github.com/joshua-takyi/kost/internal/services"
)

func ListTransactions(ts *services.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		transactions, err := ts.ListAll(c.Request.Context(), actorFrom(claims))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(transactions, ""))
	}
}

func ListUserTransactions(ts *services.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		transactions, err := ts.ListByUser(c.Request.Context(), actorFrom(claims), helpers.StringTrim(c.Param("user_id")))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(transactions, ""))
	}
}
