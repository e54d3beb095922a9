package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/kost/internal/helpers"
	"github.com/joshua-takyi/kost/internal/models"
	"github.com/joshua-takyi/kost/internal/services"
)

func SendMessage(m *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var req services.SendMessageInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		msg, err := m.Send(c.Request.Context(), claims.UserID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(msg, ""))
	}
}

func GetThread(m *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		listingID := helpers.StringTrim(c.Param("listing_id"))
		user1 := helpers.StringTrim(c.Param("user1_id"))
		user2 := helpers.StringTrim(c.Param("user2_id"))
		if !claims.IsOwner(user1) && !claims.IsOwner(user2) && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("you are not part of this conversation"))
			return
		}

		messages, err := m.ListThread(c.Request.Context(), listingID, user1, user2)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(messages, ""))
	}
}

func ListChatRooms(m *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		rooms, err := m.ListRoomsForUser(c.Request.Context(), claims.UserID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(rooms, ""))
	}
}

func MarkThreadRead(m *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		updated, err := m.MarkThreadRead(c.Request.Context(),
			helpers.StringTrim(c.Param("listing_id")),
			claims.UserID,
			helpers.StringTrim(c.Param("user_id")),
		)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"updated": updated}, ""))
	}
}
