package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/kost/internal/helpers"
	"github.com/joshua-takyi/kost/internal/models"
	"github.com/joshua-takyi/kost/internal/services"
)

func ListRooms(r *services.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rooms, err := r.ListRoomsByListing(c.Request.Context(), helpers.StringTrim(c.Param("listing_id")))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(rooms, ""))
	}
}

func CreateRoom(r *services.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var req services.CreateRoomInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		room, err := r.CreateRoom(c.Request.Context(), actorFrom(claims), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(room, "Room created successfully"))
	}
}

func UpdateRoom(r *services.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var update models.RoomUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		room, err := r.UpdateRoom(c.Request.Context(), actorFrom(claims), helpers.StringTrim(c.Param("id")), update)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(room, "Room updated"))
	}
}

func DeleteRoom(r *services.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		if err := r.DeleteRoom(c.Request.Context(), actorFrom(claims), helpers.StringTrim(c.Param("id"))); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Room deleted"))
	}
}
