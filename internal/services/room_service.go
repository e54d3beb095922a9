package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/joshua-takyi/kost/internal/models"
)

type RoomService struct {
	roomsRepo models.RoomRepo
	listings  models.ListingFinder
	clock     Clock
}

func NewRoomService(roomsRepo models.RoomRepo, listings models.ListingFinder, clock Clock) *RoomService {
	return &RoomService{
		roomsRepo: roomsRepo,
		listings:  listings,
		clock:     clock,
	}
}

type CreateRoomInput struct {
	ListingID   string            `json:"listing_id" binding:"required"`
	Number      string            `json:"room_number" binding:"required"`
	Price       float64           `json:"price"`
	Description string            `json:"description"`
	Status      models.RoomStatus `json:"status"`
}

func (rs *RoomService) ListRoomsByListing(ctx context.Context, listingID string) ([]*models.Room, error) {
	id, err := models.ParseObjectID("listing id", listingID)
	if err != nil {
		return nil, err
	}
	return rs.roomsRepo.ListRoomsByListing(ctx, id)
}

func (rs *RoomService) CreateRoom(ctx context.Context, actor Actor, in CreateRoomInput) (*models.Room, error) {
	listingID, err := models.ParseObjectID("listing_id", in.ListingID)
	if err != nil {
		return nil, err
	}
	listing, err := rs.listings.GetListingByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if !canManageListing(actor, listing) {
		return nil, fmt.Errorf("%w: only the listing owner can add rooms", models.ErrForbidden)
	}

	room := &models.Room{
		ListingID:   listingID,
		Number:      strings.TrimSpace(in.Number),
		Price:       in.Price,
		Description: strings.TrimSpace(in.Description),
		Status:      in.Status,
		CreatedAt:   rs.clock.Now(),
	}
	if room.Status == "" {
		room.Status = models.RoomAvailable
	}
	if err := models.Validate.Struct(room); err != nil {
		return nil, fmt.Errorf("%w: invalid room data provided: %v", models.ErrValidation, err)
	}
	return rs.roomsRepo.CreateRoom(ctx, room)
}

func (rs *RoomService) UpdateRoom(ctx context.Context, actor Actor, roomID string, update models.RoomUpdate) (*models.Room, error) {
	room, err := rs.authorizedRoom(ctx, actor, roomID)
	if err != nil {
		return nil, err
	}
	if err := models.Validate.Struct(update); err != nil {
		return nil, fmt.Errorf("%w: invalid room data provided: %v", models.ErrValidation, err)
	}
	return rs.roomsRepo.UpdateRoom(ctx, room.ID, update)
}

func (rs *RoomService) DeleteRoom(ctx context.Context, actor Actor, roomID string) error {
	room, err := rs.authorizedRoom(ctx, actor, roomID)
	if err != nil {
		return err
	}
	return rs.roomsRepo.DeleteRoom(ctx, room.ID)
}

func (rs *RoomService) authorizedRoom(ctx context.Context, actor Actor, roomID string) (*models.Room, error) {
	id, err := models.ParseObjectID("room id", roomID)
	if err != nil {
		return nil, err
	}
	room, err := rs.roomsRepo.GetRoomByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return room, nil
	}
	listing, err := rs.listings.GetListingByID(ctx, room.ListingID)
	if err != nil {
		return nil, err
	}
	if !canManageListing(actor, listing) {
		return nil, fmt.Errorf("%w: only the listing owner can change its rooms", models.ErrForbidden)
	}
	return room, nil
}
