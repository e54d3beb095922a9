package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

type Room struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ListingID   primitive.ObjectID `bson:"listing_id" json:"listing_id"`
	Number      string             `bson:"room_number" json:"room_number" validate:"required,max=20"`
	Price       float64            `bson:"price" json:"price" validate:"gte=0"`
	Description string             `bson:"description" json:"description"`
	Status      RoomStatus         `bson:"status" json:"status" validate:"omitempty,oneof=available occupied maintenance"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// RoomUpdate carries the editable room fields; nil fields are left as they are.
type RoomUpdate struct {
	Number      *string     `json:"room_number" validate:"omitempty,min=1,max=20"`
	Price       *float64    `json:"price" validate:"omitempty,gte=0"`
	Description *string     `json:"description"`
	Status      *RoomStatus `json:"status" validate:"omitempty,oneof=available occupied maintenance"`
}
