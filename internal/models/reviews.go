package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ListingID primitive.ObjectID `bson:"listing_id" json:"listing_id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Rating    int                `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Content   string             `bson:"content" json:"content" validate:"required,max=2000"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
