package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ListingStatus string

const (
	ListingActive   ListingStatus = "active"
	ListingInactive ListingStatus = "inactive"
)

func (s ListingStatus) Valid() bool {
	return s == ListingActive || s == ListingInactive
}

// Listing is a boarding house offered on the marketplace.
type Listing struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" validate:"required,max=150"`
	Description string             `bson:"description" json:"description" validate:"max=5000"`
	Address     string             `bson:"address" json:"address" validate:"required"`
	Price       float64            `bson:"price" json:"price" validate:"gte=0"`
	Photos      []string           `bson:"photos" json:"photos" validate:"dive,url"`
	Facilities  []string           `bson:"facilities" json:"facilities"`
	OwnerID     primitive.ObjectID `bson:"owner_id" json:"owner_id"`
	// e.g. "male", "female", "mixed"
	Kind      string        `bson:"kind" json:"kind"`
	Status    ListingStatus `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}
