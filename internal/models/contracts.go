package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contract is the rental agreement drawn up for a confirmed booking. The API
// only reads contracts; they are written by the back office.
type Contract struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookingID      primitive.ObjectID `bson:"booking_id" json:"booking_id"`
	RenterID       primitive.ObjectID `bson:"renter_id" json:"renter_id"`
	OwnerID        primitive.ObjectID `bson:"owner_id" json:"owner_id"`
	ListingID      primitive.ObjectID `bson:"listing_id" json:"listing_id"`
	RoomID         primitive.ObjectID `bson:"room_id" json:"room_id"`
	ContractNumber string             `bson:"contract_number" json:"contract_number"`
	StartDate      time.Time          `bson:"start_date" json:"start_date"`
	EndDate        time.Time          `bson:"end_date,omitempty" json:"end_date,omitempty"`
	DurationCount  int                `bson:"duration_count" json:"duration_count"`
	DurationUnit   DurationUnit       `bson:"duration_unit" json:"duration_unit"`
	Rent           float64            `bson:"rent" json:"rent"`
	TotalPaid      float64            `bson:"total_paid" json:"total_paid"`
	Status         string             `bson:"status" json:"status"`
	Terms          []string           `bson:"terms,omitempty" json:"terms,omitempty"`
	DocumentURL    string             `bson:"document_url,omitempty" json:"document_url,omitempty"`
	SignedByRenter bool               `bson:"signed_by_renter" json:"signed_by_renter"`
	SignedByOwner  bool               `bson:"signed_by_owner" json:"signed_by_owner"`
	SignedAt       time.Time          `bson:"signed_at,omitempty" json:"signed_at,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`

	ListingName string `bson:"-" json:"listing_name,omitempty"`
}

// Transaction is one entry of a user's payment history.
type Transaction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
	ListingID   primitive.ObjectID `bson:"listing_id" json:"listing_id"`
	BookingID   primitive.ObjectID `bson:"booking_id,omitempty" json:"booking_id,omitempty"`
	Kind        string             `bson:"kind" json:"kind"`
	Amount      float64            `bson:"amount" json:"amount"`
	Method      string             `bson:"method,omitempty" json:"method,omitempty"`
	Status      string             `bson:"status" json:"status"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`

	ListingName string `bson:"-" json:"listing_name,omitempty"`
}
