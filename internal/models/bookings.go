package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingExpired   BookingStatus = "expired"
	BookingCompleted BookingStatus = "completed"
)

// BookingHoldPeriod is how long a pending booking waits for confirmation.
const BookingHoldPeriod = 24 * time.Hour

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingExpired, BookingCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition may leave this status.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCancelled || s == BookingExpired || s == BookingCompleted
}

type DurationUnit string

const (
	DurationDay   DurationUnit = "day"
	DurationWeek  DurationUnit = "week"
	DurationMonth DurationUnit = "month"
	DurationYear  DurationUnit = "year"
)

func (u DurationUnit) Valid() bool {
	switch u {
	case DurationDay, DurationWeek, DurationMonth, DurationYear:
		return true
	}
	return false
}

type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RenterID      primitive.ObjectID `bson:"renter_id" json:"renter_id"`
	ListingID     primitive.ObjectID `bson:"listing_id" json:"listing_id"`
	RoomID        primitive.ObjectID `bson:"room_id" json:"room_id"`
	BookingNumber string             `bson:"booking_number" json:"booking_number"`
	StartDate     time.Time          `bson:"start_date" json:"start_date"`
	EndDate       time.Time          `bson:"end_date,omitempty" json:"end_date,omitempty"`
	DurationCount int                `bson:"duration_count" json:"duration_count"`
	DurationUnit  DurationUnit       `bson:"duration_unit" json:"duration_unit"`
	UnitPrice     float64            `bson:"unit_price" json:"unit_price"`
	AdminFee      float64            `bson:"admin_fee" json:"admin_fee"`
	TotalDue      float64            `bson:"total_due" json:"total_due"`
	PaymentMethod string             `bson:"payment_method" json:"payment_method"`
	// status to track booking state, see BookingStatus
	Status    BookingStatus `bson:"status" json:"status"`
	Note      string        `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
	ExpiresAt time.Time     `bson:"expires_at" json:"expires_at"`

	// ListingName is filled in on reads and never stored.
	ListingName string `bson:"-" json:"listing_name,omitempty"`
}

// IsExpired reports whether a pending booking has outlived its hold period.
func (b *Booking) IsExpired(now time.Time) bool {
	return b.Status == BookingPending && now.After(b.ExpiresAt)
}

// ApplyExpiry rewrites the in-memory status to expired when the hold period
// has passed and reports whether it did so.
func (b *Booking) ApplyExpiry(now time.Time) bool {
	if !b.IsExpired(now) {
		return false
	}
	b.Status = BookingExpired
	return true
}
