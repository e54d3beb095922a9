package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	GetBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error)
	ListBookingsByRenter(ctx context.Context, renterID primitive.ObjectID) ([]*Booking, error)
	ListAllBookings(ctx context.Context) ([]*Booking, error)
	// UpdateBookingStatus moves a booking from one status to another in a
	// single conditional write. It fails with ErrConflict when the stored
	// status is no longer from.
	UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, from, to BookingStatus, at time.Time) (*Booking, error)
}

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	col, err := mdb.GetCollection(BookingColName)
	if err != nil {
		return nil, err
	}

	doc := *booking
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	if _, err := col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: booking number %s already taken", ErrConflict, doc.BookingNumber)
		}
		return nil, storeErr("inserting booking", err)
	}
	return &doc, nil
}

func (mdb *MongodbRepo) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error) {
	col, err := mdb.GetCollection(BookingColName)
	if err != nil {
		return nil, err
	}

	var booking Booking
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: booking %s", ErrNotFound, id.Hex())
		}
		return nil, storeErr("finding booking", err)
	}
	return &booking, nil
}

func (mdb *MongodbRepo) ListBookingsByRenter(ctx context.Context, renterID primitive.ObjectID) ([]*Booking, error) {
	return mdb.findBookings(ctx, bson.M{"renter_id": renterID})
}

func (mdb *MongodbRepo) ListAllBookings(ctx context.Context) ([]*Booking, error) {
	return mdb.findBookings(ctx, bson.M{})
}

// findBookings returns the matching bookings newest first.
func (mdb *MongodbRepo) findBookings(ctx context.Context, filter bson.M) ([]*Booking, error) {
	col, err := mdb.GetCollection(BookingColName)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, storeErr("finding bookings", err)
	}
	defer cursor.Close(ctx)

	bookings := make([]*Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, storeErr("decoding bookings", err)
	}
	return bookings, nil
}

func (mdb *MongodbRepo) UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, from, to BookingStatus, at time.Time) (*Booking, error) {
	col, err := mdb.GetCollection(BookingColName)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"_id": id, "status": from}
	update := bson.M{
		"$set": bson.M{
			"status":     to,
			"updated_at": at,
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking Booking
	if err := col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: booking %s is no longer %s", ErrConflict, id.Hex(), from)
		}
		return nil, storeErr("updating booking status", err)
	}
	return &booking, nil
}
