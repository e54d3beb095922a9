package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RoomRepo interface {
	CreateRoom(ctx context.Context, room *Room) (*Room, error)
	GetRoomByID(ctx context.Context, id primitive.ObjectID) (*Room, error)
	ListRoomsByListing(ctx context.Context, listingID primitive.ObjectID) ([]*Room, error)
	UpdateRoom(ctx context.Context, id primitive.ObjectID, update RoomUpdate) (*Room, error)
	DeleteRoom(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateRoom(ctx context.Context, room *Room) (*Room, error) {
	col, err := mdb.GetCollection(RoomColName)
	if err != nil {
		return nil, err
	}

	doc := *room
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if _, err := col.InsertOne(ctx, doc); err != nil {
		return nil, storeErr("inserting room", err)
	}
	return &doc, nil
}

func (mdb *MongodbRepo) GetRoomByID(ctx context.Context, id primitive.ObjectID) (*Room, error) {
	col, err := mdb.GetCollection(RoomColName)
	if err != nil {
		return nil, err
	}

	var room Room
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&room); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: room %s", ErrNotFound, id.Hex())
		}
		return nil, storeErr("finding room", err)
	}
	return &room, nil
}

func (mdb *MongodbRepo) ListRoomsByListing(ctx context.Context, listingID primitive.ObjectID) ([]*Room, error) {
	col, err := mdb.GetCollection(RoomColName)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "room_number", Value: 1}})
	cursor, err := col.Find(ctx, bson.M{"listing_id": listingID}, opts)
	if err != nil {
		return nil, storeErr("finding rooms", err)
	}
	defer cursor.Close(ctx)

	rooms := make([]*Room, 0)
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, storeErr("decoding rooms", err)
	}
	return rooms, nil
}

func (mdb *MongodbRepo) UpdateRoom(ctx context.Context, id primitive.ObjectID, update RoomUpdate) (*Room, error) {
	col, err := mdb.GetCollection(RoomColName)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if update.Number != nil {
		set["room_number"] = *update.Number
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if len(set) == 0 {
		return mdb.GetRoomByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var room Room
	if err := col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&room); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: room %s", ErrNotFound, id.Hex())
		}
		return nil, storeErr("updating room", err)
	}
	return &room, nil
}

func (mdb *MongodbRepo) DeleteRoom(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(RoomColName)
	if err != nil {
		return err
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr("deleting room", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: room %s", ErrNotFound, id.Hex())
	}
	return nil
}
