package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageRepo interface {
	CreateMessage(ctx context.Context, msg *Message) (*Message, error)
	// ListThreadMessages returns the messages of one listing exchanged between
	// two users, oldest first.
	ListThreadMessages(ctx context.Context, listingID, userA, userB primitive.ObjectID) ([]*Message, error)
	// ListMessagesByParticipant returns every message the user sent or
	// received, newest first, later-stored first on equal timestamps.
	ListMessagesByParticipant(ctx context.Context, userID primitive.ObjectID) ([]*Message, error)
	MarkThreadRead(ctx context.Context, listingID, receiverID, senderID primitive.ObjectID) (int64, error)
}

func (mdb *MongodbRepo) CreateMessage(ctx context.Context, msg *Message) (*Message, error) {
	col, err := mdb.GetCollection(MessageColName)
	if err != nil {
		return nil, err
	}

	doc := *msg
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if _, err := col.InsertOne(ctx, doc); err != nil {
		return nil, storeErr("inserting message", err)
	}
	return &doc, nil
}

func (mdb *MongodbRepo) ListThreadMessages(ctx context.Context, listingID, userA, userB primitive.ObjectID) ([]*Message, error) {
	filter := bson.M{
		"listing_id": listingID,
		"$or": bson.A{
			bson.M{"sender_id": userA, "receiver_id": userB},
			bson.M{"sender_id": userB, "receiver_id": userA},
		},
	}
	sort := bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}
	return mdb.findMessages(ctx, filter, sort)
}

func (mdb *MongodbRepo) ListMessagesByParticipant(ctx context.Context, userID primitive.ObjectID) ([]*Message, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"sender_id": userID},
			bson.M{"receiver_id": userID},
		},
	}
	sort := bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
	return mdb.findMessages(ctx, filter, sort)
}

func (mdb *MongodbRepo) MarkThreadRead(ctx context.Context, listingID, receiverID, senderID primitive.ObjectID) (int64, error) {
	col, err := mdb.GetCollection(MessageColName)
	if err != nil {
		return 0, err
	}

	filter := bson.M{
		"listing_id":  listingID,
		"receiver_id": receiverID,
		"sender_id":   senderID,
		"is_read":     false,
	}
	res, err := col.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return 0, storeErr("marking messages read", err)
	}
	return res.ModifiedCount, nil
}

func (mdb *MongodbRepo) findMessages(ctx context.Context, filter bson.M, sort bson.D) ([]*Message, error) {
	col, err := mdb.GetCollection(MessageColName)
	if err != nil {
		return nil, err
	}

	cursor, err := col.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, storeErr("finding messages", err)
	}
	defer cursor.Close(ctx)

	messages := make([]*Message, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, storeErr("decoding messages", err)
	}
	return messages, nil
}
