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

type FavouriteItem struct {
	ListingID primitive.ObjectID `bson:"listing_id" json:"listing_id"`
	AddedAt   time.Time          `bson:"added_at" json:"added_at"`
}

// Favourite is the single per-user document holding every saved listing,
// keyed by listing hex id.
type Favourite struct {
	ID        primitive.ObjectID       `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID       `bson:"user_id" json:"user_id"`
	Items     map[string]FavouriteItem `bson:"items" json:"items"`
	CreatedAt time.Time                `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time                `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type FavouriteRepo interface {
	AddToFavourites(ctx context.Context, userID, listingID primitive.ObjectID, at time.Time) (*Favourite, error)
	RemoveFromFavourites(ctx context.Context, userID, listingID primitive.ObjectID, at time.Time) error
	GetFavouritesByUserID(ctx context.Context, userID primitive.ObjectID) (*Favourite, error)
}

func (mdb *MongodbRepo) AddToFavourites(ctx context.Context, userID, listingID primitive.ObjectID, at time.Time) (*Favourite, error) {
	col, err := mdb.GetCollection(FavouriteColName)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"updated_at": at,
			fmt.Sprintf("items.%s", listingID.Hex()): FavouriteItem{
				ListingID: listingID,
				AddedAt:   at,
			},
		},
		"$setOnInsert": bson.M{
			"user_id":    userID,
			"created_at": at,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result Favourite
	if err := col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result); err != nil {
		return nil, storeErr("upserting favourite", err)
	}
	return &result, nil
}

func (mdb *MongodbRepo) RemoveFromFavourites(ctx context.Context, userID, listingID primitive.ObjectID, at time.Time) error {
	col, err := mdb.GetCollection(FavouriteColName)
	if err != nil {
		return err
	}

	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$unset": bson.M{
			fmt.Sprintf("items.%s", listingID.Hex()): "",
		},
		"$set": bson.M{
			"updated_at": at,
		},
	}

	if _, err := col.UpdateOne(ctx, filter, update); err != nil {
		return storeErr("removing favourite", err)
	}
	return nil
}

func (mdb *MongodbRepo) GetFavouritesByUserID(ctx context.Context, userID primitive.ObjectID) (*Favourite, error) {
	col, err := mdb.GetCollection(FavouriteColName)
	if err != nil {
		return nil, err
	}

	var fav Favourite
	if err := col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&fav); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &Favourite{UserID: userID, Items: map[string]FavouriteItem{}}, nil
		}
		return nil, storeErr("finding favourites", err)
	}
	if fav.Items == nil {
		fav.Items = map[string]FavouriteItem{}
	}
	return &fav, nil
}
