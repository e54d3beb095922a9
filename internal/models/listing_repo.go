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

type ListingFinder interface {
	GetListingByID(ctx context.Context, id primitive.ObjectID) (*Listing, error)
}

// ListingNameResolver looks up listing names; ids without a stored listing
// are absent from the result.
type ListingNameResolver interface {
	GetListingNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error)
}

// ListingLookup is what booking reads need from the listing store.
type ListingLookup interface {
	ListingFinder
	ListingNameResolver
}

type ListingRepo interface {
	ListingLookup
	CreateListing(ctx context.Context, listing *Listing) (*Listing, error)
	ListListings(ctx context.Context, offset, limit int) ([]*Listing, int64, error)
	ListListingsByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*Listing, error)
	UpdateListingStatus(ctx context.Context, id primitive.ObjectID, status ListingStatus) (*Listing, error)
}

func (mdb *MongodbRepo) CreateListing(ctx context.Context, listing *Listing) (*Listing, error) {
	col, err := mdb.GetCollection(ListingColName)
	if err != nil {
		return nil, err
	}

	doc := *listing
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if _, err := col.InsertOne(ctx, doc); err != nil {
		return nil, storeErr("inserting listing", err)
	}
	return &doc, nil
}

func (mdb *MongodbRepo) GetListingByID(ctx context.Context, id primitive.ObjectID) (*Listing, error) {
	col, err := mdb.GetCollection(ListingColName)
	if err != nil {
		return nil, err
	}

	var listing Listing
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&listing); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: listing %s", ErrNotFound, id.Hex())
		}
		return nil, storeErr("finding listing", err)
	}
	return &listing, nil
}

func (mdb *MongodbRepo) ListListings(ctx context.Context, offset, limit int) ([]*Listing, int64, error) {
	col, err := mdb.GetCollection(ListingColName)
	if err != nil {
		return nil, 0, err
	}

	total, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, storeErr("counting listings", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	listings, err := mdb.findListings(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

func (mdb *MongodbRepo) ListListingsByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*Listing, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return mdb.findListings(ctx, bson.M{"owner_id": ownerID}, opts)
}

func (mdb *MongodbRepo) UpdateListingStatus(ctx context.Context, id primitive.ObjectID, status ListingStatus) (*Listing, error) {
	col, err := mdb.GetCollection(ListingColName)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var listing Listing
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}}, opts).Decode(&listing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: listing %s", ErrNotFound, id.Hex())
		}
		return nil, storeErr("updating listing status", err)
	}
	return &listing, nil
}

func (mdb *MongodbRepo) GetListingNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	names := make(map[primitive.ObjectID]string)
	if len(ids) == 0 {
		return names, nil
	}

	opts := options.Find().SetProjection(bson.M{"name": 1})
	listings, err := mdb.findListings(ctx, bson.M{"_id": bson.M{"$in": uniqueIDs(ids)}}, opts)
	if err != nil {
		return nil, err
	}
	for _, l := range listings {
		names[l.ID] = l.Name
	}
	return names, nil
}

func (mdb *MongodbRepo) findListings(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*Listing, error) {
	col, err := mdb.GetCollection(ListingColName)
	if err != nil {
		return nil, err
	}

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, storeErr("finding listings", err)
	}
	defer cursor.Close(ctx)

	listings := make([]*Listing, 0)
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, storeErr("decoding listings", err)
	}
	return listings, nil
}
