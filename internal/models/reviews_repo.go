package models

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewsRepo interface {
	CreateReview(ctx context.Context, review *Review) (*Review, error)
	GetReviewsByListing(ctx context.Context, listingID primitive.ObjectID) ([]*Review, error)
}

func (r *Review) BeforeCreate() error {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	return nil
}

func (r Review) ValidateReview() error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if r.UserID.IsZero() {
		return fmt.Errorf("%w: invalid user ID", ErrValidation)
	}
	if r.ListingID.IsZero() {
		return fmt.Errorf("%w: invalid listing ID", ErrValidation)
	}
	if r.Content == "" {
		return fmt.Errorf("%w: review content is required", ErrValidation)
	}
	return nil
}

func (r *Review) Sanitize() {
	r.Content = strings.TrimSpace(r.Content)
}

func (mdb *MongodbRepo) CreateReview(ctx context.Context, review *Review) (*Review, error) {
	review.Sanitize()
	if err := review.ValidateReview(); err != nil {
		return nil, err
	}
	if err := review.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare review for creation: %w", err)
	}

	col, err := mdb.GetCollection(ReviewColName)
	if err != nil {
		return nil, err
	}
	if _, err := col.InsertOne(ctx, review); err != nil {
		return nil, storeErr("inserting review", err)
	}
	return review, nil
}

func (mdb *MongodbRepo) GetReviewsByListing(ctx context.Context, listingID primitive.ObjectID) ([]*Review, error) {
	col, err := mdb.GetCollection(ReviewColName)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{"listing_id": listingID}, opts)
	if err != nil {
		return nil, storeErr("finding reviews", err)
	}
	defer cursor.Close(ctx)

	reviews := make([]*Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, storeErr("decoding reviews", err)
	}
	return reviews, nil
}
