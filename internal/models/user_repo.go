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

// UserNameResolver looks up display names; ids without a stored user are
// absent from the result.
type UserNameResolver interface {
	GetUserNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error)
}

type UserRepo interface {
	UserNameResolver
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, update ProfileUpdate, at time.Time) (*User, error)
}

func (mdb *MongodbRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	col, err := mdb.GetCollection(UserColName)
	if err != nil {
		return nil, err
	}

	doc := *user
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if _, err := col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: email already in use", ErrConflict)
		}
		return nil, storeErr("inserting user", err)
	}
	return &doc, nil
}

func (mdb *MongodbRepo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	return mdb.findUser(ctx, bson.M{"_id": id})
}

func (mdb *MongodbRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return mdb.findUser(ctx, bson.M{"email": email})
}

func (mdb *MongodbRepo) UpdateUser(ctx context.Context, id primitive.ObjectID, update ProfileUpdate, at time.Time) (*User, error) {
	col, err := mdb.GetCollection(UserColName)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": at}
	if update.FullName != nil {
		set["full_name"] = *update.FullName
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.Gender != nil {
		set["gender"] = *update.Gender
	}
	if update.BirthDate != nil {
		set["birth_date"] = *update.BirthDate
	}
	if update.Address != nil {
		set["address"] = *update.Address
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user User
	if err := col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, id.Hex())
		}
		return nil, storeErr("updating user", err)
	}
	return &user, nil
}

func (mdb *MongodbRepo) GetUserNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	names := make(map[primitive.ObjectID]string)
	if len(ids) == 0 {
		return names, nil
	}

	col, err := mdb.GetCollection(UserColName)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetProjection(bson.M{"full_name": 1})
	cursor, err := col.Find(ctx, bson.M{"_id": bson.M{"$in": uniqueIDs(ids)}}, opts)
	if err != nil {
		return nil, storeErr("finding user names", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var row struct {
			ID       primitive.ObjectID `bson:"_id"`
			FullName string             `bson:"full_name"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, storeErr("decoding user name", err)
		}
		names[row.ID] = row.FullName
	}
	if err := cursor.Err(); err != nil {
		return nil, storeErr("reading user names", err)
	}
	return names, nil
}

func (mdb *MongodbRepo) findUser(ctx context.Context, filter bson.M) (*User, error) {
	col, err := mdb.GetCollection(UserColName)
	if err != nil {
		return nil, err
	}

	var user User
	if err := col.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, storeErr("finding user", err)
	}
	return &user, nil
}
