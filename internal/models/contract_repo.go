package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ContractRepo interface {
	ListContracts(ctx context.Context) ([]*Contract, error)
	// ListContractsByParty returns the contracts the user signs as renter or
	// as owner.
	ListContractsByParty(ctx context.Context, userID primitive.ObjectID) ([]*Contract, error)
}

type TransactionRepo interface {
	ListTransactions(ctx context.Context) ([]*Transaction, error)
	ListTransactionsByUser(ctx context.Context, userID primitive.ObjectID) ([]*Transaction, error)
}

func (mdb *MongodbRepo) ListContracts(ctx context.Context) ([]*Contract, error) {
	return mdb.findContracts(ctx, bson.M{})
}

func (mdb *MongodbRepo) ListContractsByParty(ctx context.Context, userID primitive.ObjectID) ([]*Contract, error) {
	return mdb.findContracts(ctx, bson.M{"$or": bson.A{
		bson.M{"renter_id": userID},
		bson.M{"owner_id": userID},
	}})
}

func (mdb *MongodbRepo) findContracts(ctx context.Context, filter bson.M) ([]*Contract, error) {
	col, err := mdb.GetCollection(ContractColName)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, storeErr("finding contracts", err)
	}
	defer cursor.Close(ctx)

	contracts := make([]*Contract, 0)
	if err := cursor.All(ctx, &contracts); err != nil {
		return nil, storeErr("decoding contracts", err)
	}
	return contracts, nil
}

func (mdb *MongodbRepo) ListTransactions(ctx context.Context) ([]*Transaction, error) {
	return mdb.findTransactions(ctx, bson.M{})
}

func (mdb *MongodbRepo) ListTransactionsByUser(ctx context.Context, userID primitive.ObjectID) ([]*Transaction, error) {
	return mdb.findTransactions(ctx, bson.M{"user_id": userID})
}

func (mdb *MongodbRepo) findTransactions(ctx context.Context, filter bson.M) ([]*Transaction, error) {
	col, err := mdb.GetCollection(TransactionColName)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, storeErr("finding transactions", err)
	}
	defer cursor.Close(ctx)

	transactions := make([]*Transaction, 0)
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, storeErr("decoding transactions", err)
	}
	return transactions, nil
}
