package services

import (
	"context"
	"log/slog"

	"github.com/joshua-takyi/kost/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionService serves the payment history, newest first.
type TransactionService struct {
	transactionsRepo models.TransactionRepo
	listingNames     models.ListingNameResolver
	logger           *slog.Logger
}

func NewTransactionService(transactionsRepo models.TransactionRepo, listingNames models.ListingNameResolver, logger *slog.Logger) *TransactionService {
	return &TransactionService{
		transactionsRepo: transactionsRepo,
		listingNames:     listingNames,
		logger:           logger,
	}
}

func (ts *TransactionService) ListAll(ctx context.Context, actor Actor) ([]*models.Transaction, error) {
	if err := requireAdmin(actor, "transactions"); err != nil {
		return nil, err
	}
	transactions, err := ts.transactionsRepo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return ts.withListingNames(ctx, transactions), nil
}

func (ts *TransactionService) ListByUser(ctx context.Context, actor Actor, userID string) ([]*models.Transaction, error) {
	if err := requireSelfOrAdmin(actor, userID, "transactions"); err != nil {
		return nil, err
	}
	user, err := models.ParseObjectID("user id", userID)
	if err != nil {
		return nil, err
	}
	transactions, err := ts.transactionsRepo.ListTransactionsByUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return ts.withListingNames(ctx, transactions), nil
}

func (ts *TransactionService) withListingNames(ctx context.Context, transactions []*models.Transaction) []*models.Transaction {
	if transactions == nil {
		return []*models.Transaction{}
	}
	ids := make([]primitive.ObjectID, 0, len(transactions))
	for _, tx := range transactions {
		ids = append(ids, tx.ListingID)
	}
	names := lookupListingNames(ctx, ts.listingNames, ts.logger, ids)
	for _, tx := range transactions {
		tx.ListingName = names[tx.ListingID]
	}
	return transactions
}
