package services

import (
	"context"
	"log/slog"

	"github.com/joshua-takyi/kost/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContractService exposes rental contracts read-only.
type ContractService struct {
	contractsRepo models.ContractRepo
	listingNames  models.ListingNameResolver
	logger        *slog.Logger
}

func NewContractService(contractsRepo models.ContractRepo, listingNames models.ListingNameResolver, logger *slog.Logger) *ContractService {
	return &ContractService{
		contractsRepo: contractsRepo,
		listingNames:  listingNames,
		logger:        logger,
	}
}

func (cs *ContractService) ListAll(ctx context.Context, actor Actor) ([]*models.Contract, error) {
	if err := requireAdmin(actor, "contracts"); err != nil {
		return nil, err
	}
	contracts, err := cs.contractsRepo.ListContracts(ctx)
	if err != nil {
		return nil, err
	}
	return cs.withListingNames(ctx, contracts), nil
}

// ListByUser returns the contracts the user is a party to, as renter or owner.
func (cs *ContractService) ListByUser(ctx context.Context, actor Actor, userID string) ([]*models.Contract, error) {
	if err := requireSelfOrAdmin(actor, userID, "contracts"); err != nil {
		return nil, err
	}
	user, err := models.ParseObjectID("user id", userID)
	if err != nil {
		return nil, err
	}
	contracts, err := cs.contractsRepo.ListContractsByParty(ctx, user)
	if err != nil {
		return nil, err
	}
	return cs.withListingNames(ctx, contracts), nil
}

func (cs *ContractService) withListingNames(ctx context.Context, contracts []*models.Contract) []*models.Contract {
	if contracts == nil {
		return []*models.Contract{}
	}
	ids := make([]primitive.ObjectID, 0, len(contracts))
	for _, c := range contracts {
		ids = append(ids, c.ListingID)
	}
	names := lookupListingNames(ctx, cs.listingNames, cs.logger, ids)
	for _, c := range contracts {
		c.ListingName = names[c.ListingID]
	}
	return contracts
}
