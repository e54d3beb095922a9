package services

import (
	"context"
	"testing"

	"github.com/joshua-takyi/kost/internal/mocks"
	"github.com/joshua-takyi/kost/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestContractService_ListByUser(t *testing.T) {
	repo := new(mocks.ContractRepo)
	listings := new(mocks.ListingRepo)
	svc := NewContractService(repo, listings, discardLogger())

	renter := primitive.NewObjectID()
	listing := primitive.NewObjectID()
	contract := &models.Contract{ID: primitive.NewObjectID(), RenterID: renter, ListingID: listing, ContractNumber: "KTR-001"}
	repo.On("ListContractsByParty", mock.Anything, renter).Return([]*models.Contract{contract}, nil)
	listings.On("GetListingNames", mock.Anything, []primitive.ObjectID{listing}).
		Return(map[primitive.ObjectID]string{listing: "Kost Mawar"}, nil)

	contracts, err := svc.ListByUser(context.Background(), Actor{ID: renter.Hex(), Role: models.RoleRenter}, renter.Hex())

	require.NoError(t, err)
	require.Len(t, contracts, 1)
	assert.Equal(t, "KTR-001", contracts[0].ContractNumber)
	assert.Equal(t, "Kost Mawar", contracts[0].ListingName)
}

func TestContractService_ListByUser_OtherUserForbidden(t *testing.T) {
	repo := new(mocks.ContractRepo)
	svc := NewContractService(repo, new(mocks.ListingRepo), discardLogger())

	_, err := svc.ListByUser(context.Background(), Actor{ID: primitive.NewObjectID().Hex(), Role: models.RoleOwner}, primitive.NewObjectID().Hex())

	assert.ErrorIs(t, err, models.ErrForbidden)
	repo.AssertNotCalled(t, "ListContractsByParty", mock.Anything, mock.Anything)
}

func TestContractService_ListAll(t *testing.T) {
	t.Run("admin gets an empty list", func(t *testing.T) {
		repo := new(mocks.ContractRepo)
		repo.On("ListContracts", mock.Anything).Return(nil, nil)
		svc := NewContractService(repo, new(mocks.ListingRepo), discardLogger())

		contracts, err := svc.ListAll(context.Background(), Actor{Role: models.RoleAdmin})

		require.NoError(t, err)
		assert.NotNil(t, contracts)
		assert.Empty(t, contracts)
	})

	t.Run("renter is forbidden", func(t *testing.T) {
		svc := NewContractService(new(mocks.ContractRepo), new(mocks.ListingRepo), discardLogger())

		_, err := svc.ListAll(context.Background(), Actor{ID: primitive.NewObjectID().Hex(), Role: models.RoleRenter})

		assert.ErrorIs(t, err, models.ErrForbidden)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(mocks.ContractRepo)
		repo.On("ListContracts", mock.Anything).Return(nil, models.ErrStore)
		svc := NewContractService(repo, new(mocks.ListingRepo), discardLogger())

		_, err := svc.ListAll(context.Background(), Actor{Role: models.RoleAdmin})

		assert.ErrorIs(t, err, models.ErrStore)
	})
}
