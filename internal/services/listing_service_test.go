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

func TestListingService_CreateListing_RenterForbidden(t *testing.T) {
	repo := new(mocks.ListingRepo)
	svc := NewListingService(repo, models.NopListingCache{}, fixedClock{now: testNow}, discardLogger())

	_, err := svc.CreateListing(context.Background(), Actor{ID: primitive.NewObjectID().Hex(), Role: models.RoleRenter}, &models.Listing{Name: "Kost", Address: "Jl. Mawar 1"})

	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestListingService_CreateListing_StampsOwner(t *testing.T) {
	repo := new(mocks.ListingRepo)
	svc := NewListingService(repo, models.NopListingCache{}, fixedClock{now: testNow}, discardLogger())
	owner := primitive.NewObjectID()

	repo.On("CreateListing", mock.Anything, mock.MatchedBy(func(l *models.Listing) bool {
		return l.OwnerID == owner && l.Status == models.ListingActive && l.CreatedAt.Equal(testNow) && l.ID.IsZero()
	})).Return(&models.Listing{ID: primitive.NewObjectID(), OwnerID: owner}, nil)

	listing, err := svc.CreateListing(context.Background(), Actor{ID: owner.Hex(), Role: models.RoleOwner}, &models.Listing{
		ID:      primitive.NewObjectID(),
		Name:    " Kost Mawar ",
		Address: "Jl. Mawar 1",
		OwnerID: primitive.NewObjectID(),
	})

	require.NoError(t, err)
	assert.Equal(t, owner, listing.OwnerID)
	repo.AssertExpectations(t)
}

func TestListingService_GetListing_ReadThroughCache(t *testing.T) {
	repo, cache := new(mocks.ListingRepo), new(mocks.ListingCache)
	svc := NewListingService(repo, cache, fixedClock{now: testNow}, discardLogger())
	stored := &models.Listing{ID: primitive.NewObjectID(), Name: "Kost"}

	cache.On("GetListing", mock.Anything, stored.ID.Hex()).Return(nil, nil).Once()
	repo.On("GetListingByID", mock.Anything, stored.ID).Return(stored, nil).Once()
	cache.On("SetListing", mock.Anything, stored).Return(nil).Once()

	got, err := svc.GetListing(context.Background(), stored.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Kost", got.Name)

	cache.On("GetListing", mock.Anything, stored.ID.Hex()).Return(stored, nil).Once()
	got, err = svc.GetListing(context.Background(), stored.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	repo.AssertNumberOfCalls(t, "GetListingByID", 1)
	cache.AssertExpectations(t)
}

func TestListingService_SetListingStatus_InvalidatesCache(t *testing.T) {
	repo, cache := new(mocks.ListingRepo), new(mocks.ListingCache)
	svc := NewListingService(repo, cache, fixedClock{now: testNow}, discardLogger())
	owner := primitive.NewObjectID()
	listing := &models.Listing{ID: primitive.NewObjectID(), OwnerID: owner, Status: models.ListingActive}
	inactive := *listing
	inactive.Status = models.ListingInactive

	repo.On("GetListingByID", mock.Anything, listing.ID).Return(listing, nil)
	repo.On("UpdateListingStatus", mock.Anything, listing.ID, models.ListingInactive).Return(&inactive, nil)
	cache.On("DeleteListing", mock.Anything, listing.ID.Hex()).Return(nil).Once()

	got, err := svc.SetListingStatus(context.Background(), Actor{ID: owner.Hex(), Role: models.RoleOwner}, listing.ID.Hex(), models.ListingInactive)

	require.NoError(t, err)
	assert.Equal(t, models.ListingInactive, got.Status)
	cache.AssertExpectations(t)

	_, err = svc.SetListingStatus(context.Background(), Actor{ID: primitive.NewObjectID().Hex(), Role: models.RoleOwner}, listing.ID.Hex(), models.ListingActive)
	assert.ErrorIs(t, err, models.ErrForbidden)
}
