package services

import (
	"context"

	"github.com/joshua-takyi/kost/internal/models"
)

type FavouriteService struct {
	favouritesRepo models.FavouriteRepo
	clock          Clock
}

func NewFavouriteService(favouritesRepo models.FavouriteRepo, clock Clock) *FavouriteService {
	return &FavouriteService{
		favouritesRepo: favouritesRepo,
		clock:          clock,
	}
}

func (fs *FavouriteService) AddToFavourites(ctx context.Context, userID, listingID string) (*models.Favourite, error) {
	user, err := models.ParseObjectID("user id", userID)
	if err != nil {
		return nil, err
	}
	listing, err := models.ParseObjectID("listing id", listingID)
	if err != nil {
		return nil, err
	}
	return fs.favouritesRepo.AddToFavourites(ctx, user, listing, fs.clock.Now())
}

func (fs *FavouriteService) RemoveFromFavourites(ctx context.Context, userID, listingID string) error {
	user, err := models.ParseObjectID("user id", userID)
	if err != nil {
		return err
	}
	listing, err := models.ParseObjectID("listing id", listingID)
	if err != nil {
		return err
	}
	return fs.favouritesRepo.RemoveFromFavourites(ctx, user, listing, fs.clock.Now())
}

func (fs *FavouriteService) GetFavouritesByUserID(ctx context.Context, userID string) (*models.Favourite, error) {
	user, err := models.ParseObjectID("user id", userID)
	if err != nil {
		return nil, err
	}
	return fs.favouritesRepo.GetFavouritesByUserID(ctx, user)
}
