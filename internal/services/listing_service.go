package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joshua-takyi/kost/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ListingService struct {
	listingsRepo models.ListingRepo
	cache        models.ListingCache
	clock        Clock
	logger       *slog.Logger
}

func NewListingService(listingsRepo models.ListingRepo, cache models.ListingCache, clock Clock, logger *slog.Logger) *ListingService {
	return &ListingService{
		listingsRepo: listingsRepo,
		cache:        cache,
		clock:        clock,
		logger:       logger,
	}
}

func (ls *ListingService) CreateListing(ctx context.Context, actor Actor, listing *models.Listing) (*models.Listing, error) {
	if actor.Role != models.RoleOwner && !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only owners can create listings", models.ErrForbidden)
	}
	owner, err := models.ParseObjectID("owner id", actor.ID)
	if err != nil {
		return nil, err
	}

	listing.Name = strings.TrimSpace(listing.Name)
	listing.Address = strings.TrimSpace(listing.Address)
	if err := models.Validate.Struct(listing); err != nil {
		return nil, fmt.Errorf("%w: invalid listing data provided: %v", models.ErrValidation, err)
	}

	listing.ID = primitive.NilObjectID
	listing.OwnerID = owner
	listing.Status = models.ListingActive
	listing.CreatedAt = ls.clock.Now()

	return ls.listingsRepo.CreateListing(ctx, listing)
}

func (ls *ListingService) ListListings(ctx context.Context, offset, limit int) ([]*models.Listing, int64, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("%w: invalid offset or limit", models.ErrValidation)
	}
	return ls.listingsRepo.ListListings(ctx, offset, limit)
}

// GetListing reads through the cache; cache failures only cost a store read.
func (ls *ListingService) GetListing(ctx context.Context, listingID string) (*models.Listing, error) {
	id, err := models.ParseObjectID("listing id", listingID)
	if err != nil {
		return nil, err
	}

	cached, err := ls.cache.GetListing(ctx, id.Hex())
	if err != nil {
		ls.logger.Warn("Listing cache read failed", "listing_id", listingID, "error", err)
	} else if cached != nil {
		return cached, nil
	}

	listing, err := ls.listingsRepo.GetListingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ls.cache.SetListing(ctx, listing); err != nil {
		ls.logger.Warn("Listing cache write failed", "listing_id", listingID, "error", err)
	}
	return listing, nil
}

// SetListingStatus activates or deactivates a listing and drops its cached copy.
func (ls *ListingService) SetListingStatus(ctx context.Context, actor Actor, listingID string, status models.ListingStatus) (*models.Listing, error) {
	id, err := models.ParseObjectID("listing id", listingID)
	if err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unsupported listing status %q", models.ErrValidation, status)
	}

	listing, err := ls.listingsRepo.GetListingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManageListing(actor, listing) {
		return nil, fmt.Errorf("%w: only the listing owner can change its status", models.ErrForbidden)
	}

	updated, err := ls.listingsRepo.UpdateListingStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if err := ls.cache.DeleteListing(ctx, id.Hex()); err != nil {
		ls.logger.Warn("Listing cache invalidation failed", "listing_id", listingID, "error", err)
	}
	return updated, nil
}

func (ls *ListingService) ListListingsByOwner(ctx context.Context, ownerID string) ([]*models.Listing, error) {
	owner, err := models.ParseObjectID("owner id", ownerID)
	if err != nil {
		return nil, err
	}
	return ls.listingsRepo.ListListingsByOwner(ctx, owner)
}
