package services

import (
	"context"

	"github.com/joshua-takyi/kost/internal/models"
)

type CreateReviewInput struct {
	ListingID string `json:"listing_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

type ReviewService struct {
	reviewsRepo models.ReviewsRepo
	clock       Clock
}

func NewReviewService(reviewsRepo models.ReviewsRepo, clock Clock) *ReviewService {
	return &ReviewService{
		reviewsRepo: reviewsRepo,
		clock:       clock,
	}
}

func (rs *ReviewService) CreateReview(ctx context.Context, userID string, in CreateReviewInput) (*models.Review, error) {
	user, err := models.ParseObjectID("user id", userID)
	if err != nil {
		return nil, err
	}
	listing, err := models.ParseObjectID("listing_id", in.ListingID)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		ListingID: listing,
		UserID:    user,
		Rating:    in.Rating,
		Content:   in.Content,
		CreatedAt: rs.clock.Now(),
	}
	review.Sanitize()
	if err := review.ValidateReview(); err != nil {
		return nil, err
	}
	return rs.reviewsRepo.CreateReview(ctx, review)
}

func (rs *ReviewService) ListReviewsByListing(ctx context.Context, listingID string) ([]*models.Review, error) {
	listing, err := models.ParseObjectID("listing id", listingID)
	if err != nil {
		return nil, err
	}
	return rs.reviewsRepo.GetReviewsByListing(ctx, listing)
}
