package repository

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/errors"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the interface for review-related database operations.
type ReviewRepository interface {
	// ListReviews returns one page of reviews, newest first. An empty status lists every review.
	ListReviews(ctx context.Context, status entity.ReviewStatus, page Page) ([]*entity.Review, int64, error)

	// CreateReview persists a new review.
	CreateReview(ctx context.Context, review *entity.Review) error

	// UpdateReviewStatus moderates a review.
	UpdateReviewStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error

	// DeleteReview removes a review.
	DeleteReview(ctx context.Context, id uuid.UUID) error

	// UnlinkReviewsFromUser clears user_id on every review of userID.
	UnlinkReviewsFromUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
