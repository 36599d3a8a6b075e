package usecase

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase defines storefront testimonials and their moderation.
type ReviewUsecase interface {
	// ListApprovedReviews is public.
	ListApprovedReviews(ctx context.Context, input PageInput) (*ReviewPage, error)
	SubmitReview(ctx context.Context, input SubmitReviewInput) (*entity.Review, error)

	ListReviews(ctx context.Context, input ReviewListInput) (*ReviewPage, error)
	ModerateReview(ctx context.Context, id uuid.UUID, input ModerateReviewInput) error
	DeleteReview(ctx context.Context, id uuid.UUID) error
}

// SubmitReviewInput is a new testimonial.
type SubmitReviewInput struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Body   string `json:"body" validate:"required,max=2000"`
}

// ReviewListInput filters the moderation queue.
type ReviewListInput struct {
	PageInput
	Status entity.ReviewStatus `query:"status"`
}

// ModerateReviewInput approves or rejects a review.
type ModerateReviewInput struct {
	Status entity.ReviewStatus `json:"status" validate:"required"`
}

// ReviewPage is one page of reviews.
type ReviewPage struct {
	Reviews []*entity.Review `json:"reviews"`
	PageMeta
}
