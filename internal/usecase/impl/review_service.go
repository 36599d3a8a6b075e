package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	Gate      usecase.RoleGate
	TxManager repository.TransactionManager
	Reviews   repository.ReviewRepository
	Routes    service.RouteCache
	Logger    *slog.Logger
}

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	gate      usecase.RoleGate
	txManager repository.TransactionManager
	reviews   repository.ReviewRepository
	routes    service.RouteCache
	logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		gate:      params.Gate,
		txManager: params.TxManager,
		reviews:   params.Reviews,
		routes:    params.Routes,
		logger:    params.Logger,
	}
}

// ListApprovedReviews is the public storefront list. It needs no session.
func (srv *reviewService) ListApprovedReviews(ctx context.Context, input usecase.PageInput) (*usecase.ReviewPage, error) {
	reviews, total, err := srv.reviews.ListReviews(ctx, entity.ReviewApproved, input.ToRepository())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list approved reviews")
	}

	return &usecase.ReviewPage{Reviews: reviews, PageMeta: usecase.NewPageMeta(input, total)}, nil
}

// SubmitReview stores a pending review written by the caller.
func (srv *reviewService) SubmitReview(ctx context.Context, input usecase.SubmitReviewInput) (*entity.Review, error) {
	principal, err := srv.gate.AssertAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("review body is required")
	}

	review := &entity.Review{
		UserID: &principal.UserID,
		Rating: input.Rating,
		Body:   body,
		Status: entity.ReviewPending,
	}
	err = srv.txManager.ExecuteAs(ctx, principal.UserID, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.NewProfileRepository().FindProfileByID(ctx, principal.UserID)
		if err != nil {
			return notFound(err, repository.ErrProfileNotFound, "profile")
		}
		review.AuthorName = profile.DisplayName()

		return repoFactory.NewReviewRepository().CreateReview(ctx, review)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit review")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	invalidateRoutes(ctx, srv.routes, logger, pathAdminReviews)

	return review, nil
}

func (srv *reviewService) ListReviews(ctx context.Context, input usecase.ReviewListInput) (*usecase.ReviewPage, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}
	if input.Status != "" && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown review status")
	}

	reviews, total, err := srv.reviews.ListReviews(ctx, input.Status, input.ToRepository())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return &usecase.ReviewPage{Reviews: reviews, PageMeta: usecase.NewPageMeta(input.PageInput, total)}, nil
}

func (srv *reviewService) ModerateReview(ctx context.Context, id uuid.UUID, input usecase.ModerateReviewInput) error {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return err
	}
	if input.Status != entity.ReviewApproved && input.Status != entity.ReviewRejected {
		return domainerrors.ErrValidationFailed.WrapMessage("status must be approved or rejected")
	}

	if err := srv.reviews.UpdateReviewStatus(ctx, id, input.Status); err != nil {
		return notFound(err, repository.ErrReviewNotFound, "review")
	}

	srv.afterChange(ctx)

	return nil
}

func (srv *reviewService) DeleteReview(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return err
	}

	if err := srv.reviews.DeleteReview(ctx, id); err != nil {
		return notFound(err, repository.ErrReviewNotFound, "review")
	}

	srv.afterChange(ctx)

	return nil
}

func (srv *reviewService) afterChange(ctx context.Context) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	invalidateRoutes(ctx, srv.routes, logger, pathHome, pathReviews, pathAdminReviews)
}
