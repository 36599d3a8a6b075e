package impl

import (
	"context"
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"
	mockService "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewFixture struct {
	profiles  *mockRepo.MockProfileRepository
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	reviews   *mockRepo.MockReviewRepository
	routes    *mockService.MockRouteCache
	srv       usecase.ReviewUsecase
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	f := &reviewFixture{
		profiles:  mockRepo.NewMockProfileRepository(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		reviews:   mockRepo.NewMockReviewRepository(t),
		routes:    mockService.NewMockRouteCache(t),
	}
	f.srv = NewReviewService(ReviewServiceParams{
		Gate:      newTestGate(f.profiles),
		TxManager: f.txManager,
		Reviews:   f.reviews,
		Routes:    f.routes,
		Logger:    newDiscardLogger(),
	})

	return f
}

func TestReviewService_ListApprovedIsPublic(t *testing.T) {
	f := newReviewFixture(t)
	f.reviews.EXPECT().ListReviews(mock.Anything, entity.ReviewApproved, repository.Page{Offset: 10, Limit: 10}).
		Return([]*entity.Review{{Rating: 5}}, int64(11), nil).Once()

	page, err := f.srv.ListApprovedReviews(context.Background(), usecase.PageInput{Page: 2, PageSize: 10})

	require.NoError(t, err)
	assert.Len(t, page.Reviews, 1)
	assert.Equal(t, int64(11), page.Total)
}

func TestReviewService_SubmitReviewIsPendingUnderCallerIdentity(t *testing.T) {
	f := newReviewFixture(t)
	ctx, userID := signedIn(f.profiles, entity.RoleUser)

	f.txManager.EXPECT().ExecuteAs(mock.Anything, userID, mock.Anything).RunAndReturn(runAsInTx(f.factory)).Once()
	f.factory.EXPECT().NewProfileRepository().Return(f.profiles).Once()
	f.factory.EXPECT().NewReviewRepository().Return(f.reviews).Once()
	f.reviews.EXPECT().CreateReview(mock.Anything, mock.MatchedBy(func(r *entity.Review) bool {
		return r.Status == entity.ReviewPending && *r.UserID == userID && r.Body == "Great picture"
	})).Return(nil).Once()
	f.routes.EXPECT().Invalidate(mock.Anything, pathAdminReviews).Return(nil).Once()

	review, err := f.srv.SubmitReview(ctx, usecase.SubmitReviewInput{Rating: 5, Body: "  Great picture "})

	require.NoError(t, err)
	// no full name on file, so the email is shown
	assert.Equal(t, string(entity.RoleUser)+"@shop.test", review.AuthorName)
}

func TestReviewService_SubmitReviewValidation(t *testing.T) {
	for _, input := range []usecase.SubmitReviewInput{
		{Rating: 0, Body: "ok"},
		{Rating: 6, Body: "ok"},
		{Rating: 4, Body: "   "},
	} {
		f := newReviewFixture(t)
		ctx, _ := signedIn(f.profiles, entity.RoleUser)

		_, err := f.srv.SubmitReview(ctx, input)

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestReviewService_SubmitReviewNeedsSession(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.srv.SubmitReview(context.Background(), usecase.SubmitReviewInput{Rating: 5, Body: "hi"})

	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestReviewService_Moderate(t *testing.T) {
	f := newReviewFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)
	id := uuid.New()

	f.reviews.EXPECT().UpdateReviewStatus(mock.Anything, id, entity.ReviewApproved).Return(nil).Once()
	f.routes.EXPECT().Invalidate(mock.Anything, pathHome, pathReviews, pathAdminReviews).Return(nil).Once()

	require.NoError(t, f.srv.ModerateReview(ctx, id, usecase.ModerateReviewInput{Status: entity.ReviewApproved}))
}

func TestReviewService_ModerateRejectsPending(t *testing.T) {
	f := newReviewFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)

	err := f.srv.ModerateReview(ctx, uuid.New(), usecase.ModerateReviewInput{Status: entity.ReviewPending})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_DeleteUnknown(t *testing.T) {
	f := newReviewFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleSuperAdmin)
	id := uuid.New()
	f.reviews.EXPECT().DeleteReview(mock.Anything, id).Return(repository.ErrReviewNotFound).Once()

	err := f.srv.DeleteReview(ctx, id)

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
