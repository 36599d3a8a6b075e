package impl

import (
	"context"
	"strings"
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	mockRepo "portal/internal/mocks/repository"
	mockService "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contentFixture struct {
	profiles *mockRepo.MockProfileRepository
	content  *mockService.MockContentClient
	assets   *mockService.MockAssetStore
	cache    *mockService.MockCache
	routes   *mockService.MockRouteCache
	srv      usecase.ContentUsecase
}

func newContentFixture(t *testing.T) *contentFixture {
	t.Helper()
	f := &contentFixture{
		profiles: mockRepo.NewMockProfileRepository(t),
		content:  mockService.NewMockContentClient(t),
		assets:   mockService.NewMockAssetStore(t),
		cache:    mockService.NewMockCache(t),
		routes:   mockService.NewMockRouteCache(t),
	}
	f.srv = NewContentService(ContentServiceParams{
		Config:  newTestConfig(),
		Gate:    newTestGate(f.profiles),
		Content: f.content,
		Assets:  f.assets,
		Cache:   f.cache,
		Routes:  f.routes,
		Logger:  newDiscardLogger(),
	})

	return f
}

func TestContentService_GetPageCachesMiss(t *testing.T) {
	f := newContentFixture(t)
	page := &entity.Page{Slug: "faq", Title: "FAQ", Type: entity.PageTypePage}

	f.cache.EXPECT().GetJSON(mock.Anything, "content:page:faq", mock.Anything).Return(false, nil).Once()
	f.content.EXPECT().FetchPage(mock.Anything, "faq").Return(page, nil).Once()
	f.cache.EXPECT().SetJSON(mock.Anything, "content:page:faq", page, newTestConfig().Redis.ContentTTL).Return(nil).Once()

	got, err := f.srv.GetPage(context.Background(), " /faq/ ")

	require.NoError(t, err)
	assert.Equal(t, page, got)
}

func TestContentService_GetPageServesHit(t *testing.T) {
	f := newContentFixture(t)
	f.cache.EXPECT().GetJSON(mock.Anything, "content:page:faq", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
			*(dest.(*entity.Page)) = entity.Page{Slug: "faq", Title: "Cached"}

			return true, nil
		}).Once()

	got, err := f.srv.GetPage(context.Background(), "faq")

	require.NoError(t, err)
	assert.Equal(t, "Cached", got.Title)
}

func TestContentService_GetPageNotFound(t *testing.T) {
	f := newContentFixture(t)
	f.cache.EXPECT().GetJSON(mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()
	f.content.EXPECT().FetchPage(mock.Anything, "gone").Return(nil, service.ErrContentNotFound).Once()

	_, err := f.srv.GetPage(context.Background(), "gone")

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestContentService_GetPageRequiresSlug(t *testing.T) {
	f := newContentFixture(t)

	_, err := f.srv.GetPage(context.Background(), " / ")

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestContentService_ListPlansSurvivesCacheOutage(t *testing.T) {
	f := newContentFixture(t)
	plans := []*entity.Product{{Slug: "monthly", Active: true}}
	f.cache.EXPECT().GetJSON(mock.Anything, cacheKeyPlans, mock.Anything).Return(false, errors.New("redis down")).Once()
	f.content.EXPECT().ListProducts(mock.Anything, true).Return(plans, nil).Once()
	f.cache.EXPECT().SetJSON(mock.Anything, cacheKeyPlans, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

	got, err := f.srv.ListPlans(context.Background())

	require.NoError(t, err)
	assert.Equal(t, plans, got)
}

func TestContentService_CreateProductInvalidatesPlans(t *testing.T) {
	f := newContentFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)

	f.content.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		return p.Slug == "annual" && p.MaxConnections == defaultMaxConnections
	})).Return(&entity.Product{ID: "p-1", Slug: "annual"}, nil).Once()
	f.routes.EXPECT().Invalidate(mock.Anything, pathHome, pathPlans, pathAdminProducts).Return(nil).Once()
	f.cache.EXPECT().Delete(mock.Anything, cacheKeyPlans).Return(nil).Once()

	product, err := f.srv.CreateProduct(ctx, usecase.CreateProductInput{
		Title:          "Annual",
		Slug:           "/annual/",
		Price:          decimal.RequireFromString("99.00"),
		DurationMonths: 12,
	})

	require.NoError(t, err)
	assert.Equal(t, "p-1", product.ID)
}

func TestContentService_CreateProductRejectsNegativePrice(t *testing.T) {
	f := newContentFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleSuperAdmin)

	_, err := f.srv.CreateProduct(ctx, usecase.CreateProductInput{
		Title: "Broken", Slug: "broken", Price: decimal.NewFromInt(-1), DurationMonths: 1,
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestContentService_UploadProductImage(t *testing.T) {
	f := newContentFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleAdmin)
	body := []byte("\x89PNG\r\n\x1a\nfake")

	var storedKey string
	f.assets.EXPECT().Upload(mock.Anything, mock.Anything, "image/png", body).
		RunAndReturn(func(_ context.Context, key, _ string, _ []byte) (string, error) {
			storedKey = key

			return "https://cdn.shop.test/" + key, nil
		}).Once()
	f.content.EXPECT().PatchProduct(mock.Anything, "p-1", mock.MatchedBy(func(p service.ProductPatch) bool {
		return p.ImageURL != nil && strings.HasPrefix(*p.ImageURL, "https://cdn.shop.test/products/p-1/")
	})).Return(&entity.Product{ID: "p-1"}, nil).Once()
	allowInvalidate(f.routes, 3)
	f.cache.EXPECT().Delete(mock.Anything, cacheKeyPlans).Return(nil).Once()

	_, err := f.srv.UploadProductImage(ctx, "p-1", usecase.UploadImageInput{
		Filename: "logo.png", ContentType: "image/png", Body: body,
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(storedKey, "products/p-1/"))
	assert.True(t, strings.HasSuffix(storedKey, ".png"))
	assert.Len(t, strings.TrimSuffix(strings.TrimPrefix(storedKey, "products/p-1/"), ".png"), checksumKeyLength)
}

func TestContentService_UploadProductImageRejections(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.UploadImageInput
	}{
		{name: "empty", input: usecase.UploadImageInput{ContentType: "image/png"}},
		{name: "too large", input: usecase.UploadImageInput{ContentType: "image/png", Body: make([]byte, 2048)}},
		{name: "not an image", input: usecase.UploadImageInput{ContentType: "application/pdf", Body: []byte("%PDF")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newContentFixture(t)
			ctx, _ := signedIn(f.profiles, entity.RoleAdmin)

			_, err := f.srv.UploadProductImage(ctx, "p-1", tt.input)

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}
