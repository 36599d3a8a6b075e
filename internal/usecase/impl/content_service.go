package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	"portal/internal/usecase"
	"portal/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMaxUploadSize = 5 << 20
	checksumKeyLength    = 16

	cacheKeyGuides = "content:guides"
	cacheKeyPlans  = "content:plans"
)

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ContentServiceParams holds dependencies for contentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	Config  *config.Config
	Gate    usecase.RoleGate
	Content service.ContentClient
	Assets  service.AssetStore
	Cache   service.Cache
	Routes  service.RouteCache
	Logger  *slog.Logger
}

// contentService implements the ContentUsecase interface.
type contentService struct {
	gate          usecase.RoleGate
	content       service.ContentClient
	assets        service.AssetStore
	cache         service.Cache
	routes        service.RouteCache
	logger        *slog.Logger
	cacheTTL      time.Duration
	maxUploadSize int64
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	srv := &contentService{
		gate:          params.Gate,
		content:       params.Content,
		assets:        params.Assets,
		cache:         params.Cache,
		routes:        params.Routes,
		logger:        params.Logger,
		maxUploadSize: defaultMaxUploadSize,
	}
	if params.Config.Redis != nil {
		srv.cacheTTL = params.Config.Redis.ContentTTL
	}
	if params.Config.Assets != nil && params.Config.Assets.MaxUploadSize != "" {
		if size, err := util.ParseBytes(params.Config.Assets.MaxUploadSize); err == nil && size > 0 {
			srv.maxUploadSize = size
		} else {
			params.Logger.Warn("Ignoring invalid assets.maxUploadSize",
				slog.String("value", params.Config.Assets.MaxUploadSize))
		}
	}

	return srv
}

// GetPage is public.
func (srv *contentService) GetPage(ctx context.Context, slug string) (*entity.Page, error) {
	slug = strings.Trim(strings.TrimSpace(slug), "/")
	if slug == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("slug is required")
	}

	return cached(ctx, srv, pageCacheKey(slug), func() (*entity.Page, error) {
		page, err := srv.content.FetchPage(ctx, slug)
		if err != nil {
			return nil, contentError(err, "page")
		}

		return page, nil
	})
}

// ListGuides is public.
func (srv *contentService) ListGuides(ctx context.Context) ([]*entity.Page, error) {
	guides, err := cached(ctx, srv, cacheKeyGuides, func() (*[]*entity.Page, error) {
		pages, err := srv.content.ListPages(ctx, entity.PageTypeGuide)
		if err != nil {
			return nil, contentError(err, "guides")
		}

		return &pages, nil
	})
	if err != nil {
		return nil, err
	}

	return *guides, nil
}

// ListPlans is public and lists active products only.
func (srv *contentService) ListPlans(ctx context.Context) ([]*entity.Product, error) {
	plans, err := cached(ctx, srv, cacheKeyPlans, func() (*[]*entity.Product, error) {
		products, err := srv.content.ListProducts(ctx, true)
		if err != nil {
			return nil, contentError(err, "plans")
		}

		return &products, nil
	})
	if err != nil {
		return nil, err
	}

	return *plans, nil
}

func (srv *contentService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}

	products, err := srv.content.ListProducts(ctx, false)
	if err != nil {
		return nil, contentError(err, "products")
	}

	return products, nil
}

func (srv *contentService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}

	maxConnections := input.MaxConnections
	if maxConnections <= 0 {
		maxConnections = defaultMaxConnections
	}

	product, err := srv.content.CreateProduct(ctx, &entity.Product{
		Slug:           strings.Trim(strings.TrimSpace(input.Slug), "/"),
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		Price:          input.Price,
		DurationMonths: input.DurationMonths,
		MaxConnections: maxConnections,
		Active:         input.Active,
	})
	if err != nil {
		return nil, contentError(err, "product")
	}

	srv.afterProductChange(ctx)

	return product, nil
}

func (srv *contentService) UpdateProduct(ctx context.Context, id string, patch service.ProductPatch) (*entity.Product, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}

	product, err := srv.content.PatchProduct(ctx, id, patch)
	if err != nil {
		return nil, contentError(err, "product")
	}

	srv.afterProductChange(ctx)

	return product, nil
}

// UploadProductImage stores the binary under a content-addressed key and
// points the product at its public URL.
func (srv *contentService) UploadProductImage(ctx context.Context, id string, input usecase.UploadImageInput) (*entity.Product, error) {
	if _, err := srv.gate.AssertAdmin(ctx); err != nil {
		return nil, err
	}
	if len(input.Body) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("image is empty")
	}
	if int64(len(input.Body)) > srv.maxUploadSize {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("image exceeds " + util.FormatBytes(srv.maxUploadSize))
	}
	contentType := strings.ToLower(strings.TrimSpace(input.ContentType))
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unsupported image type")
	}

	key := path.Join("products", id, util.Checksum(input.Body)[:checksumKeyLength]+ext)
	imageURL, err := srv.assets.Upload(ctx, key, contentType, input.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store product image")
	}

	product, err := srv.content.PatchProduct(ctx, id, service.ProductPatch{ImageURL: &imageURL})
	if err != nil {
		return nil, contentError(err, "product")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Product image uploaded",
		slog.String("product_id", id),
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(input.Body)))),
	)
	srv.afterProductChange(ctx)

	return product, nil
}

func (srv *contentService) afterProductChange(ctx context.Context) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	invalidateRoutes(ctx, srv.routes, logger, pathHome, pathPlans, pathAdminProducts)

	if err := srv.cache.Delete(ctx, cacheKeyPlans); err != nil {
		logger.Warn("Failed to drop cached plans", slog.Any("error", err))
	}
}

// cached serves key from the cache, loading and storing it on a miss. Cache
// errors only cost a round trip to the CMS.
func cached[T any](ctx context.Context, srv *contentService, key string, load func() (*T, error)) (*T, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var hit T
	found, err := srv.cache.GetJSON(ctx, key, &hit)
	if err != nil {
		logger.Warn("Content cache read failed", slog.String("key", key), slog.Any("error", err))
	}
	if found {
		return &hit, nil
	}

	value, err := load()
	if err != nil {
		return nil, err
	}
	if err := srv.cache.SetJSON(ctx, key, value, srv.cacheTTL); err != nil {
		logger.Warn("Content cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return value, nil
}

func pageCacheKey(slug string) string {
	return "content:page:" + slug
}

func contentError(err error, what string) error {
	if errors.Is(err, service.ErrContentNotFound) {
		return errors.Wrap(domainerrors.ErrNotFound, what+" not found")
	}

	return errors.Wrapf(err, "failed to load %s", what)
}
