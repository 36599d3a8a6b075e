package usecase

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/domain/service"

	"github.com/shopspring/decimal"
)

// ContentUsecase defines storefront content reads and product management.
type ContentUsecase interface {
	// Public reads, cached
	GetPage(ctx context.Context, slug string) (*entity.Page, error)
	ListGuides(ctx context.Context) ([]*entity.Page, error)
	ListPlans(ctx context.Context) ([]*entity.Product, error)

	// Admin
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, patch service.ProductPatch) (*entity.Product, error)
	UploadProductImage(ctx context.Context, id string, input UploadImageInput) (*entity.Product, error)
}

// CreateProductInput is a new plan.
type CreateProductInput struct {
	Title          string          `json:"title" validate:"required,max=150"`
	Slug           string          `json:"slug" validate:"required,max=150"`
	Description    string          `json:"description" validate:"max=5000"`
	Price          decimal.Decimal `json:"price"`
	DurationMonths int             `json:"duration_months" validate:"required,min=1,max=60"`
	MaxConnections int             `json:"max_connections" validate:"omitempty,min=1,max=10"`
	Active         bool            `json:"active"`
}

// UploadImageInput is an uploaded product image.
type UploadImageInput struct {
	Filename    string
	ContentType string
	Body        []byte
}
