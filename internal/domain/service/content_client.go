package service

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/errors"

	"github.com/shopspring/decimal"
)

// ErrContentNotFound is returned when the CMS has no matching document.
var ErrContentNotFound = errors.New("content not found")

// ProductPatch carries the product fields to change. Nil fields are left untouched.
type ProductPatch struct {
	Title          *string          `json:"title,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	DurationMonths *int             `json:"duration_months,omitempty"`
	MaxConnections *int             `json:"max_connections,omitempty"`
	ImageURL       *string          `json:"image_url,omitempty"`
	Active         *bool            `json:"active,omitempty"`
}

// ContentClient defines the interface for the headless CMS. Reads use the public
// credential, writes use the privileged one.
type ContentClient interface {
	// FetchPage retrieves a page or guide by slug
	FetchPage(ctx context.Context, slug string) (*entity.Page, error)

	// ListPages retrieves every document of a page type
	ListPages(ctx context.Context, pageType entity.PageType) ([]*entity.Page, error)

	// ListProducts retrieves products, optionally only the active ones
	ListProducts(ctx context.Context, activeOnly bool) ([]*entity.Product, error)

	// CreateProduct creates a product document and returns it as stored
	CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)

	// PatchProduct applies a partial update and returns the stored document
	PatchProduct(ctx context.Context, id string, patch ProductPatch) (*entity.Product, error)
}
