package usecase

import "portal/internal/domain/repository"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageInput is the 1-based page requested by a list call.
type PageInput struct {
	Page     int `json:"page" query:"page" validate:"omitempty,min=1"`
	PageSize int `json:"page_size" query:"page_size" validate:"omitempty,min=1,max=100"`
}

// Normalize clamps the page to sane bounds.
func (p PageInput) Normalize() PageInput {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}

	return p
}

// ToRepository converts the page to an offset window.
func (p PageInput) ToRepository() repository.Page {
	n := p.Normalize()

	return repository.Page{
		Offset: (n.Page - 1) * n.PageSize,
		Limit:  n.PageSize,
	}
}

// PageMeta is returned with every paginated list.
type PageMeta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// NewPageMeta builds the metadata for a served page.
func NewPageMeta(p PageInput, total int64) PageMeta {
	n := p.Normalize()

	return PageMeta{Page: n.Page, PageSize: n.PageSize, Total: total}
}
