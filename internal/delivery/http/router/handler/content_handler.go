package handler

import (
	"io"
	"log/slog"
	"net/http"

	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const productImageField = "image"

// ContentHandler serves CMS pages, the plan catalogue and product administration.
type ContentHandler struct {
	uc     usecase.ContentUsecase
	logger *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{uc: uc, logger: logger}
}

func (h *ContentHandler) GetPage(c echo.Context) error {
	page, err := h.uc.GetPage(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, page)
}

func (h *ContentHandler) ListGuides(c echo.Context) error {
	guides, err := h.uc.ListGuides(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, guides)
}

func (h *ContentHandler) ListPlans(c echo.Context) error {
	plans, err := h.uc.ListPlans(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, plans)
}

func (h *ContentHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, products)
}

func (h *ContentHandler) CreateProduct(c echo.Context) error {
	var input usecase.CreateProductInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, product)
}

func (h *ContentHandler) UpdateProduct(c echo.Context) error {
	var patch service.ProductPatch
	if err := bindInput(c, &patch); err != nil {
		return err
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, product)
}

// UploadProductImage takes a multipart "image" file. The size limit is enforced by the usecase.
func (h *ContentHandler) UploadProductImage(c echo.Context) error {
	file, err := c.FormFile(productImageField)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("image file is required"))
	}

	src, err := file.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open upload")
	}
	defer src.Close()

	body, err := io.ReadAll(src)
	if err != nil {
		return errors.Wrap(err, "failed to read upload")
	}

	contentType := file.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}

	product, err := h.uc.UploadProductImage(c.Request().Context(), c.Param("id"), usecase.UploadImageInput{
		Filename:    file.Filename,
		ContentType: contentType,
		Body:        body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, product)
}
