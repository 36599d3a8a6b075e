package handler

import (
	"log/slog"
	"net/http"

	"portal/internal/delivery/http/response"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler serves public testimonials, customer submissions and moderation.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, logger: logger}
}

func (h *ReviewHandler) ListApproved(c echo.Context) error {
	var input usecase.PageInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	page, err := h.uc.ListApprovedReviews(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, page)
}

func (h *ReviewHandler) Submit(c echo.Context) error {
	var input usecase.SubmitReviewInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	review, err := h.uc.SubmitReview(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review submitted for moderation")
}

func (h *ReviewHandler) List(c echo.Context) error {
	var input usecase.ReviewListInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	page, err := h.uc.ListReviews(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, page)
}

func (h *ReviewHandler) Moderate(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var input usecase.ModerateReviewInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	if err := h.uc.ModerateReview(c.Request().Context(), id, input); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteReview(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
