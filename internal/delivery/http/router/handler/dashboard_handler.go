package handler

import (
	"log/slog"

	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler serves the admin overview.
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, logger: logger}
}

func (h *DashboardHandler) Get(c echo.Context) error {
	stats, err := h.uc.GetDashboard(c.Request().Context(), c.QueryParam("granularity"))
	if err != nil {
		return errors.WithStack(err)
	}
	if stats.Degraded {
		h.logger.WarnContext(c.Request().Context(), "Dashboard served degraded",
			slog.Any("failed_sources", stats.FailedSources),
		)
	}

	return ok(c, stats)
}
