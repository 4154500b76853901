package handler

import (
	"net/http"

	"loyalty/internal/delivery/api/response"
	"loyalty/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StatsHandlerParams holds dependencies for StatsHandler, injected by Fx.
type StatsHandlerParams struct {
	fx.In

	StatsUC usecase.StatsUsecase
}

// StatsHandler serves the dashboards.
type StatsHandler struct {
	statsUC usecase.StatsUsecase
}

// NewStatsHandler is the constructor for StatsHandler.
func NewStatsHandler(params StatsHandlerParams) *StatsHandler {
	return &StatsHandler{statsUC: params.StatsUC}
}

// ActivationReport returns the admin dashboard.
func (h *StatsHandler) ActivationReport(c echo.Context) error {
	report, err := h.statsUC.ActivationReport(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report)
}

// DealerReport returns one dealer's own numbers.
func (h *StatsHandler) DealerReport(c echo.Context) error {
	dealerID, err := uuidParam(c, "dealerId")
	if err != nil {
		return err
	}

	report, err := h.statsUC.DealerReport(c.Request().Context(), dealerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report)
}
