package handler

import (
	"net/http"

	"loyalty/internal/delivery/api/response"
	"loyalty/internal/domain/entity"
	"loyalty/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
}

// CustomerHandler serves the customer directory.
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
}

// NewCustomerHandler is the constructor for CustomerHandler.
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{customerUC: params.CustomerUC}
}

// CustomerByPhone returns a customer and its recent activations.
func (h *CustomerHandler) CustomerByPhone(c echo.Context) error {
	detail, err := h.customerUC.CustomerByPhone(c.Request().Context(), c.Param("phone"))
	if err != nil {
		return errors.WithStack(err)
	}

	view := CustomerDetailView{
		Customer:    toCustomerView(detail.Customer),
		Activations: make([]ActivationView, 0, len(detail.Activations)),
	}
	for _, a := range detail.Activations {
		view.Activations = append(view.Activations, toActivationView(a))
	}

	return response.Success(c, http.StatusOK, view)
}

// ListCustomers lists customers by points, optionally filtered by a search term.
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	skip, take, err := pageQuery(c)
	if err != nil {
		return err
	}

	page, err := h.customerUC.ListCustomers(c.Request().Context(), entity.DirectoryFilter{
		Search: c.QueryParam("search"),
		Skip:   skip,
		Take:   take,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, page, toCustomerView)
}
