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

// ActivationHandlerParams holds dependencies for ActivationHandler, injected by Fx.
type ActivationHandlerParams struct {
	fx.In

	ActivationUC usecase.ActivationUsecase
}

// ActivationHandler serves barcode redemption and activation listings.
type ActivationHandler struct {
	activationUC usecase.ActivationUsecase
}

// NewActivationHandler is the constructor for ActivationHandler.
func NewActivationHandler(params ActivationHandlerParams) *ActivationHandler {
	return &ActivationHandler{activationUC: params.ActivationUC}
}

// ActivateRequest redeems one barcode.
type ActivateRequest struct {
	Barcode       string `json:"barcode" validate:"required,barcode"`
	CustomerName  string `json:"customerName" validate:"required,min=2,max=100"`
	CustomerPhone string `json:"customerPhone" validate:"required,phone"`
	DealerCode    string `json:"dealerCode" validate:"omitempty,dealercode"`
}

// Activate redeems a barcode for a customer.
func (h *ActivationHandler) Activate(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req ActivateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.activationUC.Activate(c.Request().Context(), &usecase.ActivateInput{
		Barcode:       req.Barcode,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		DealerCode:    req.DealerCode,
		Actor:         principal,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ActivationResultView{
		ActivationID:   out.ActivationID,
		Product:        out.Product,
		CustomerPoints: out.CustomerPointsAfter,
		DealerPoints:   out.DealerPointsAfter,
		ActivatedAt:    out.ActivatedAt,
	})
}

// ListActivations lists activations newest first.
func (h *ActivationHandler) ListActivations(c echo.Context) error {
	filter, err := activationFilterQuery(c)
	if err != nil {
		return err
	}

	return h.list(c, filter)
}

// ListCustomerActivations lists one customer's activations.
func (h *ActivationHandler) ListCustomerActivations(c echo.Context) error {
	customerID, err := uuidParam(c, "customerId")
	if err != nil {
		return err
	}

	filter, err := activationFilterQuery(c)
	if err != nil {
		return err
	}
	filter.CustomerID = &customerID

	return h.list(c, filter)
}

// ListDealerActivations lists activations credited to one dealer.
func (h *ActivationHandler) ListDealerActivations(c echo.Context) error {
	dealerID, err := uuidParam(c, "dealerId")
	if err != nil {
		return err
	}

	filter, err := activationFilterQuery(c)
	if err != nil {
		return err
	}
	filter.DealerID = &dealerID

	return h.list(c, filter)
}

func (h *ActivationHandler) list(c echo.Context, filter entity.ActivationFilter) error {
	page, err := h.activationUC.ListActivations(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, page, toActivationView)
}

// ExportActivations downloads the filtered activations as a spreadsheet.
func (h *ActivationHandler) ExportActivations(c echo.Context) error {
	filter, err := activationFilterQuery(c)
	if err != nil {
		return err
	}

	out, err := h.activationUC.ExportActivations(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Attachment(c, out.FileName, out.ContentType, out.Content)
}
