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

// DealerHandlerParams holds dependencies for DealerHandler, injected by Fx.
type DealerHandlerParams struct {
	fx.In

	DealerUC usecase.DealerUsecase
}

// DealerHandler serves the dealer directory.
type DealerHandler struct {
	dealerUC usecase.DealerUsecase
}

// NewDealerHandler is the constructor for DealerHandler.
func NewDealerHandler(params DealerHandlerParams) *DealerHandler {
	return &DealerHandler{dealerUC: params.DealerUC}
}

// CreateDealerRequest registers a dealer.
type CreateDealerRequest struct {
	Code     string `json:"code" validate:"required,dealercode"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	ShopName string `json:"shopName" validate:"omitempty,max=200"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
	Address  string `json:"address" validate:"omitempty,max=500"`
}

// UpdateDealerRequest changes a dealer's profile; absent fields are kept.
type UpdateDealerRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	ShopName *string `json:"shopName" validate:"omitempty,max=200"`
	Phone    *string `json:"phone" validate:"omitempty,phone"`
	Address  *string `json:"address" validate:"omitempty,max=500"`
}

// LookupDealer resolves an active dealer by code.
func (h *DealerHandler) LookupDealer(c echo.Context) error {
	dealer, err := h.dealerUC.LookupDealer(c.Request().Context(), c.QueryParam("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDealerLookupView(dealer))
}

// DealerQRCode renders the dealer's lookup QR code as PNG.
func (h *DealerHandler) DealerQRCode(c echo.Context) error {
	png, err := h.dealerUC.DealerQRCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateDealer registers a dealer.
func (h *DealerHandler) CreateDealer(c echo.Context) error {
	var req CreateDealerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	dealer, err := h.dealerUC.CreateDealer(c.Request().Context(), &usecase.CreateDealerInput{
		Code:     req.Code,
		Name:     req.Name,
		ShopName: req.ShopName,
		Phone:    req.Phone,
		Address:  req.Address,
		ActorID:  actorID(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toDealerView(dealer))
}

// UpdateDealer changes a dealer's profile.
func (h *DealerHandler) UpdateDealer(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateDealerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	dealer, err := h.dealerUC.UpdateDealer(c.Request().Context(), &usecase.UpdateDealerInput{
		ID:       id,
		Name:     req.Name,
		ShopName: req.ShopName,
		Phone:    req.Phone,
		Address:  req.Address,
		ActorID:  actorID(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDealerView(dealer))
}

// DeactivateDealer soft-deletes a dealer.
func (h *DealerHandler) DeactivateDealer(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	dealer, err := h.dealerUC.DeactivateDealer(c.Request().Context(), id, actorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDealerView(dealer))
}

// ListDealers lists dealers, optionally filtered by a search term.
func (h *DealerHandler) ListDealers(c echo.Context) error {
	skip, take, err := pageQuery(c)
	if err != nil {
		return err
	}

	page, err := h.dealerUC.ListDealers(c.Request().Context(), entity.DirectoryFilter{
		Search: c.QueryParam("search"),
		Skip:   skip,
		Take:   take,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, page, toDealerView)
}
