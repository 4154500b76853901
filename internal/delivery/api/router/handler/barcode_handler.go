package handler

import (
	"net/http"
	"strings"

	"loyalty/internal/delivery/api/response"
	"loyalty/internal/domain/entity"
	"loyalty/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BarcodeHandlerParams holds dependencies for BarcodeHandler, injected by Fx.
type BarcodeHandlerParams struct {
	fx.In

	BarcodeUC usecase.BarcodeUsecase
}

// BarcodeHandler serves the barcode registry.
type BarcodeHandler struct {
	barcodeUC usecase.BarcodeUsecase
}

// NewBarcodeHandler is the constructor for BarcodeHandler.
func NewBarcodeHandler(params BarcodeHandlerParams) *BarcodeHandler {
	return &BarcodeHandler{barcodeUC: params.BarcodeUC}
}

// RegisterBarcodeRequest registers one code. SKU is required for legacy numeric codes.
// Format rules are applied by the registry so callers get INVALID_BARCODE_FORMAT.
type RegisterBarcodeRequest struct {
	Code string `json:"code" validate:"required,max=64"`
	SKU  string `json:"sku" validate:"omitempty,max=50"`
}

// ScanBarcodeRequest registers a camera-scanned code.
type ScanBarcodeRequest struct {
	Code string `json:"code" validate:"required,max=64"`
}

// BatchRegisterRequest registers up to 500 codes independently.
type BatchRegisterRequest struct {
	Items []RegisterBarcodeRequest `json:"items" validate:"required,min=1,max=500,dive"`
}

// RegisterBarcode registers one code.
func (h *BarcodeHandler) RegisterBarcode(c echo.Context) error {
	var req RegisterBarcodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.barcodeUC.RegisterBarcode(c.Request().Context(), &usecase.RegisterBarcodeInput{
		Code:    req.Code,
		SKU:     req.SKU,
		ActorID: actorID(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBarcodeView(item))
}

// ScanBarcode registers a code read by the scanner.
func (h *BarcodeHandler) ScanBarcode(c echo.Context) error {
	var req ScanBarcodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.barcodeUC.ScanRegisterBarcode(c.Request().Context(), &usecase.ScanBarcodeInput{
		Code:    req.Code,
		ActorID: actorID(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBarcodeView(item))
}

// BatchRegister registers many codes; the response lists each item's outcome.
func (h *BarcodeHandler) BatchRegister(c echo.Context) error {
	var req BatchRegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.BatchRegisterInput{
		Items:   make([]usecase.BatchBarcodeItem, 0, len(req.Items)),
		ActorID: actorID(c),
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.BatchBarcodeItem{Code: item.Code, SKU: item.SKU})
	}

	out, err := h.barcodeUC.BatchRegisterBarcodes(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBatchView(out))
}

// ListBarcodes lists registered codes.
func (h *BarcodeHandler) ListBarcodes(c echo.Context) error {
	skip, take, err := pageQuery(c)
	if err != nil {
		return err
	}

	filter := entity.BarcodeFilter{
		SKU:    strings.TrimSpace(c.QueryParam("sku")),
		Status: entity.BarcodeStatus(strings.ToUpper(strings.TrimSpace(c.QueryParam("status")))),
		Query:  c.QueryParam("q"),
		Skip:   skip,
		Take:   take,
	}

	page, err := h.barcodeUC.ListBarcodes(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, page, toBarcodeView)
}
