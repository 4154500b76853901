package handler

import (
	"net/http"

	"loyalty/internal/delivery/api/response"
	"loyalty/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

// ProductHandler serves the product catalog.
type ProductHandler struct {
	productUC usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{productUC: params.ProductUC}
}

// CreateProductRequest adds a catalog item.
type CreateProductRequest struct {
	Name string `json:"name" validate:"required,min=2,max=200"`
	SKU  string `json:"sku" validate:"required,min=2,max=50"`
}

// CreateProduct adds a product.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:    req.Name,
		SKU:     req.SKU,
		ActorID: actorID(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product))
}

// ListProducts lists the catalog with barcode counts.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	skip, take, err := pageQuery(c)
	if err != nil {
		return err
	}

	page, err := h.productUC.ListProducts(c.Request().Context(), skip, take)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, page, toProductWithCountsView)
}

// ProductByBarcode is the public lookup of a barcode's product and status.
func (h *ProductHandler) ProductByBarcode(c echo.Context) error {
	out, err := h.productUC.ProductByBarcode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, BarcodeProductView{
		Code:        out.Code,
		Status:      string(out.Status),
		ActivatedAt: out.ActivatedAt,
		Product:     out.Product,
	})
}
