package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxProductNameLength = 200

type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	barcodeRepo repository.BarcodeRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	BarcodeRepo repository.BarcodeRepository
	Logger      *slog.Logger
}

// NewProductService creates the catalog service.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		barcodeRepo: params.BarcodeRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct adds a catalog item. SKUs are unique and stored upper-case.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	sku := strings.ToUpper(strings.TrimSpace(input.SKU))
	if name == "" || utf8.RuneCountInString(name) > maxProductNameLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product name must be 1-200 characters")
	}
	if sku == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("sku is required")
	}

	product := &entity.Product{Name: name, SKU: sku}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProductRepository().CreateProduct(ctx, product); err != nil {
			if errors.Is(err, repository.ErrDuplicateProduct) {
				return domainerrors.ErrProductAlreadyExists.WithDetails(sku)
			}

			return errors.Wrap(err, "failed to create product")
		}

		return appendAudit(ctx, repoFactory.NewAuditRepository(), entity.AuditProductCreated, entity.AuditEntityProduct, product.ID.String(), input.ActorID, map[string]any{
			"sku":  sku,
			"name": name,
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute create product transaction")
	}

	srv.log(ctx).Info("Product created", slog.String("sku", sku))

	return product, nil
}

// ListProducts returns the catalog with barcode counts.
func (srv *productService) ListProducts(ctx context.Context, skip, take int) (*usecase.Page[*entity.ProductWithCounts], error) {
	skip, take = normalizePage(skip, take)

	items, total, err := srv.productRepo.ListProducts(ctx, skip, take)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.Page[*entity.ProductWithCounts]{Items: items, Total: total, Skip: skip, Take: take}, nil
}

// ProductByBarcode resolves the product a barcode belongs to.
func (srv *productService) ProductByBarcode(ctx context.Context, code string) (*usecase.BarcodeProductOutput, error) {
	code = entity.NormalizeBarcode(code)
	if !entity.IsLookupableBarcode(code) {
		return nil, domainerrors.ErrInvalidBarcodeFormat.WithDetails(code)
	}

	item, err := srv.barcodeRepo.FindBarcodeByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrBarcodeNotFound) {
			return nil, domainerrors.ErrBarcodeNotFound.WithDetails(code)
		}

		return nil, errors.Wrap(err, "failed to find barcode")
	}
	if item.Product == nil {
		return nil, errors.Errorf("barcode %s loaded without product", code)
	}

	return &usecase.BarcodeProductOutput{
		Code:        item.Code,
		Status:      item.Status,
		ActivatedAt: item.ActivatedAt,
		Product:     item.Product.Summary(),
	}, nil
}
