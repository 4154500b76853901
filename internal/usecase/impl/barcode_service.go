package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Registration methods recorded in the audit metadata.
const (
	registerMethodManual = "manual"
	registerMethodCamera = "camera_scan"
)

type barcodeService struct {
	txManager   repository.TransactionManager
	barcodeRepo repository.BarcodeRepository
	logger      *slog.Logger
}

// BarcodeServiceParams holds dependencies for BarcodeService, injected by Fx.
type BarcodeServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	BarcodeRepo repository.BarcodeRepository
	Logger      *slog.Logger
}

// NewBarcodeService creates the barcode registry service.
func NewBarcodeService(params BarcodeServiceParams) usecase.BarcodeUsecase {
	return &barcodeService{
		txManager:   params.TxManager,
		barcodeRepo: params.BarcodeRepo,
		logger:      params.Logger,
	}
}

func (srv *barcodeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterBarcode validates and stores one code. Numeric legacy codes need an explicit SKU;
// structured codes fall back to their prefix.
func (srv *barcodeService) RegisterBarcode(ctx context.Context, input *usecase.RegisterBarcodeInput) (*entity.BarcodeItem, error) {
	code := entity.NormalizeBarcode(input.Code)
	sku := strings.ToUpper(strings.TrimSpace(input.SKU))

	switch entity.ClassifyBarcode(code) {
	case entity.BarcodeFormatInvalid:
		return nil, domainerrors.ErrInvalidBarcodeFormat.WithDetails(code)
	case entity.BarcodeFormatStructured:
		if sku == "" {
			sku, _ = entity.ResolveBarcodeSKU(code)
		}
	case entity.BarcodeFormatLegacy:
		if sku == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("sku is required for numeric barcodes")
		}
	}

	return srv.register(ctx, code, sku, input, entity.AuditBarcodeCreated, registerMethodManual)
}

// ScanRegisterBarcode registers a camera-scanned code. Only structured codes are accepted.
func (srv *barcodeService) ScanRegisterBarcode(ctx context.Context, input *usecase.ScanBarcodeInput) (*entity.BarcodeItem, error) {
	code := entity.NormalizeBarcode(input.Code)
	if entity.ClassifyBarcode(code) != entity.BarcodeFormatStructured {
		return nil, domainerrors.ErrInvalidBarcodeFormat.WithDetails("unknown barcode prefix: " + code)
	}

	sku, _ := entity.ResolveBarcodeSKU(code)
	register := &usecase.RegisterBarcodeInput{Code: code, SKU: sku, ActorID: input.ActorID}

	return srv.register(ctx, code, sku, register, entity.AuditBarcodeScannedAdd, registerMethodCamera)
}

func (srv *barcodeService) register(
	ctx context.Context,
	code, sku string,
	input *usecase.RegisterBarcodeInput,
	action entity.AuditAction,
	method string,
) (*entity.BarcodeItem, error) {
	var item *entity.BarcodeItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. Resolve the product.
		product, err := repoFactory.NewProductRepository().FindProductBySKU(ctx, sku)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WithDetails(sku)
			}

			return errors.Wrap(err, "failed to find product")
		}

		// 2. Insert; the unique code constraint rejects duplicates whatever their status.
		item = &entity.BarcodeItem{
			Code:        code,
			ProductID:   product.ID,
			Status:      entity.BarcodeUnused,
			CreatedByID: input.ActorID,
		}
		if err := repoFactory.NewBarcodeRepository().CreateBarcode(ctx, item); err != nil {
			if errors.Is(err, repository.ErrDuplicateBarcode) {
				return domainerrors.ErrBarcodeAlreadyExists.WithDetails(code)
			}

			return errors.Wrap(err, "failed to create barcode")
		}
		item.Product = product

		// 3. Audit.
		return appendAudit(ctx, repoFactory.NewAuditRepository(), action, entity.AuditEntityBarcode, item.ID.String(), input.ActorID, map[string]any{
			"barcode": code,
			"sku":     product.SKU,
			"method":  method,
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Barcode registration failed", slog.String("barcode", code), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register barcode")
	}

	srv.log(ctx).Info("Barcode registered", slog.String("barcode", code), slog.String("sku", sku), slog.String("method", method))

	return item, nil
}

// BatchRegisterBarcodes registers each item in its own transaction.
func (srv *barcodeService) BatchRegisterBarcodes(ctx context.Context, input *usecase.BatchRegisterInput) (*usecase.BatchRegisterOutput, error) {
	out := &usecase.BatchRegisterOutput{
		Total:   len(input.Items),
		Results: make([]usecase.BatchItemResult, 0, len(input.Items)),
	}

	for _, item := range input.Items {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "batch registration cancelled")
		}

		created, err := srv.RegisterBarcode(ctx, &usecase.RegisterBarcodeInput{
			Code:    item.Code,
			SKU:     item.SKU,
			ActorID: input.ActorID,
		})
		if err != nil {
			code, message := errorCode(err)
			out.Errors++
			out.Results = append(out.Results, usecase.BatchItemResult{
				Code:      entity.NormalizeBarcode(item.Code),
				Status:    usecase.BatchItemError,
				ErrorCode: code,
				Error:     message,
			})

			continue
		}

		out.Success++
		out.Results = append(out.Results, usecase.BatchItemResult{
			Code:    created.Code,
			Status:  usecase.BatchItemCreated,
			Barcode: created,
		})
	}

	srv.log(ctx).Info("Batch registration finished", slog.Int("total", out.Total), slog.Int("success", out.Success), slog.Int("errors", out.Errors))

	return out, nil
}

// ListBarcodes returns a filtered page of barcodes.
func (srv *barcodeService) ListBarcodes(ctx context.Context, filter entity.BarcodeFilter) (*usecase.Page[*entity.BarcodeItem], error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown barcode status: " + string(filter.Status))
	}
	filter.SKU = strings.ToUpper(strings.TrimSpace(filter.SKU))
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Skip, filter.Take = normalizePage(filter.Skip, filter.Take)

	items, total, err := srv.barcodeRepo.ListBarcodes(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list barcodes")
	}

	return &usecase.Page[*entity.BarcodeItem]{Items: items, Total: total, Skip: filter.Skip, Take: filter.Take}, nil
}
