package usecase

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterBarcodeInput registers one code. SKU may be empty for structured codes,
// in which case it is resolved from the code's prefix.
type RegisterBarcodeInput struct {
	Code    string
	SKU     string
	ActorID *uuid.UUID
}

// ScanBarcodeInput registers a code read by the camera scanner. The SKU always
// comes from the prefix.
type ScanBarcodeInput struct {
	Code    string
	ActorID *uuid.UUID
}

// BatchBarcodeItem is one entry of a batch registration.
type BatchBarcodeItem struct {
	Code string
	SKU  string
}

// BatchRegisterInput registers many codes independently of each other.
type BatchRegisterInput struct {
	Items   []BatchBarcodeItem
	ActorID *uuid.UUID
}

// --- Output DTOs ---

// Batch item outcomes.
const (
	BatchItemCreated = "created"
	BatchItemError   = "error"
)

// BatchItemResult is the outcome of one batch entry.
type BatchItemResult struct {
	Code      string
	Status    string
	Barcode   *entity.BarcodeItem
	ErrorCode string
	Error     string
}

// BatchRegisterOutput enumerates per-item outcomes with totals.
type BatchRegisterOutput struct {
	Total   int
	Success int
	Errors  int
	Results []BatchItemResult
}

// BarcodeUsecase defines the barcode registry operations.
type BarcodeUsecase interface {
	RegisterBarcode(ctx context.Context, input *RegisterBarcodeInput) (*entity.BarcodeItem, error)
	ScanRegisterBarcode(ctx context.Context, input *ScanBarcodeInput) (*entity.BarcodeItem, error)

	// BatchRegisterBarcodes applies RegisterBarcode to every item. One item's failure
	// never aborts the others; callers inspect the per-item results.
	BatchRegisterBarcodes(ctx context.Context, input *BatchRegisterInput) (*BatchRegisterOutput, error)

	ListBarcodes(ctx context.Context, filter entity.BarcodeFilter) (*Page[*entity.BarcodeItem], error)
}
