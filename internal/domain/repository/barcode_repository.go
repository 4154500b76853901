// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for barcode persistence.
var (
	// ErrBarcodeNotFound is returned when no barcode matches the lookup.
	ErrBarcodeNotFound = errors.New("barcode not found")
	// ErrDuplicateBarcode is returned when the code is already registered.
	ErrDuplicateBarcode = errors.New("barcode already exists")
	// ErrBarcodeAlreadyUsed is returned when a conditional UNUSED -> USED update finds the barcode already used.
	ErrBarcodeAlreadyUsed = errors.New("barcode already used")
)

// BarcodeRepository defines the interface for barcode-related database operations.
type BarcodeRepository interface {
	// CreateBarcode persists a new UNUSED barcode.
	CreateBarcode(ctx context.Context, item *entity.BarcodeItem) error

	// FindBarcodeByCode retrieves a barcode and its product.
	FindBarcodeByCode(ctx context.Context, code string) (*entity.BarcodeItem, error)

	// FindBarcodeByCodeForUpdate retrieves a barcode and its product, holding a row lock
	// until the surrounding transaction ends.
	FindBarcodeByCodeForUpdate(ctx context.Context, code string) (*entity.BarcodeItem, error)

	// MarkBarcodeUsed flips the barcode from UNUSED to USED. The update is conditional on the
	// current status, so a concurrent redemption yields ErrBarcodeAlreadyUsed.
	MarkBarcodeUsed(ctx context.Context, id uuid.UUID, usedByID *uuid.UUID, at time.Time) error

	// ListBarcodes returns a page of barcodes and the total number matching the filter.
	ListBarcodes(ctx context.Context, filter entity.BarcodeFilter) ([]*entity.BarcodeItem, int64, error)
}
