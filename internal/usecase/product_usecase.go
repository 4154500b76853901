package usecase

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to add a catalog item.
type CreateProductInput struct {
	Name    string
	SKU     string
	ActorID *uuid.UUID
}

// BarcodeProductOutput is the public view of a barcode and its product.
type BarcodeProductOutput struct {
	Code        string
	Status      entity.BarcodeStatus
	ActivatedAt *time.Time
	Product     entity.ProductSummary
}

// ProductUsecase defines catalog operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	ListProducts(ctx context.Context, skip, take int) (*Page[*entity.ProductWithCounts], error)
	ProductByBarcode(ctx context.Context, code string) (*BarcodeProductOutput, error)
}
