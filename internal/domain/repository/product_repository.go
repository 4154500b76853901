package repository

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateProduct = errors.New("product sku already exists")
)

// ProductRepository defines the interface for catalog operations.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *entity.Product) error
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindProductBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// ListProducts returns products with barcode counts, newest first.
	ListProducts(ctx context.Context, skip, take int) ([]*entity.ProductWithCounts, int64, error)
}
