package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item identified by its SKU.
type Product struct {
	ID        uuid.UUID
	SKU       string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductSummary is the compact product view returned alongside activations.
type ProductSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	SKU  string    `json:"sku"`
}

// Summary returns the compact view of the product.
func (p *Product) Summary() ProductSummary {
	return ProductSummary{ID: p.ID, Name: p.Name, SKU: p.SKU}
}

// ProductWithCounts decorates a product with barcode counts for catalog listings.
type ProductWithCounts struct {
	Product
	TotalBarcodes int64
	UsedBarcodes  int64
}
