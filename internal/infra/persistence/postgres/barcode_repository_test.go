package postgres

import (
	"context"
	"testing"
	"time"

	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarcodeRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewBarcodeRepository(db)

	product := seedProduct(t, db, "12N5L", "Battery 12N5L")
	item := seedBarcode(t, db, "12N5L000000001", product.ID)
	assert.NotEqual(t, uuid.Nil, item.ID)

	found, err := repo.FindBarcodeByCode(ctx, "12N5L000000001")
	require.NoError(t, err)
	assert.Equal(t, item.ID, found.ID)
	assert.Equal(t, entity.BarcodeUnused, found.Status)
	require.NotNil(t, found.Product)
	assert.Equal(t, "12N5L", found.Product.SKU)

	locked, err := repo.FindBarcodeByCodeForUpdate(ctx, "12N5L000000001")
	require.NoError(t, err)
	require.NotNil(t, locked.Product)
	assert.Equal(t, product.ID, locked.Product.ID)

	_, err = repo.FindBarcodeByCode(ctx, "UNKNOWN00000")
	assert.ErrorIs(t, err, repository.ErrBarcodeNotFound)
}

func TestBarcodeRepository_CreateDuplicate(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "12N5L", "Battery 12N5L")
	seedBarcode(t, db, "12N5L000000001", product.ID)

	err := NewBarcodeRepository(db).CreateBarcode(context.Background(), &entity.BarcodeItem{
		Code:      "12N5L000000001",
		ProductID: product.ID,
		Status:    entity.BarcodeUnused,
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateBarcode)
}

func TestBarcodeRepository_MarkUsedOnce(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewBarcodeRepository(db)

	product := seedProduct(t, db, "12N5L", "Battery 12N5L")
	item := seedBarcode(t, db, "12N5L000000001", product.ID)
	staffID := uuid.New()
	at := time.Now()

	require.NoError(t, repo.MarkBarcodeUsed(ctx, item.ID, &staffID, at))

	err := repo.MarkBarcodeUsed(ctx, item.ID, &staffID, at)
	assert.ErrorIs(t, err, repository.ErrBarcodeAlreadyUsed)

	found, err := repo.FindBarcodeByCode(ctx, item.Code)
	require.NoError(t, err)
	assert.Equal(t, entity.BarcodeUsed, found.Status)
	require.NotNil(t, found.UsedByID)
	assert.Equal(t, staffID, *found.UsedByID)
	assert.NotNil(t, found.ActivatedAt)
}

func TestBarcodeRepository_ListBarcodes(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewBarcodeRepository(db)

	battery := seedProduct(t, db, "12N5L", "Battery 12N5L")
	other := seedProduct(t, db, "YTX4A", "Battery YTX4A")
	first := seedBarcode(t, db, "12N5L000000001", battery.ID)
	seedBarcode(t, db, "12N5L000000002", battery.ID)
	seedBarcode(t, db, "YTX4A000000001", other.ID)
	require.NoError(t, repo.MarkBarcodeUsed(ctx, first.ID, nil, time.Now()))

	tests := []struct {
		name      string
		filter    entity.BarcodeFilter
		wantTotal int64
	}{
		{name: "all", filter: entity.BarcodeFilter{}, wantTotal: 3},
		{name: "by sku", filter: entity.BarcodeFilter{SKU: "12N5L"}, wantTotal: 2},
		{name: "by status", filter: entity.BarcodeFilter{Status: entity.BarcodeUsed}, wantTotal: 1},
		{name: "by query case insensitive", filter: entity.BarcodeFilter{Query: "ytx4a"}, wantTotal: 1},
		{name: "paged", filter: entity.BarcodeFilter{Take: 1}, wantTotal: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, total, err := repo.ListBarcodes(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)
			if tt.filter.Take > 0 {
				assert.Len(t, items, tt.filter.Take)
			} else {
				assert.Len(t, items, int(tt.wantTotal))
			}
			for _, item := range items {
				assert.NotNil(t, item.Product)
			}
		})
	}
}

func TestProductRepository_ListProductsWithCounts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	product := seedProduct(t, db, "12N5L", "Battery 12N5L")
	first := seedBarcode(t, db, "12N5L000000001", product.ID)
	seedBarcode(t, db, "12N5L000000002", product.ID)
	require.NoError(t, NewBarcodeRepository(db).MarkBarcodeUsed(ctx, first.ID, nil, time.Now()))

	products, total, err := NewProductRepository(db).ListProducts(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, int64(2), products[0].TotalBarcodes)
	assert.Equal(t, int64(1), products[0].UsedBarcodes)

	err = NewProductRepository(db).CreateProduct(ctx, &entity.Product{SKU: "12N5L", Name: "dup"})
	assert.ErrorIs(t, err, repository.ErrDuplicateProduct)
}
