package postgres

import (
	"context"
	"fmt"
	"testing"

	"loyalty/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the full schema.
// A single connection keeps transactions serialised the way row locks would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, sku, name string) *entity.Product {
	t.Helper()

	product := &entity.Product{SKU: sku, Name: name}
	require.NoError(t, NewProductRepository(db).CreateProduct(context.Background(), product))

	return product
}

func seedBarcode(t *testing.T, db *gorm.DB, code string, productID uuid.UUID) *entity.BarcodeItem {
	t.Helper()

	item := &entity.BarcodeItem{Code: code, ProductID: productID, Status: entity.BarcodeUnused}
	require.NoError(t, NewBarcodeRepository(db).CreateBarcode(context.Background(), item))

	return item
}

func seedDealer(t *testing.T, db *gorm.DB, code, phone string, status entity.DealerStatus) *entity.Dealer {
	t.Helper()

	dealer := &entity.Dealer{
		Code:     code,
		Name:     "Dealer " + code,
		ShopName: "Shop " + code,
		Phone:    phone,
		Status:   status,
	}
	require.NoError(t, NewDealerRepository(db).CreateDealer(context.Background(), dealer))

	return dealer
}
