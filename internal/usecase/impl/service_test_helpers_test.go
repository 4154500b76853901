package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"loyalty/config"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/infra/persistence/postgres"
	mockRepo "loyalty/internal/mocks/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// assertHTTPCode checks the status an error will be rendered with.
func assertHTTPCode(t *testing.T, want int, err error) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "not an AppError: %v", err)
	assert.Equal(t, want, appErr.HTTPCode())
}

func newTestConfig(maxActiveSessions int) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			MaxActiveSessions: maxActiveSessions,
		},
		OTP: &config.OTPConfig{TTL: config.DefaultOTPTTL},
	}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

// passThroughTx makes the mocked transaction manager run fn against factory.
func passThroughTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// newTestDB opens a private in-memory SQLite database with the full schema. A single
// connection serialises transactions the way row locks would.
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

	require.NoError(t, postgres.Migrate(context.Background(), db))

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, sku, name string) *entity.Product {
	t.Helper()

	product := &entity.Product{SKU: sku, Name: name}
	require.NoError(t, postgres.NewProductRepository(db).CreateProduct(context.Background(), product))

	return product
}

func seedBarcode(t *testing.T, db *gorm.DB, code string, productID uuid.UUID) *entity.BarcodeItem {
	t.Helper()

	item := &entity.BarcodeItem{Code: code, ProductID: productID, Status: entity.BarcodeUnused}
	require.NoError(t, postgres.NewBarcodeRepository(db).CreateBarcode(context.Background(), item))

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
	require.NoError(t, postgres.NewDealerRepository(db).CreateDealer(context.Background(), dealer))

	return dealer
}
