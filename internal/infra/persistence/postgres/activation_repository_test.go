package postgres

import (
	"context"
	"testing"
	"time"

	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type activationFixture struct {
	product  *entity.Product
	barcode  *entity.BarcodeItem
	customer *entity.Customer
	dealer   *entity.Dealer
}

func seedActivation(t *testing.T, repoFactory repository.RepositoryFactory, code string, product *entity.Product, customer *entity.Customer, dealer *entity.Dealer, createdAt time.Time) *entity.Activation {
	t.Helper()
	ctx := context.Background()

	item := &entity.BarcodeItem{Code: code, ProductID: product.ID, Status: entity.BarcodeUnused}
	require.NoError(t, repoFactory.NewBarcodeRepository().CreateBarcode(ctx, item))

	activation := &entity.Activation{
		BarcodeItemID: item.ID,
		CustomerID:    customer.ID,
		ProductID:     product.ID,
		PointsAwarded: entity.PointsPerActivation,
		CreatedAt:     createdAt,
	}
	if dealer != nil {
		activation.DealerID = &dealer.ID
	}
	require.NoError(t, repoFactory.NewActivationRepository().CreateActivation(ctx, activation))

	return activation
}

func TestActivationRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	factory := &gormRepositoryFactory{tx: db}

	product := seedProduct(t, db, "12N5L", "Battery 12N5L")
	dealer := seedDealer(t, db, "DL001", "0911111111", entity.DealerActive)
	alice, err := NewCustomerRepository(db).UpsertCustomerByPhone(ctx, "0912345678", "Alice")
	require.NoError(t, err)
	bob, err := NewCustomerRepository(db).UpsertCustomerByPhone(ctx, "0987654321", "Bob")
	require.NoError(t, err)

	now := time.Now()
	first := seedActivation(t, factory, "12N5L000000001", product, alice, dealer, now.Add(-time.Hour))
	seedActivation(t, factory, "12N5L000000002", product, bob, nil, now)

	record, err := NewActivationRepository(db).FindActivationByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "12N5L000000001", record.BarcodeCode)
	assert.Equal(t, "Battery 12N5L", record.ProductName)
	assert.Equal(t, "Alice", record.CustomerName)
	require.NotNil(t, record.DealerCode)
	assert.Equal(t, "DL001", *record.DealerCode)

	records, total, err := NewActivationRepository(db).ListActivations(ctx, entity.ActivationFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, records, 2)
	assert.Equal(t, "Bob", records[0].CustomerName)
	assert.Nil(t, records[0].DealerCode)

	records, total, err = NewActivationRepository(db).ListActivations(ctx, entity.ActivationFilter{DealerID: &dealer.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, first.ID, records[0].ID)

	_, total, err = NewActivationRepository(db).ListActivations(ctx, entity.ActivationFilter{Search: "0987"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, err = NewActivationRepository(db).FindActivationByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrActivationNotFound)
}

func TestActivationRepository_OnePerBarcode(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	product := seedProduct(t, db, "12N5L", "Battery 12N5L")
	customer, err := NewCustomerRepository(db).UpsertCustomerByPhone(ctx, "0912345678", "Alice")
	require.NoError(t, err)
	first := seedActivation(t, &gormRepositoryFactory{tx: db}, "12N5L000000001", product, customer, nil, time.Now())

	err = NewActivationRepository(db).CreateActivation(ctx, &entity.Activation{
		BarcodeItemID: first.BarcodeItemID,
		CustomerID:    customer.ID,
		ProductID:     product.ID,
		PointsAwarded: entity.PointsPerActivation,
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateActivation)
}

func TestStatsRepository_Rollups(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	factory := &gormRepositoryFactory{tx: db}
	stats := NewStatsRepository(db)

	product := seedProduct(t, db, "12N5L", "Battery 12N5L")
	dealer := seedDealer(t, db, "DL001", "0911111111", entity.DealerActive)
	alice, err := NewCustomerRepository(db).UpsertCustomerByPhone(ctx, "0912345678", "Alice")
	require.NoError(t, err)
	bob, err := NewCustomerRepository(db).UpsertCustomerByPhone(ctx, "0987654321", "Bob")
	require.NoError(t, err)

	today := time.Now().UTC()
	yesterday := today.AddDate(0, 0, -1)
	seedActivation(t, factory, "12N5L000000001", product, alice, dealer, yesterday)
	seedActivation(t, factory, "12N5L000000002", product, alice, dealer, today)
	seedActivation(t, factory, "12N5L000000003", product, bob, nil, today)
	_, err = NewDealerRepository(db).IncrementDealerPoints(ctx, dealer.ID, 2)
	require.NoError(t, err)

	total, err := stats.CountActivations(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	forDealer, err := stats.CountActivations(ctx, nil, &dealer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), forDealer)

	unique, err := stats.CountUniqueCustomers(ctx, dealer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unique)

	daily, err := stats.DailyActivations(ctx, yesterday.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, daily, 2)
	assert.Equal(t, yesterday.Format(time.DateOnly), daily[0].Date)
	assert.Equal(t, int64(1), daily[0].Count)
	assert.Equal(t, int64(2), daily[1].Count)

	topDealers, err := stats.TopDealers(ctx, 10)
	require.NoError(t, err)
	require.Len(t, topDealers, 1)
	assert.Equal(t, int64(2), topDealers[0].Points)
	assert.Equal(t, "DL001", topDealers[0].Code)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	txManager := NewTransactionManager(db)
	errAbort := errors.New("abort")

	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProductRepository().CreateProduct(ctx, &entity.Product{SKU: "12N5L", Name: "Battery"}); err != nil {
			return err
		}

		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)

	_, err = NewProductRepository(db).FindProductBySKU(ctx, "12N5L")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	err = txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewProductRepository().CreateProduct(ctx, &entity.Product{SKU: "12N5L", Name: "Battery"})
	})
	require.NoError(t, err)

	_, err = NewProductRepository(db).FindProductBySKU(ctx, "12N5L")
	assert.NoError(t, err)
}
