package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	mockRepo "loyalty/internal/mocks/repository"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
	barcodeRepo *mockRepo.MockBarcodeRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	barcodeRepo := mockRepo.NewMockBarcodeRepository(t)

	service := NewProductService(ProductServiceParams{
		TxManager:   txManager,
		ProductRepo: productRepo,
		BarcodeRepo: barcodeRepo,
		Logger:      newDiscardLogger(),
	})

	return productServiceFixtures{service: service, txManager: txManager, productRepo: productRepo, barcodeRepo: barcodeRepo}
}

func TestProductService_CreateProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txProducts := mockRepo.NewMockProductRepository(t)
	txAudit := mockRepo.NewMockAuditRepository(t)
	factory.EXPECT().NewProductRepository().Return(txProducts)
	factory.EXPECT().NewAuditRepository().Return(txAudit)
	passThroughTx(fx.txManager, factory)

	txProducts.EXPECT().
		CreateProduct(ctx, &entity.Product{Name: "Battery YTX5A", SKU: "YTX5A"}).
		RunAndReturn(func(_ context.Context, p *entity.Product) error {
			p.ID = uuid.New()

			return nil
		})
	txAudit.EXPECT().
		AppendAuditLog(ctx, mock.MatchedBy(func(entry *entity.AuditLogEntry) bool {
			return entry.Action == entity.AuditProductCreated && entry.EntityType == entity.AuditEntityProduct
		})).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{Name: " Battery YTX5A ", SKU: "ytx5a"})
	require.NoError(t, err)
	assert.Equal(t, "YTX5A", product.SKU)
	assert.NotEqual(t, uuid.Nil, product.ID)
}

func TestProductService_CreateProduct_Duplicate(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txProducts := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().NewProductRepository().Return(txProducts)
	passThroughTx(fx.txManager, factory)

	txProducts.EXPECT().CreateProduct(ctx, mock.Anything).Return(repository.ErrDuplicateProduct)

	_, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{Name: "Dup", SKU: "YTX5A"})
	assert.True(t, errors.Is(err, domainerrors.ErrProductAlreadyExists))
}

func TestProductService_CreateProduct_TransactionFailure(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	called := false
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(_ context.Context, fn func(repository.RepositoryFactory) error) {
			called = fn != nil
		}).
		Return(errors.New("could not serialize access")).
		Once()

	_, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{Name: "Battery 12N7L", SKU: "12N7L"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not serialize access")
	assert.True(t, called)
}

func TestProductService_CreateProduct_Validation(t *testing.T) {
	fx := createTestProductService(t)

	inputs := []usecase.CreateProductInput{
		{Name: "", SKU: "A"},
		{Name: strings.Repeat("x", 201), SKU: "A"},
		{Name: "Valid", SKU: "  "},
	}
	for _, input := range inputs {
		_, err := fx.service.CreateProduct(context.Background(), &input)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestProductService_ListProducts(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().ListProducts(ctx, 0, 50).
		Return([]*entity.ProductWithCounts{{Product: entity.Product{SKU: "12N5L"}, TotalBarcodes: 3, UsedBarcodes: 1}}, int64(1), nil)

	page, err := fx.service.ListProducts(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.EqualValues(t, 3, page.Items[0].TotalBarcodes)
}

func TestProductService_ProductByBarcode(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	activatedAt := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	product := &entity.Product{ID: uuid.New(), SKU: "12N5L", Name: "Battery 12N5L"}
	fx.barcodeRepo.EXPECT().FindBarcodeByCode(ctx, "12N5L0000000001").
		Return(&entity.BarcodeItem{Code: "12N5L0000000001", Status: entity.BarcodeUsed, ActivatedAt: &activatedAt, Product: product}, nil)
	fx.barcodeRepo.EXPECT().FindBarcodeByCode(ctx, "12N5L0000000404").Return(nil, repository.ErrBarcodeNotFound)

	out, err := fx.service.ProductByBarcode(ctx, "12n5l0000000001")
	require.NoError(t, err)
	assert.Equal(t, entity.BarcodeUsed, out.Status)
	assert.Equal(t, product.Summary(), out.Product)
	assert.Equal(t, &activatedAt, out.ActivatedAt)

	_, err = fx.service.ProductByBarcode(ctx, "12N5L0000000404")
	assert.True(t, errors.Is(err, domainerrors.ErrBarcodeNotFound))

	_, err = fx.service.ProductByBarcode(ctx, "x")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidBarcodeFormat))
}
