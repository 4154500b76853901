package postgres

import (
	"context"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProduct
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *productRepository) FindProductBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return repo.findOne(ctx, "sku = ?", sku)
}

func (repo *productRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toProductDomain(&productM), nil
}

type productCountRow struct {
	model.ProductModel
	TotalBarcodes int64
	UsedBarcodes  int64
}

func (repo *productRepository) ListProducts(ctx context.Context, skip, take int) ([]*entity.ProductWithCounts, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var rows []productCountRow
	err := repo.db.WithContext(ctx).
		Table("products AS p").
		Select(`p.*,
			(SELECT COUNT(*) FROM barcode_items b WHERE b.product_id = p.id) AS total_barcodes,
			(SELECT COUNT(*) FROM barcode_items b WHERE b.product_id = p.id AND b.status = ?) AS used_barcodes`,
			string(entity.BarcodeUsed)).
		Order("p.created_at DESC").
		Scopes(paginate(skip, take)).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	products := make([]*entity.ProductWithCounts, 0, len(rows))
	for i := range rows {
		products = append(products, &entity.ProductWithCounts{
			Product:       *toProductDomain(&rows[i].ProductModel),
			TotalBarcodes: rows[i].TotalBarcodes,
			UsedBarcodes:  rows[i].UsedBarcodes,
		})
	}

	return products, total, nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:        data.ID,
		SKU:       data.SKU,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:        data.ID,
		SKU:       data.SKU,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
