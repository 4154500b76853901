package postgres

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// barcodeRepository implements the repository.BarcodeRepository interface.
type barcodeRepository struct {
	db *gorm.DB
}

// NewBarcodeRepository is the constructor for barcodeRepository.
func NewBarcodeRepository(db *gorm.DB) repository.BarcodeRepository {
	return &barcodeRepository{db: db}
}

// CreateBarcode persists a new barcode.
func (repo *barcodeRepository) CreateBarcode(ctx context.Context, item *entity.BarcodeItem) error {
	itemM := fromBarcodeDomain(item)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateBarcode
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create barcode")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindBarcodeByCode retrieves a barcode and its product.
func (repo *barcodeRepository) FindBarcodeByCode(ctx context.Context, code string) (*entity.BarcodeItem, error) {
	var itemM model.BarcodeItemModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("code = ?", code).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBarcodeNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toBarcodeDomain(&itemM), nil
}

// FindBarcodeByCodeForUpdate locks the barcode row with SELECT ... FOR UPDATE and then
// loads its product. Concurrent lockers wait until the holder's transaction ends.
func (repo *barcodeRepository) FindBarcodeByCodeForUpdate(ctx context.Context, code string) (*entity.BarcodeItem, error) {
	var itemM model.BarcodeItemModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("code = ?", code).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBarcodeNotFound
		}

		return nil, errors.WithStack(err)
	}

	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", itemM.ProductID).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.WithStack(err)
	}
	itemM.Product = &productM

	return toBarcodeDomain(&itemM), nil
}

// MarkBarcodeUsed performs the conditional UNUSED -> USED transition.
func (repo *barcodeRepository) MarkBarcodeUsed(ctx context.Context, id uuid.UUID, usedByID *uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BarcodeItemModel{}).
		Where("id = ? AND status = ?", id, string(entity.BarcodeUnused)).
		Updates(map[string]any{
			"status":       string(entity.BarcodeUsed),
			"used_by_id":   usedByID,
			"activated_at": at,
			"updated_at":   at,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark barcode used")
	}

	// Zero rows means another transaction won the transition, or the row is gone.
	if result.RowsAffected == 0 {
		return repository.ErrBarcodeAlreadyUsed
	}

	return nil
}

// ListBarcodes returns a filtered page of barcodes, newest first.
func (repo *barcodeRepository) ListBarcodes(ctx context.Context, filter entity.BarcodeFilter) ([]*entity.BarcodeItem, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.BarcodeItemModel{})

	if filter.SKU != "" {
		query = query.Where("product_id IN (?)",
			repo.db.Model(&model.ProductModel{}).Select("id").Where("sku = ?", filter.SKU))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Query != "" {
		query = query.Where("LOWER(code) LIKE ? ESCAPE '!'", containsPattern(filter.Query))
	}

	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var itemModels []*model.BarcodeItemModel
	if err := query.
		Preload("Product").
		Order("created_at DESC").
		Scopes(paginate(filter.Skip, filter.Take)).
		Find(&itemModels).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	items := make([]*entity.BarcodeItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toBarcodeDomain(itemM))
	}

	return items, total, nil
}

// --- Mapper Functions ---

func toBarcodeDomain(data *model.BarcodeItemModel) *entity.BarcodeItem {
	if data == nil {
		return nil
	}

	return &entity.BarcodeItem{
		ID:          data.ID,
		Code:        data.Code,
		ProductID:   data.ProductID,
		Product:     toProductDomain(data.Product),
		Status:      entity.BarcodeStatus(data.Status),
		CreatedByID: data.CreatedByID,
		UsedByID:    data.UsedByID,
		ActivatedAt: data.ActivatedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromBarcodeDomain(data *entity.BarcodeItem) *model.BarcodeItemModel {
	if data == nil {
		return nil
	}

	return &model.BarcodeItemModel{
		ID:          data.ID,
		Code:        data.Code,
		ProductID:   data.ProductID,
		Status:      string(data.Status),
		CreatedByID: data.CreatedByID,
		UsedByID:    data.UsedByID,
		ActivatedAt: data.ActivatedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
