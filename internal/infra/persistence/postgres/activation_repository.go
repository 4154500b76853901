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
)

// activationRecordColumns projects an activation with the display fields of its
// barcode, product, customer and optional dealer.
const activationRecordColumns = `activations.id, activations.barcode_item_id, activations.customer_id,
	activations.dealer_id, activations.product_id, activations.staff_id, activations.points_awarded,
	activations.created_at, barcode_items.code AS barcode_code, products.name AS product_name,
	products.sku AS product_sku, customers.name AS customer_name, customers.phone AS customer_phone,
	dealers.code AS dealer_code, dealers.name AS dealer_name`

type activationRecordRow struct {
	ID            uuid.UUID
	BarcodeItemID uuid.UUID
	CustomerID    uuid.UUID
	DealerID      *uuid.UUID
	ProductID     uuid.UUID
	StaffID       *uuid.UUID
	PointsAwarded int
	CreatedAt     time.Time
	BarcodeCode   string
	ProductName   string
	ProductSKU    string
	CustomerName  string
	CustomerPhone string
	DealerCode    *string
	DealerName    *string
}

type activationRepository struct {
	db *gorm.DB
}

// NewActivationRepository is the constructor for activationRepository.
func NewActivationRepository(db *gorm.DB) repository.ActivationRepository {
	return &activationRepository{db: db}
}

func (repo *activationRepository) CreateActivation(ctx context.Context, activation *entity.Activation) error {
	activationM := fromActivationDomain(activation)

	if err := repo.db.WithContext(ctx).Omit("BarcodeItem", "Customer", "Dealer", "Product").Create(activationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateActivation
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activation")
	}

	activation.ID = activationM.ID
	activation.CreatedAt = activationM.CreatedAt

	return nil
}

func (repo *activationRepository) FindActivationByID(ctx context.Context, id uuid.UUID) (*entity.ActivationRecord, error) {
	var row activationRecordRow
	result := repo.records(ctx).
		Select(activationRecordColumns).
		Where("activations.id = ?", id).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrActivationNotFound
	}

	return toActivationRecord(&row), nil
}

func (repo *activationRepository) ListActivations(ctx context.Context, filter entity.ActivationFilter) ([]*entity.ActivationRecord, int64, error) {
	query := repo.records(ctx)

	if filter.CustomerID != nil {
		query = query.Where("activations.customer_id = ?", *filter.CustomerID)
	}
	if filter.DealerID != nil {
		query = query.Where("activations.dealer_id = ?", *filter.DealerID)
	}
	if filter.StaffID != nil {
		query = query.Where("activations.staff_id = ?", *filter.StaffID)
	}
	if filter.DateFrom != nil {
		query = query.Where("activations.created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("activations.created_at <= ?", *filter.DateTo)
	}
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query = query.Where(
			"LOWER(products.name) LIKE ? ESCAPE '!' OR LOWER(barcode_items.code) LIKE ? ESCAPE '!' OR LOWER(customers.name) LIKE ? ESCAPE '!' OR customers.phone LIKE ? ESCAPE '!'",
			pattern, pattern, pattern, pattern,
		)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var rows []*activationRecordRow
	if err := query.
		Select(activationRecordColumns).
		Order("activations.created_at DESC").
		Scopes(paginate(filter.Skip, filter.Take)).
		Scan(&rows).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	records := make([]*entity.ActivationRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, toActivationRecord(row))
	}

	return records, total, nil
}

// records joins the display tables. The dealer is optional, so it is a left join.
func (repo *activationRepository) records(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("activations").
		Joins("JOIN barcode_items ON barcode_items.id = activations.barcode_item_id").
		Joins("JOIN products ON products.id = activations.product_id").
		Joins("JOIN customers ON customers.id = activations.customer_id").
		Joins("LEFT JOIN dealers ON dealers.id = activations.dealer_id")
}

// --- Mapper Functions ---

func toActivationRecord(row *activationRecordRow) *entity.ActivationRecord {
	return &entity.ActivationRecord{
		Activation: entity.Activation{
			ID:            row.ID,
			BarcodeItemID: row.BarcodeItemID,
			CustomerID:    row.CustomerID,
			DealerID:      row.DealerID,
			ProductID:     row.ProductID,
			StaffID:       row.StaffID,
			PointsAwarded: row.PointsAwarded,
			CreatedAt:     row.CreatedAt,
		},
		BarcodeCode:   row.BarcodeCode,
		ProductName:   row.ProductName,
		ProductSKU:    row.ProductSKU,
		CustomerName:  row.CustomerName,
		CustomerPhone: row.CustomerPhone,
		DealerCode:    row.DealerCode,
		DealerName:    row.DealerName,
	}
}

func fromActivationDomain(data *entity.Activation) *model.ActivationModel {
	return &model.ActivationModel{
		ID:            data.ID,
		BarcodeItemID: data.BarcodeItemID,
		CustomerID:    data.CustomerID,
		DealerID:      data.DealerID,
		ProductID:     data.ProductID,
		StaffID:       data.StaffID,
		PointsAwarded: data.PointsAwarded,
		CreatedAt:     data.CreatedAt,
	}
}
