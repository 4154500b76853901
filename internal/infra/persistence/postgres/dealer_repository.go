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

type dealerRepository struct {
	db *gorm.DB
}

// NewDealerRepository is the constructor for dealerRepository.
func NewDealerRepository(db *gorm.DB) repository.DealerRepository {
	return &dealerRepository{db: db}
}

func (repo *dealerRepository) CreateDealer(ctx context.Context, dealer *entity.Dealer) error {
	dealerM := fromDealerDomain(dealer)

	if err := repo.db.WithContext(ctx).Create(dealerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDealer
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dealer")
	}

	dealer.ID = dealerM.ID
	dealer.CreatedAt = dealerM.CreatedAt
	dealer.UpdatedAt = dealerM.UpdatedAt

	return nil
}

// UpdateDealer saves the mutable profile fields and lifecycle status. Code and points
// are never written here.
func (repo *dealerRepository) UpdateDealer(ctx context.Context, dealer *entity.Dealer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DealerModel{}).
		Where("id = ?", dealer.ID).
		Updates(map[string]any{
			"name":       dealer.Name,
			"shop_name":  dealer.ShopName,
			"phone":      dealer.Phone,
			"address":    dealer.Address,
			"status":     string(dealer.Status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update dealer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDealerNotFound
	}

	return nil
}

func (repo *dealerRepository) FindDealerByID(ctx context.Context, id uuid.UUID) (*entity.Dealer, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *dealerRepository) FindDealerByCode(ctx context.Context, code string) (*entity.Dealer, error) {
	return repo.findOne(ctx, "code = ?", code)
}

func (repo *dealerRepository) FindActiveDealerByPhone(ctx context.Context, phone string) (*entity.Dealer, error) {
	return repo.findOne(ctx, "phone = ? AND status = ?", phone, string(entity.DealerActive))
}

func (repo *dealerRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Dealer, error) {
	var dealerM model.DealerModel
	if err := repo.db.WithContext(ctx).Where(query, args...).Order("created_at ASC").First(&dealerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDealerNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toDealerDomain(&dealerM), nil
}

func (repo *dealerRepository) IncrementDealerPoints(ctx context.Context, id uuid.UUID, delta int) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DealerModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"points":     gorm.Expr("points + ?", delta),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment dealer points")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrDealerNotFound
	}

	var dealerM model.DealerModel
	if err := repo.db.WithContext(ctx).Select("points").Where("id = ?", id).First(&dealerM).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return dealerM.Points, nil
}

func (repo *dealerRepository) ListDealers(ctx context.Context, filter entity.DirectoryFilter) ([]*entity.Dealer, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.DealerModel{})
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query = query.Where("LOWER(code) LIKE ? ESCAPE '!' OR LOWER(name) LIKE ? ESCAPE '!' OR LOWER(shop_name) LIKE ? ESCAPE '!'", pattern, pattern, pattern)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var dealerModels []*model.DealerModel
	if err := query.
		Order("code ASC").
		Scopes(paginate(filter.Skip, filter.Take)).
		Find(&dealerModels).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	dealers := make([]*entity.Dealer, 0, len(dealerModels))
	for _, dealerM := range dealerModels {
		dealers = append(dealers, toDealerDomain(dealerM))
	}

	return dealers, total, nil
}

// --- Mapper Functions ---

func toDealerDomain(data *model.DealerModel) *entity.Dealer {
	if data == nil {
		return nil
	}

	return &entity.Dealer{
		ID:        data.ID,
		Code:      data.Code,
		Name:      data.Name,
		ShopName:  data.ShopName,
		Phone:     data.Phone,
		Address:   data.Address,
		Points:    data.Points,
		Status:    entity.DealerStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDealerDomain(data *entity.Dealer) *model.DealerModel {
	return &model.DealerModel{
		ID:        data.ID,
		Code:      data.Code,
		Name:      data.Name,
		ShopName:  data.ShopName,
		Phone:     data.Phone,
		Address:   data.Address,
		Points:    data.Points,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
