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

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (repo *customerRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *customerRepository) FindCustomerByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	return repo.findOne(ctx, "phone = ?", phone)
}

func (repo *customerRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Customer, error) {
	var customerM model.CustomerModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toCustomerDomain(&customerM), nil
}

// UpsertCustomerByPhone relies on INSERT ... ON CONFLICT (phone) so concurrent first
// activations for the same phone converge on one row.
func (repo *customerRepository) UpsertCustomerByPhone(ctx context.Context, phone, name string) (*entity.Customer, error) {
	now := time.Now()
	customerM := &model.CustomerModel{Phone: phone, Name: name}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "phone"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":       name,
				"updated_at": now,
			}),
		}).
		Create(customerM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert customer")
	}

	return repo.FindCustomerByPhone(ctx, phone)
}

func (repo *customerRepository) FindOrCreateCustomerByPhone(ctx context.Context, phone, defaultName string) (*entity.Customer, error) {
	customerM := &model.CustomerModel{Phone: phone, Name: defaultName}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone"}},
			DoNothing: true,
		}).
		Create(customerM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	return repo.FindCustomerByPhone(ctx, phone)
}

// IncrementCustomerPoints issues UPDATE ... SET points = points + delta, then reads the balance
// back inside the same transaction.
func (repo *customerRepository) IncrementCustomerPoints(ctx context.Context, id uuid.UUID, delta int) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"points":     gorm.Expr("points + ?", delta),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment customer points")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrCustomerNotFound
	}

	var customerM model.CustomerModel
	if err := repo.db.WithContext(ctx).Select("points").Where("id = ?", id).First(&customerM).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return customerM.Points, nil
}

func (repo *customerRepository) ListCustomers(ctx context.Context, filter entity.DirectoryFilter) ([]*entity.Customer, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.CustomerModel{})
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query = query.Where("LOWER(name) LIKE ? ESCAPE '!' OR phone LIKE ? ESCAPE '!'", pattern, pattern)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var customerModels []*model.CustomerModel
	if err := query.
		Order("points DESC").
		Order("created_at ASC").
		Scopes(paginate(filter.Skip, filter.Take)).
		Find(&customerModels).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, total, nil
}

// --- Mapper Functions ---

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:        data.ID,
		Phone:     data.Phone,
		Name:      data.Name,
		Points:    data.Points,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
