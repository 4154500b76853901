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

type userAccountRepository struct {
	db *gorm.DB
}

// NewUserAccountRepository is the constructor for userAccountRepository.
func NewUserAccountRepository(db *gorm.DB) repository.UserAccountRepository {
	return &userAccountRepository{db: db}
}

func (repo *userAccountRepository) CreateUserAccount(ctx context.Context, account *entity.UserAccount) error {
	accountM := fromUserAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUserAccount
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

func (repo *userAccountRepository) FindUserAccountByID(ctx context.Context, id uuid.UUID) (*entity.UserAccount, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *userAccountRepository) FindUserAccountByPhone(ctx context.Context, phone string) (*entity.UserAccount, error) {
	return repo.findOne(ctx, "phone = ?", phone)
}

func (repo *userAccountRepository) findOne(ctx context.Context, query string, args ...any) (*entity.UserAccount, error) {
	var accountM model.UserAccountModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserAccountNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toUserAccountDomain(&accountM), nil
}

type staffUserRepository struct {
	db *gorm.DB
}

// NewStaffUserRepository is the constructor for staffUserRepository.
func NewStaffUserRepository(db *gorm.DB) repository.StaffUserRepository {
	return &staffUserRepository{db: db}
}

func (repo *staffUserRepository) CreateStaffUser(ctx context.Context, user *entity.StaffUser) error {
	userM := fromStaffUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateStaffUser
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create staff user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *staffUserRepository) FindStaffUserByID(ctx context.Context, id uuid.UUID) (*entity.StaffUser, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *staffUserRepository) FindStaffUserByUsername(ctx context.Context, username string) (*entity.StaffUser, error) {
	return repo.findOne(ctx, "username = ?", username)
}

func (repo *staffUserRepository) findOne(ctx context.Context, query string, args ...any) (*entity.StaffUser, error) {
	var userM model.StaffUserModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffUserNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toStaffUserDomain(&userM), nil
}

// --- Mapper Functions ---

func toUserAccountDomain(data *model.UserAccountModel) *entity.UserAccount {
	if data == nil {
		return nil
	}

	return &entity.UserAccount{
		ID:         data.ID,
		Phone:      data.Phone,
		Role:       entity.Role(data.Role),
		CustomerID: data.CustomerID,
		DealerID:   data.DealerID,
		Active:     data.Active,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromUserAccountDomain(data *entity.UserAccount) *model.UserAccountModel {
	return &model.UserAccountModel{
		ID:         data.ID,
		Phone:      data.Phone,
		Role:       string(data.Role),
		CustomerID: data.CustomerID,
		DealerID:   data.DealerID,
		Active:     data.Active,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toStaffUserDomain(data *model.StaffUserModel) *entity.StaffUser {
	if data == nil {
		return nil
	}

	return &entity.StaffUser{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromStaffUserDomain(data *entity.StaffUser) *model.StaffUserModel {
	return &model.StaffUserModel{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Role:         string(data.Role),
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
