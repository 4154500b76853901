package postgres

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type otpRepository struct {
	db *gorm.DB
}

// NewOTPRepository is the constructor for otpRepository.
func NewOTPRepository(db *gorm.DB) repository.OTPRepository {
	return &otpRepository{db: db}
}

func (repo *otpRepository) CreateChallenge(ctx context.Context, challenge *entity.OTPChallenge) error {
	challengeM := fromOTPDomain(challenge)

	if err := repo.db.WithContext(ctx).Create(challengeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create otp challenge")
	}

	challenge.ID = challengeM.ID
	challenge.CreatedAt = challengeM.CreatedAt

	return nil
}

func (repo *otpRepository) InvalidateUnusedChallenges(ctx context.Context, phone string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OTPChallengeModel{}).
		Where("phone = ? AND used = ?", phone, false).
		Update("used", true)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to invalidate otp challenges")
	}

	return result.RowsAffected, nil
}

func (repo *otpRepository) ConsumeChallenge(ctx context.Context, phone, code string, now time.Time) (*entity.OTPChallenge, error) {
	var challengeM model.OTPChallengeModel
	err := repo.db.WithContext(ctx).
		Where("phone = ? AND code = ? AND used = ? AND expires_at > ?", phone, code, false, now).
		Order("created_at DESC").
		First(&challengeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOTPNotFound
		}

		return nil, errors.WithStack(err)
	}

	// Only one concurrent consumer observes the used=false row.
	result := repo.db.WithContext(ctx).
		Model(&model.OTPChallengeModel{}).
		Where("id = ? AND used = ?", challengeM.ID, false).
		Update("used", true)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume otp challenge")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrOTPNotFound
	}

	challengeM.Used = true

	return toOTPDomain(&challengeM), nil
}

// --- Mapper Functions ---

func toOTPDomain(data *model.OTPChallengeModel) *entity.OTPChallenge {
	return &entity.OTPChallenge{
		ID:        data.ID,
		Phone:     data.Phone,
		Code:      data.Code,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
		CreatedAt: data.CreatedAt,
	}
}

func fromOTPDomain(data *entity.OTPChallenge) *model.OTPChallengeModel {
	return &model.OTPChallengeModel{
		ID:        data.ID,
		Phone:     data.Phone,
		Code:      data.Code,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
		CreatedAt: data.CreatedAt,
	}
}
