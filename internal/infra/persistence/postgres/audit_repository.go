package postgres

import (
	"context"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

func (repo *auditRepository) AppendAuditLog(ctx context.Context, entry *entity.AuditLogEntry) error {
	entryM := fromAuditDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append audit log")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

func (repo *auditRepository) ListAuditLogs(ctx context.Context, filter entity.AuditFilter) ([]*entity.AuditLogEntry, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.AuditLogModel{})
	if filter.Action != "" {
		query = query.Where("action = ?", string(filter.Action))
	}
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var entryModels []*model.AuditLogModel
	if err := query.
		Order("created_at DESC").
		Scopes(paginate(filter.Skip, filter.Take)).
		Find(&entryModels).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	entries := make([]*entity.AuditLogEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toAuditDomain(entryM))
	}

	return entries, total, nil
}

// --- Mapper Functions ---

func toAuditDomain(data *model.AuditLogModel) *entity.AuditLogEntry {
	if data == nil {
		return nil
	}

	return &entity.AuditLogEntry{
		ID:         data.ID,
		Action:     entity.AuditAction(data.Action),
		EntityType: data.EntityType,
		EntityID:   data.EntityID,
		UserID:     data.UserID,
		Metadata:   map[string]any(data.Metadata),
		CreatedAt:  data.CreatedAt,
	}
}

func fromAuditDomain(data *entity.AuditLogEntry) *model.AuditLogModel {
	var metadata datatypes.JSONMap
	if len(data.Metadata) > 0 {
		metadata = datatypes.JSONMap(data.Metadata)
	}

	return &model.AuditLogModel{
		ID:         data.ID,
		Action:     string(data.Action),
		EntityType: data.EntityType,
		EntityID:   data.EntityID,
		UserID:     data.UserID,
		Metadata:   metadata,
		CreatedAt:  data.CreatedAt,
	}
}
