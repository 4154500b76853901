package impl

import (
	"context"

	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/repository"
	"loyalty/internal/usecase"

	"github.com/pkg/errors"
)

type auditService struct {
	auditRepo repository.AuditRepository
}

// NewAuditService creates the audit log reader.
func NewAuditService(auditRepo repository.AuditRepository) usecase.AuditUsecase {
	return &auditService{auditRepo: auditRepo}
}

// ListAuditLogs returns audit entries newest first.
func (s *auditService) ListAuditLogs(ctx context.Context, filter entity.AuditFilter) (*usecase.Page[*entity.AuditLogEntry], error) {
	filter.Skip, filter.Take = normalizePage(filter.Skip, filter.Take)

	items, total, err := s.auditRepo.ListAuditLogs(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit logs")
	}

	return &usecase.Page[*entity.AuditLogEntry]{Items: items, Total: total, Skip: filter.Skip, Take: filter.Take}, nil
}
