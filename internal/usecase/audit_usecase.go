package usecase

import (
	"context"

	"loyalty/internal/domain/entity"
)

// AuditUsecase exposes the audit trail to administrators.
type AuditUsecase interface {
	ListAuditLogs(ctx context.Context, filter entity.AuditFilter) (*Page[*entity.AuditLogEntry], error)
}
