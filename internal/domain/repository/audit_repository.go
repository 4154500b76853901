package repository

import (
	"context"

	"loyalty/internal/domain/entity"
)

// AuditRepository appends to and reads the audit log. There is no update or delete.
type AuditRepository interface {
	AppendAuditLog(ctx context.Context, entry *entity.AuditLogEntry) error
	ListAuditLogs(ctx context.Context, filter entity.AuditFilter) ([]*entity.AuditLogEntry, int64, error)
}
