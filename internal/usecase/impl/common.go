// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultPageTake = 50
	maxPageTake     = 200
)

// normalizePage clamps pagination to non-negative skip and a bounded take.
func normalizePage(skip, take int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if take <= 0 {
		take = defaultPageTake
	}
	if take > maxPageTake {
		take = maxPageTake
	}

	return skip, take
}

// appendAudit writes one entry through repo, normally the transaction-bound audit repository.
func appendAudit(
	ctx context.Context,
	repo repository.AuditRepository,
	action entity.AuditAction,
	entityType, entityID string,
	userID *uuid.UUID,
	metadata map[string]any,
) error {
	entry := &entity.AuditLogEntry{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		UserID:     userID,
		Metadata:   metadata,
	}
	if err := repo.AppendAuditLog(ctx, entry); err != nil {
		return errors.Wrapf(err, "failed to append %s audit entry", action)
	}

	return nil
}

// errorCode extracts the machine-readable code of err, defaulting to INTERNAL_ERROR.
func errorCode(err error) (code, message string) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode(), appErr.Message()
	}

	return domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message()
}

func actorPtr(p entity.Principal) *uuid.UUID {
	if p.SubjectID == uuid.Nil {
		return nil
	}
	id := p.SubjectID

	return &id
}

// startOfDay truncates t to midnight UTC.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
