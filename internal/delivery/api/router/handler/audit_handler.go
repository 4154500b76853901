package handler

import (
	"strings"

	"loyalty/internal/delivery/api/response"
	"loyalty/internal/domain/entity"
	"loyalty/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuditHandlerParams holds dependencies for AuditHandler, injected by Fx.
type AuditHandlerParams struct {
	fx.In

	AuditUC usecase.AuditUsecase
}

// AuditHandler serves the audit trail.
type AuditHandler struct {
	auditUC usecase.AuditUsecase
}

// NewAuditHandler is the constructor for AuditHandler.
func NewAuditHandler(params AuditHandlerParams) *AuditHandler {
	return &AuditHandler{auditUC: params.AuditUC}
}

// ListAuditLogs lists audit entries newest first.
func (h *AuditHandler) ListAuditLogs(c echo.Context) error {
	skip, take, err := pageQuery(c)
	if err != nil {
		return err
	}

	page, err := h.auditUC.ListAuditLogs(c.Request().Context(), entity.AuditFilter{
		Action:     entity.AuditAction(strings.ToUpper(strings.TrimSpace(c.QueryParam("action")))),
		EntityType: strings.TrimSpace(c.QueryParam("entityType")),
		Skip:       skip,
		Take:       take,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, page, toAuditLogView)
}
