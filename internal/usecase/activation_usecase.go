package usecase

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivateInput redeems one barcode for a customer, optionally crediting a dealer.
type ActivateInput struct {
	Barcode       string
	CustomerName  string
	CustomerPhone string
	DealerCode    string // Empty when no dealer is credited.
	Actor         entity.Principal
}

// ActivateOutput reports the committed activation and the resulting balances.
type ActivateOutput struct {
	ActivationID        uuid.UUID
	Product             entity.ProductSummary
	CustomerPointsAfter int64
	DealerPointsAfter   *int64
	ActivatedAt         time.Time
}

// ExportOutput is a rendered report ready to be sent as a download.
type ExportOutput struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ActivationUsecase is the activation engine plus its read side.
type ActivationUsecase interface {
	// Activate marks the barcode used, credits the customer and dealer, records the
	// activation and writes the audit entry in one transaction.
	Activate(ctx context.Context, input *ActivateInput) (*ActivateOutput, error)

	ListActivations(ctx context.Context, filter entity.ActivationFilter) (*Page[*entity.ActivationRecord], error)
	ExportActivations(ctx context.Context, filter entity.ActivationFilter) (*ExportOutput, error)
}
