package impl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"loyalty/config"
	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	"loyalty/internal/usecase"
	"loyalty/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minCustomerNameLength = 2
	maxCustomerNameLength = 100
)

// activationService is the activation engine.
type activationService struct {
	txManager      repository.TransactionManager
	activationRepo repository.ActivationRepository
	publisher      service.EventPublisher
	broadcaster    service.ActivationBroadcaster
	exporter       service.ActivationExporter
	exportMaxRows  int
	logger         *slog.Logger

	now func() time.Time
}

// ActivationServiceParams holds dependencies for ActivationService, injected by Fx.
type ActivationServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ActivationRepo repository.ActivationRepository
	Publisher      service.EventPublisher
	Broadcaster    service.ActivationBroadcaster `optional:"true"`
	Exporter       service.ActivationExporter
	Config         *config.Config
	Logger         *slog.Logger
}

// NewActivationService creates the activation engine.
func NewActivationService(params ActivationServiceParams) usecase.ActivationUsecase {
	return newActivationService(params)
}

func newActivationService(params ActivationServiceParams) *activationService {
	maxRows := config.DefaultExportMaxRows
	if params.Config != nil && params.Config.Export != nil && params.Config.Export.MaxRows > 0 {
		maxRows = params.Config.Export.MaxRows
	}

	return &activationService{
		txManager:      params.TxManager,
		activationRepo: params.ActivationRepo,
		publisher:      params.Publisher,
		broadcaster:    params.Broadcaster,
		exporter:       params.Exporter,
		exportMaxRows:  maxRows,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *activationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// activationRequest is the validated, normalised form of ActivateInput.
type activationRequest struct {
	barcode    string
	name       string
	phone      string
	dealerCode string
	actor      entity.Principal
}

func (srv *activationService) validate(input *usecase.ActivateInput) (*activationRequest, error) {
	req := &activationRequest{
		barcode:    entity.NormalizeBarcode(input.Barcode),
		name:       strings.TrimSpace(input.CustomerName),
		phone:      entity.NormalizePhone(input.CustomerPhone),
		dealerCode: strings.ToUpper(strings.TrimSpace(input.DealerCode)),
		actor:      input.Actor,
	}

	if !entity.IsLookupableBarcode(req.barcode) {
		return nil, domainerrors.ErrInvalidBarcodeFormat.WithDetails(req.barcode)
	}
	if !entity.IsValidPhone(req.phone) {
		return nil, domainerrors.ErrInvalidPhone.WithDetails(req.phone)
	}
	if n := utf8.RuneCountInString(req.name); n < minCustomerNameLength || n > maxCustomerNameLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("customer name must be 2-100 characters")
	}
	if req.dealerCode != "" && !entity.IsValidDealerCode(req.dealerCode) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("dealer code must look like DL001")
	}

	switch req.actor.Role {
	case entity.RoleAdmin, entity.RoleStaff:
	case entity.RoleCustomer:
		if req.actor.Phone != req.phone {
			return nil, domainerrors.ErrOwnershipMismatch.WithDetails("customers can only activate for their own phone")
		}
	default:
		return nil, domainerrors.ErrRoleNotAllowed
	}

	return req, nil
}

// activationResult carries what the transaction produced to the post-commit steps.
type activationResult struct {
	activation  *entity.Activation
	barcode     *entity.BarcodeItem
	customer    *entity.Customer
	dealer      *entity.Dealer
	customerPts int64
	dealerPts   *int64
}

// Activate redeems a barcode. Steps 1-4 only validate; a failure there, or anywhere in
// 5-9, rolls the whole transaction back.
func (srv *activationService) Activate(ctx context.Context, input *usecase.ActivateInput) (*usecase.ActivateOutput, error) {
	req, err := srv.validate(input)
	if err != nil {
		return nil, err
	}

	var staffID *uuid.UUID
	if req.actor.Role.IsStaffSide() {
		staffID = actorPtr(req.actor)
	}

	srv.log(ctx).Debug("Starting activation", slog.String("barcode", req.barcode), slog.String("dealerCode", req.dealerCode))

	var res activationResult
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		barcodeRepo := repoFactory.NewBarcodeRepository()
		customerRepo := repoFactory.NewCustomerRepository()
		dealerRepo := repoFactory.NewDealerRepository()

		// 1. Look up and lock the barcode.
		item, err := barcodeRepo.FindBarcodeByCodeForUpdate(ctx, req.barcode)
		if err != nil {
			if errors.Is(err, repository.ErrBarcodeNotFound) {
				return domainerrors.ErrBarcodeNotFound.WithDetails(req.barcode)
			}

			return errors.Wrap(err, "failed to find barcode")
		}
		if item.Product == nil {
			return errors.Errorf("barcode %s loaded without product", req.barcode)
		}

		// 2. At most once.
		if item.IsUsed() {
			return domainerrors.ErrBarcodeAlreadyUsed.WithDetails(req.barcode)
		}

		// 3. Upsert the customer by phone.
		customer, err := customerRepo.UpsertCustomerByPhone(ctx, req.phone, req.name)
		if err != nil {
			return errors.Wrap(err, "failed to upsert customer")
		}

		// 4. Resolve the dealer; it must be active.
		var dealer *entity.Dealer
		if req.dealerCode != "" {
			dealer, err = dealerRepo.FindDealerByCode(ctx, req.dealerCode)
			if err != nil {
				if errors.Is(err, repository.ErrDealerNotFound) {
					return domainerrors.ErrDealerNotFound.WithDetails(req.dealerCode)
				}

				return errors.Wrap(err, "failed to find dealer")
			}
			if !dealer.IsActive() {
				return domainerrors.ErrDealerInactive.WithDetails(req.dealerCode)
			}
		}

		// 5. Mark the barcode used; the update is conditional on UNUSED.
		activatedAt := srv.now().UTC()
		if err := barcodeRepo.MarkBarcodeUsed(ctx, item.ID, staffID, activatedAt); err != nil {
			if errors.Is(err, repository.ErrBarcodeAlreadyUsed) {
				return domainerrors.ErrBarcodeAlreadyUsed.WithDetails(req.barcode)
			}

			return errors.Wrap(err, "failed to mark barcode used")
		}

		// 6. Credit the customer.
		customerPts, err := customerRepo.IncrementCustomerPoints(ctx, customer.ID, entity.PointsPerActivation)
		if err != nil {
			return errors.Wrap(err, "failed to credit customer")
		}

		// 7. Credit the dealer.
		var dealerPts *int64
		var dealerID *uuid.UUID
		if dealer != nil {
			pts, err := dealerRepo.IncrementDealerPoints(ctx, dealer.ID, entity.PointsPerActivation)
			if err != nil {
				return errors.Wrap(err, "failed to credit dealer")
			}
			dealerPts = &pts
			dealerID = &dealer.ID
		}

		// 8. Record the activation.
		activation := &entity.Activation{
			BarcodeItemID: item.ID,
			CustomerID:    customer.ID,
			DealerID:      dealerID,
			ProductID:     item.ProductID,
			StaffID:       staffID,
			PointsAwarded: entity.PointsPerActivation,
		}
		if err := repoFactory.NewActivationRepository().CreateActivation(ctx, activation); err != nil {
			if errors.Is(err, repository.ErrDuplicateActivation) {
				return domainerrors.ErrBarcodeAlreadyUsed.WithDetails(req.barcode)
			}

			return errors.Wrap(err, "failed to create activation")
		}

		// 9. Audit.
		var dealerCode any
		if dealer != nil {
			dealerCode = dealer.Code
		}
		if err := appendAudit(ctx, repoFactory.NewAuditRepository(), entity.AuditActivationCreated, entity.AuditEntityActivation, activation.ID.String(), actorPtr(req.actor), map[string]any{
			"barcode":       req.barcode,
			"customerPhone": req.phone,
			"customerName":  req.name,
			"dealerCode":    dealerCode,
			"productName":   item.Product.Name,
			"productSku":    item.Product.SKU,
		}); err != nil {
			return err
		}

		res = activationResult{
			activation:  activation,
			barcode:     item,
			customer:    customer,
			dealer:      dealer,
			customerPts: customerPts,
			dealerPts:   dealerPts,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Activation failed", slog.String("barcode", req.barcode), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute activation transaction")
	}

	srv.log(ctx).Info("Activation committed",
		slog.Any("activationID", res.activation.ID),
		slog.String("barcode", req.barcode),
		slog.Int64("customerPoints", res.customerPts),
	)

	srv.announce(ctx, req, &res)

	return &usecase.ActivateOutput{
		ActivationID:        res.activation.ID,
		Product:             res.barcode.Product.Summary(),
		CustomerPointsAfter: res.customerPts,
		DealerPointsAfter:   res.dealerPts,
		ActivatedAt:         res.activation.CreatedAt,
	}, nil
}

// announce fans the committed activation out to subscribers. The activation is already
// durable, so failures are only logged.
func (srv *activationService) announce(ctx context.Context, req *activationRequest, res *activationResult) {
	event := &service.ActivationCreatedEvent{
		RequestID:         deliverycontext.GetRequestIDFromContext(ctx),
		ActivationID:      res.activation.ID.String(),
		Barcode:           req.barcode,
		ProductName:       res.barcode.Product.Name,
		ProductSKU:        res.barcode.Product.SKU,
		CustomerID:        res.customer.ID.String(),
		CustomerName:      req.name,
		CustomerPhone:     req.phone,
		CustomerPoints:    res.customerPts,
		DealerPoints:      res.dealerPts,
		ActivatedAtMillis: res.activation.CreatedAt.UnixMilli(),
	}
	if res.dealer != nil {
		event.DealerID = res.dealer.ID.String()
		event.DealerCode = res.dealer.Code
	}

	if err := srv.publisher.PublishActivationCreated(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish activation event", slog.String("activationID", event.ActivationID), slog.Any("error", err))
	}
	if srv.broadcaster != nil {
		srv.broadcaster.BroadcastActivation(event)
	}
}

// ListActivations returns activations newest first.
func (srv *activationService) ListActivations(ctx context.Context, filter entity.ActivationFilter) (*usecase.Page[*entity.ActivationRecord], error) {
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("dateTo is before dateFrom")
	}
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Skip, filter.Take = normalizePage(filter.Skip, filter.Take)

	items, total, err := srv.activationRepo.ListActivations(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activations")
	}

	return &usecase.Page[*entity.ActivationRecord]{Items: items, Total: total, Skip: filter.Skip, Take: filter.Take}, nil
}

// ExportActivations renders every activation matching filter, up to the configured row limit.
func (srv *activationService) ExportActivations(ctx context.Context, filter entity.ActivationFilter) (*usecase.ExportOutput, error) {
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("dateTo is before dateFrom")
	}
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Skip = 0
	filter.Take = srv.exportMaxRows

	records, total, err := srv.activationRepo.ListActivations(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load activations for export")
	}
	if total > int64(len(records)) {
		srv.log(ctx).Warn("Activation export truncated", slog.Int64("total", total), slog.Int("rows", len(records)))
	}

	var buf bytes.Buffer
	if err := srv.exporter.WriteActivations(&buf, records); err != nil {
		return nil, errors.Wrap(err, "failed to render activation export")
	}

	srv.log(ctx).Info("Activation export rendered",
		slog.Int("rows", len(records)),
		slog.String("size", util.FormatBytes(int64(buf.Len()))),
	)

	return &usecase.ExportOutput{
		FileName:    fmt.Sprintf("activations-%s.%s", srv.now().UTC().Format("20060102-150405"), srv.exporter.FileExtension()),
		ContentType: srv.exporter.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}
