package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type dealerService struct {
	txManager  repository.TransactionManager
	dealerRepo repository.DealerRepository
	qrService  service.QRCodeService
	logger     *slog.Logger
}

// DealerServiceParams holds dependencies for DealerService, injected by Fx.
type DealerServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	DealerRepo repository.DealerRepository
	QRService  service.QRCodeService
	Logger     *slog.Logger
}

// NewDealerService creates the dealer directory service.
func NewDealerService(params DealerServiceParams) usecase.DealerUsecase {
	return &dealerService{
		txManager:  params.TxManager,
		dealerRepo: params.DealerRepo,
		qrService:  params.QRService,
		logger:     params.Logger,
	}
}

func (srv *dealerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeDealerCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// LookupDealer resolves an active dealer by its public code.
func (srv *dealerService) LookupDealer(ctx context.Context, code string) (*entity.Dealer, error) {
	code = normalizeDealerCode(code)
	if !entity.IsValidDealerCode(code) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("dealer code must look like DL001")
	}

	dealer, err := srv.dealerRepo.FindDealerByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrDealerNotFound) {
			return nil, domainerrors.ErrDealerNotFound.WithDetails(code)
		}

		return nil, errors.Wrap(err, "failed to find dealer")
	}
	if !dealer.IsActive() {
		return nil, domainerrors.ErrDealerNotFound.WithDetails(code)
	}

	return dealer, nil
}

// DealerQRCode renders the QR code customers scan to credit the dealer.
func (srv *dealerService) DealerQRCode(ctx context.Context, code string) ([]byte, error) {
	dealer, err := srv.LookupDealer(ctx, code)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateDealerQR(dealer.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate dealer qr code")
	}

	return png, nil
}

// CreateDealer registers a new active dealer with zero points.
func (srv *dealerService) CreateDealer(ctx context.Context, input *usecase.CreateDealerInput) (*entity.Dealer, error) {
	dealer := &entity.Dealer{
		Code:     normalizeDealerCode(input.Code),
		Name:     strings.TrimSpace(input.Name),
		ShopName: strings.TrimSpace(input.ShopName),
		Phone:    entity.NormalizePhone(input.Phone),
		Address:  strings.TrimSpace(input.Address),
		Status:   entity.DealerActive,
	}
	if err := validateDealer(dealer); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewDealerRepository().CreateDealer(ctx, dealer); err != nil {
			if errors.Is(err, repository.ErrDuplicateDealer) {
				return domainerrors.ErrDealerAlreadyExists.WithDetails(dealer.Code)
			}

			return errors.Wrap(err, "failed to create dealer")
		}

		return appendAudit(ctx, repoFactory.NewAuditRepository(), entity.AuditDealerCreated, entity.AuditEntityDealer, dealer.ID.String(), input.ActorID, map[string]any{
			"code": dealer.Code,
			"name": dealer.Name,
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute create dealer transaction")
	}

	srv.log(ctx).Info("Dealer created", slog.String("code", dealer.Code))

	return dealer, nil
}

// UpdateDealer changes the dealer's profile. Code, points and status are not editable here.
func (srv *dealerService) UpdateDealer(ctx context.Context, input *usecase.UpdateDealerInput) (*entity.Dealer, error) {
	var dealer *entity.Dealer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dealerRepo := repoFactory.NewDealerRepository()

		var err error
		dealer, err = dealerRepo.FindDealerByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrDealerNotFound) {
				return domainerrors.ErrDealerNotFound
			}

			return errors.Wrap(err, "failed to find dealer")
		}

		changed := map[string]any{}
		if input.Name != nil {
			dealer.Name = strings.TrimSpace(*input.Name)
			changed["name"] = dealer.Name
		}
		if input.ShopName != nil {
			dealer.ShopName = strings.TrimSpace(*input.ShopName)
			changed["shopName"] = dealer.ShopName
		}
		if input.Phone != nil {
			dealer.Phone = entity.NormalizePhone(*input.Phone)
			changed["phone"] = dealer.Phone
		}
		if input.Address != nil {
			dealer.Address = strings.TrimSpace(*input.Address)
			changed["address"] = dealer.Address
		}
		if err := validateDealer(dealer); err != nil {
			return err
		}

		if err := dealerRepo.UpdateDealer(ctx, dealer); err != nil {
			return errors.Wrap(err, "failed to update dealer")
		}

		return appendAudit(ctx, repoFactory.NewAuditRepository(), entity.AuditDealerUpdated, entity.AuditEntityDealer, dealer.ID.String(), input.ActorID, changed)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update dealer transaction")
	}

	return dealer, nil
}

// DeactivateDealer moves the dealer to INACTIVE. Its history stays intact and repeating
// the call is harmless.
func (srv *dealerService) DeactivateDealer(ctx context.Context, id uuid.UUID, actorID *uuid.UUID) (*entity.Dealer, error) {
	var dealer *entity.Dealer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dealerRepo := repoFactory.NewDealerRepository()

		var err error
		dealer, err = dealerRepo.FindDealerByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrDealerNotFound) {
				return domainerrors.ErrDealerNotFound
			}

			return errors.Wrap(err, "failed to find dealer")
		}
		if !dealer.IsActive() {
			return nil
		}

		dealer.Deactivate()
		if err := dealerRepo.UpdateDealer(ctx, dealer); err != nil {
			return errors.Wrap(err, "failed to deactivate dealer")
		}

		return appendAudit(ctx, repoFactory.NewAuditRepository(), entity.AuditDealerDeactivated, entity.AuditEntityDealer, dealer.ID.String(), actorID, map[string]any{
			"code": dealer.Code,
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute deactivate dealer transaction")
	}

	srv.log(ctx).Info("Dealer deactivated", slog.String("code", dealer.Code))

	return dealer, nil
}

// ListDealers returns dealers ordered by code.
func (srv *dealerService) ListDealers(ctx context.Context, filter entity.DirectoryFilter) (*usecase.Page[*entity.Dealer], error) {
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Skip, filter.Take = normalizePage(filter.Skip, filter.Take)

	items, total, err := srv.dealerRepo.ListDealers(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dealers")
	}

	return &usecase.Page[*entity.Dealer]{Items: items, Total: total, Skip: filter.Skip, Take: filter.Take}, nil
}

func validateDealer(d *entity.Dealer) error {
	switch {
	case !entity.IsValidDealerCode(d.Code):
		return domainerrors.ErrValidationFailed.WithDetails("dealer code must look like DL001")
	case d.Name == "":
		return domainerrors.ErrValidationFailed.WithDetails("dealer name is required")
	case d.Phone != "" && !entity.IsValidPhone(d.Phone):
		return domainerrors.ErrInvalidPhone.WithDetails(d.Phone)
	}

	return nil
}
