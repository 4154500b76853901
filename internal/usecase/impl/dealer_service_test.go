package impl

import (
	"context"
	"testing"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	mockRepo "loyalty/internal/mocks/repository"
	mockSvc "loyalty/internal/mocks/service"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dealerServiceFixtures holds all test dependencies for dealer service tests.
type dealerServiceFixtures struct {
	service      usecase.DealerUsecase
	txManager    *mockRepo.MockTransactionManager
	dealerRepo   *mockRepo.MockDealerRepository
	qrService    *mockSvc.MockQRCodeService
	factory      *mockRepo.MockRepositoryFactory
	txDealerRepo *mockRepo.MockDealerRepository
	txAudit      *mockRepo.MockAuditRepository
}

func createTestDealerService(t *testing.T) dealerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	dealerRepo := mockRepo.NewMockDealerRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	service := NewDealerService(DealerServiceParams{
		TxManager:  txManager,
		DealerRepo: dealerRepo,
		QRService:  qrService,
		Logger:     newDiscardLogger(),
	})

	fx := dealerServiceFixtures{
		service:      service,
		txManager:    txManager,
		dealerRepo:   dealerRepo,
		qrService:    qrService,
		factory:      mockRepo.NewMockRepositoryFactory(t),
		txDealerRepo: mockRepo.NewMockDealerRepository(t),
		txAudit:      mockRepo.NewMockAuditRepository(t),
	}
	fx.factory.EXPECT().NewDealerRepository().Return(fx.txDealerRepo).Maybe()
	fx.factory.EXPECT().NewAuditRepository().Return(fx.txAudit).Maybe()

	return fx
}

func auditAction(action entity.AuditAction) any {
	return mock.MatchedBy(func(entry *entity.AuditLogEntry) bool { return entry.Action == action })
}

func TestDealerService_LookupDealer(t *testing.T) {
	fx := createTestDealerService(t)
	ctx := context.Background()

	active := &entity.Dealer{ID: uuid.New(), Code: "DL001", Status: entity.DealerActive}
	fx.dealerRepo.EXPECT().FindDealerByCode(ctx, "DL001").Return(active, nil)
	fx.dealerRepo.EXPECT().FindDealerByCode(ctx, "DL002").Return(&entity.Dealer{Code: "DL002", Status: entity.DealerInactive}, nil)
	fx.dealerRepo.EXPECT().FindDealerByCode(ctx, "DL404").Return(nil, repository.ErrDealerNotFound)

	dealer, err := fx.service.LookupDealer(ctx, " dl001 ")
	require.NoError(t, err)
	assert.Equal(t, active, dealer)

	_, err = fx.service.LookupDealer(ctx, "DL002")
	assert.True(t, errors.Is(err, domainerrors.ErrDealerNotFound), "inactive dealers are hidden from lookup")

	_, err = fx.service.LookupDealer(ctx, "DL404")
	assert.True(t, errors.Is(err, domainerrors.ErrDealerNotFound))

	_, err = fx.service.LookupDealer(ctx, "not-a-code")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDealerService_DealerQRCode(t *testing.T) {
	fx := createTestDealerService(t)
	ctx := context.Background()

	fx.dealerRepo.EXPECT().FindDealerByCode(ctx, "DL001").Return(&entity.Dealer{Code: "DL001", Status: entity.DealerActive}, nil)
	fx.qrService.EXPECT().GenerateDealerQR("DL001").Return([]byte("png"), nil)

	png, err := fx.service.DealerQRCode(ctx, "DL001")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestDealerService_CreateDealer(t *testing.T) {
	fx := createTestDealerService(t)
	passThroughTx(fx.txManager, fx.factory)
	ctx := context.Background()
	actorID := uuid.New()

	fx.txDealerRepo.EXPECT().
		CreateDealer(ctx, mock.MatchedBy(func(d *entity.Dealer) bool {
			return d.Code == "DL003" && d.Status == entity.DealerActive && d.Points == 0
		})).
		Return(nil)
	fx.txAudit.EXPECT().AppendAuditLog(ctx, auditAction(entity.AuditDealerCreated)).Return(nil)

	dealer, err := fx.service.CreateDealer(ctx, &usecase.CreateDealerInput{
		Code:     "dl003",
		Name:     "Dealer Three",
		ShopName: "Shop Three",
		Phone:    "0911000003",
		ActorID:  &actorID,
	})
	require.NoError(t, err)
	assert.Equal(t, "DL003", dealer.Code)
}

func TestDealerService_CreateDealer_Duplicate(t *testing.T) {
	fx := createTestDealerService(t)
	passThroughTx(fx.txManager, fx.factory)
	ctx := context.Background()

	fx.txDealerRepo.EXPECT().CreateDealer(ctx, mock.Anything).Return(repository.ErrDuplicateDealer)

	_, err := fx.service.CreateDealer(ctx, &usecase.CreateDealerInput{Code: "DL001", Name: "Again"})
	assert.True(t, errors.Is(err, domainerrors.ErrDealerAlreadyExists))
}

func TestDealerService_CreateDealer_Validation(t *testing.T) {
	fx := createTestDealerService(t)

	inputs := []struct {
		input   usecase.CreateDealerInput
		wantErr error
	}{
		{usecase.CreateDealerInput{Code: "D1", Name: "x"}, domainerrors.ErrValidationFailed},
		{usecase.CreateDealerInput{Code: "DL001"}, domainerrors.ErrValidationFailed},
		{usecase.CreateDealerInput{Code: "DL001", Name: "x", Phone: "123"}, domainerrors.ErrInvalidPhone},
	}
	for _, tt := range inputs {
		_, err := fx.service.CreateDealer(context.Background(), &tt.input)
		assert.True(t, errors.Is(err, tt.wantErr), "%+v: %v", tt.input, err)
	}
}

func TestDealerService_UpdateDealer(t *testing.T) {
	fx := createTestDealerService(t)
	passThroughTx(fx.txManager, fx.factory)
	ctx := context.Background()

	existing := &entity.Dealer{ID: uuid.New(), Code: "DL001", Name: "Old", Points: 9, Status: entity.DealerActive}
	name := "New Name"

	fx.txDealerRepo.EXPECT().FindDealerByID(ctx, existing.ID).Return(existing, nil)
	fx.txDealerRepo.EXPECT().
		UpdateDealer(ctx, mock.MatchedBy(func(d *entity.Dealer) bool { return d.Name == "New Name" && d.Points == 9 })).
		Return(nil)
	fx.txAudit.EXPECT().
		AppendAuditLog(ctx, mock.MatchedBy(func(entry *entity.AuditLogEntry) bool {
			return entry.Action == entity.AuditDealerUpdated && entry.Metadata["name"] == "New Name"
		})).
		Return(nil)

	dealer, err := fx.service.UpdateDealer(ctx, &usecase.UpdateDealerInput{ID: existing.ID, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "New Name", dealer.Name)
}

func TestDealerService_DeactivateDealer_Idempotent(t *testing.T) {
	fx := createTestDealerService(t)
	passThroughTx(fx.txManager, fx.factory)
	ctx := context.Background()

	dealer := &entity.Dealer{ID: uuid.New(), Code: "DL001", Status: entity.DealerActive}
	fx.txDealerRepo.EXPECT().FindDealerByID(ctx, dealer.ID).Return(dealer, nil).Twice()
	fx.txDealerRepo.EXPECT().UpdateDealer(ctx, dealer).Return(nil).Once()
	fx.txAudit.EXPECT().AppendAuditLog(ctx, auditAction(entity.AuditDealerDeactivated)).Return(nil).Once()

	out, err := fx.service.DeactivateDealer(ctx, dealer.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.DealerInactive, out.Status)

	out, err = fx.service.DeactivateDealer(ctx, dealer.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.DealerInactive, out.Status)
}

func TestDealerService_DeactivateDealer_NotFound(t *testing.T) {
	fx := createTestDealerService(t)
	passThroughTx(fx.txManager, fx.factory)
	id := uuid.New()

	fx.txDealerRepo.EXPECT().FindDealerByID(mock.Anything, id).Return(nil, repository.ErrDealerNotFound)

	_, err := fx.service.DeactivateDealer(context.Background(), id, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrDealerNotFound))
}

func TestDealerService_ListDealers(t *testing.T) {
	fx := createTestDealerService(t)
	ctx := context.Background()

	fx.dealerRepo.EXPECT().
		ListDealers(ctx, entity.DirectoryFilter{Search: "shop", Skip: 10, Take: 20}).
		Return([]*entity.Dealer{{Code: "DL001"}}, int64(11), nil)

	page, err := fx.service.ListDealers(ctx, entity.DirectoryFilter{Search: " shop ", Skip: 10, Take: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 11, page.Total)
	assert.Len(t, page.Items, 1)
}
