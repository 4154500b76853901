package impl

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/service"
	"loyalty/internal/infra/export"
	"loyalty/internal/infra/persistence/postgres"
	mockSvc "loyalty/internal/mocks/service"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// activationFixtures wires the engine to a real SQLite schema.
type activationFixtures struct {
	db          *gorm.DB
	service     *activationService
	publisher   *mockSvc.MockEventPublisher
	broadcaster *mockSvc.MockActivationBroadcaster
	product     *entity.Product
	admin       entity.Principal
}

func createTestActivationService(t *testing.T) activationFixtures {
	db := newTestDB(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	broadcaster := mockSvc.NewMockActivationBroadcaster(t)

	service := newActivationService(ActivationServiceParams{
		TxManager:      postgres.NewTransactionManager(db),
		ActivationRepo: postgres.NewActivationRepository(db),
		Publisher:      publisher,
		Broadcaster:    broadcaster,
		Exporter:       export.NewXLSXExporter(),
		Config:         newTestConfig(0),
		Logger:         newDiscardLogger(),
	})

	return activationFixtures{
		db:          db,
		service:     service,
		publisher:   publisher,
		broadcaster: broadcaster,
		product:     seedProduct(t, db, "12N5L", "Battery 12N5L"),
		admin:       entity.Principal{SubjectID: uuid.New(), Role: entity.RoleAdmin, Username: "admin"},
	}
}

func (f activationFixtures) expectAnnouncements() {
	f.publisher.EXPECT().PublishActivationCreated(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.broadcaster.EXPECT().BroadcastActivation(mock.Anything).Return().Maybe()
}

func TestActivationService_Activate_CreditsCustomerAndDealer(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()

	seedBarcode(t, fx.db, "12N5L0000000001", fx.product.ID)
	dealer := seedDealer(t, fx.db, "DL001", "0911111111", entity.DealerActive)

	var published *service.ActivationCreatedEvent
	fx.publisher.EXPECT().
		PublishActivationCreated(mock.Anything, mock.AnythingOfType("*service.ActivationCreatedEvent")).
		Run(func(_ context.Context, event *service.ActivationCreatedEvent) { published = event }).
		Return(nil).
		Once()
	fx.broadcaster.EXPECT().BroadcastActivation(mock.Anything).Return().Once()

	out, err := fx.service.Activate(ctx, &usecase.ActivateInput{
		Barcode:       " 12n5l0000000001 ",
		CustomerName:  "Nguyen Van A",
		CustomerPhone: "0987654321",
		DealerCode:    "dl001",
		Actor:         fx.admin,
	})
	require.NoError(t, err)

	assert.Equal(t, "12N5L", out.Product.SKU)
	assert.EqualValues(t, 1, out.CustomerPointsAfter)
	require.NotNil(t, out.DealerPointsAfter)
	assert.EqualValues(t, 1, *out.DealerPointsAfter)

	item, err := postgres.NewBarcodeRepository(fx.db).FindBarcodeByCode(ctx, "12N5L0000000001")
	require.NoError(t, err)
	assert.Equal(t, entity.BarcodeUsed, item.Status)
	assert.NotNil(t, item.ActivatedAt)

	storedDealer, err := postgres.NewDealerRepository(fx.db).FindDealerByID(ctx, dealer.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, storedDealer.Points)

	logs, total, err := postgres.NewAuditRepository(fx.db).ListAuditLogs(ctx, entity.AuditFilter{Action: entity.AuditActivationCreated, Take: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, out.ActivationID.String(), logs[0].EntityID)
	assert.Equal(t, "DL001", logs[0].Metadata["dealerCode"])

	require.NotNil(t, published)
	assert.Equal(t, "DL001", published.DealerCode)
	assert.EqualValues(t, 1, published.CustomerPoints)
}

func TestActivationService_Activate_SecondAttemptFails(t *testing.T) {
	fx := createTestActivationService(t)
	fx.expectAnnouncements()
	ctx := context.Background()

	seedBarcode(t, fx.db, "12N5L0000000002", fx.product.ID)
	input := &usecase.ActivateInput{
		Barcode:       "12N5L0000000002",
		CustomerName:  "Tran Thi B",
		CustomerPhone: "0987000001",
		Actor:         fx.admin,
	}

	_, err := fx.service.Activate(ctx, input)
	require.NoError(t, err)

	input.CustomerPhone = "0987000002"
	_, err = fx.service.Activate(ctx, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBarcodeAlreadyUsed))

	_, err = postgres.NewCustomerRepository(fx.db).FindCustomerByPhone(ctx, "0987000002")
	assert.Error(t, err, "failed activation must not leave a customer behind")
}

func TestActivationService_Activate_ConcurrentAtMostOnce(t *testing.T) {
	fx := createTestActivationService(t)
	fx.expectAnnouncements()
	ctx := context.Background()

	seedBarcode(t, fx.db, "12N5L0000000003", fx.product.ID)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			_, err := fx.service.Activate(ctx, &usecase.ActivateInput{
				Barcode:       "12N5L0000000003",
				CustomerName:  "Customer",
				CustomerPhone: fmt.Sprintf("09870000%02d", i),
				Actor:         fx.admin,
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domainerrors.ErrBarcodeAlreadyUsed):
				conflicts++
			default:
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)

	_, total, err := postgres.NewActivationRepository(fx.db).ListActivations(ctx, entity.ActivationFilter{Take: 50})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestActivationService_Activate_InactiveDealerLeavesStateUnchanged(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()

	seedBarcode(t, fx.db, "12N5L0000000004", fx.product.ID)
	seedDealer(t, fx.db, "DL009", "0911111119", entity.DealerInactive)

	_, err := fx.service.Activate(ctx, &usecase.ActivateInput{
		Barcode:       "12N5L0000000004",
		CustomerName:  "Le Van C",
		CustomerPhone: "0987000010",
		DealerCode:    "DL009",
		Actor:         fx.admin,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDealerInactive))

	item, err := postgres.NewBarcodeRepository(fx.db).FindBarcodeByCode(ctx, "12N5L0000000004")
	require.NoError(t, err)
	assert.Equal(t, entity.BarcodeUnused, item.Status)

	_, err = postgres.NewCustomerRepository(fx.db).FindCustomerByPhone(ctx, "0987000010")
	assert.Error(t, err)
}

func TestActivationService_Activate_PointsMatchActivationCount(t *testing.T) {
	fx := createTestActivationService(t)
	fx.expectAnnouncements()
	ctx := context.Background()

	dealer := seedDealer(t, fx.db, "DL002", "0911111112", entity.DealerActive)
	for i := range 3 {
		code := fmt.Sprintf("12N5L00000001%02d", i)
		seedBarcode(t, fx.db, code, fx.product.ID)

		out, err := fx.service.Activate(ctx, &usecase.ActivateInput{
			Barcode:       code,
			CustomerName:  "Pham Thi D",
			CustomerPhone: "0987000020",
			DealerCode:    "DL002",
			Actor:         fx.admin,
		})
		require.NoError(t, err)
		assert.EqualValues(t, i+1, out.CustomerPointsAfter)
	}

	customer, err := postgres.NewCustomerRepository(fx.db).FindCustomerByPhone(ctx, "0987000020")
	require.NoError(t, err)
	assert.EqualValues(t, 3, customer.Points)

	_, byCustomer, err := postgres.NewActivationRepository(fx.db).ListActivations(ctx, entity.ActivationFilter{CustomerID: &customer.ID, Take: 50})
	require.NoError(t, err)
	assert.Equal(t, customer.Points, byCustomer)

	storedDealer, err := postgres.NewDealerRepository(fx.db).FindDealerByID(ctx, dealer.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, storedDealer.Points)
}

func TestActivationService_Activate_PublishFailureDoesNotRollBack(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()

	seedBarcode(t, fx.db, "12N5L0000000005", fx.product.ID)
	fx.publisher.EXPECT().PublishActivationCreated(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
	fx.broadcaster.EXPECT().BroadcastActivation(mock.Anything).Return().Once()

	out, err := fx.service.Activate(ctx, &usecase.ActivateInput{
		Barcode:       "12N5L0000000005",
		CustomerName:  "Hoang Van E",
		CustomerPhone: "0987000030",
		Actor:         fx.admin,
	})
	require.NoError(t, err)
	assert.Nil(t, out.DealerPointsAfter)

	item, err := postgres.NewBarcodeRepository(fx.db).FindBarcodeByCode(ctx, "12N5L0000000005")
	require.NoError(t, err)
	assert.Equal(t, entity.BarcodeUsed, item.Status)
}

func TestActivationService_Activate_ValidationAndOwnership(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()

	customerActor := entity.Principal{SubjectID: uuid.New(), Role: entity.RoleCustomer, Phone: "0987000040"}
	dealerActor := entity.Principal{SubjectID: uuid.New(), Role: entity.RoleDealer, Phone: "0911111113"}

	tests := []struct {
		name    string
		input   usecase.ActivateInput
		wantErr error
	}{
		{
			name:    "malformed barcode",
			input:   usecase.ActivateInput{Barcode: "AB-1", CustomerName: "Valid Name", CustomerPhone: "0987000040", Actor: fx.admin},
			wantErr: domainerrors.ErrInvalidBarcodeFormat,
		},
		{
			name:    "unknown barcode",
			input:   usecase.ActivateInput{Barcode: "12N5L9999999999", CustomerName: "Valid Name", CustomerPhone: "0987000040", Actor: fx.admin},
			wantErr: domainerrors.ErrBarcodeNotFound,
		},
		{
			name:    "invalid phone",
			input:   usecase.ActivateInput{Barcode: "12N5L0000000006", CustomerName: "Valid Name", CustomerPhone: "12345", Actor: fx.admin},
			wantErr: domainerrors.ErrInvalidPhone,
		},
		{
			name:    "short name",
			input:   usecase.ActivateInput{Barcode: "12N5L0000000006", CustomerName: "A", CustomerPhone: "0987000040", Actor: fx.admin},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown dealer",
			input:   usecase.ActivateInput{Barcode: "12N5L0000000006", CustomerName: "Valid Name", CustomerPhone: "0987000040", DealerCode: "DL404", Actor: fx.admin},
			wantErr: domainerrors.ErrDealerNotFound,
		},
		{
			name:    "customer activating for another phone",
			input:   usecase.ActivateInput{Barcode: "12N5L0000000006", CustomerName: "Valid Name", CustomerPhone: "0987000041", Actor: customerActor},
			wantErr: domainerrors.ErrOwnershipMismatch,
		},
		{
			name:    "dealer role",
			input:   usecase.ActivateInput{Barcode: "12N5L0000000006", CustomerName: "Valid Name", CustomerPhone: "0987000040", Actor: dealerActor},
			wantErr: domainerrors.ErrRoleNotAllowed,
		},
	}

	seedBarcode(t, fx.db, "12N5L0000000006", fx.product.ID)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			_, err := fx.service.Activate(ctx, &input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}

	item, err := postgres.NewBarcodeRepository(fx.db).FindBarcodeByCode(ctx, "12N5L0000000006")
	require.NoError(t, err)
	assert.Equal(t, entity.BarcodeUnused, item.Status)
}

func TestActivationService_Activate_CustomerOwnPhone(t *testing.T) {
	fx := createTestActivationService(t)
	fx.expectAnnouncements()
	ctx := context.Background()

	seedBarcode(t, fx.db, "12N5L0000000007", fx.product.ID)
	actor := entity.Principal{SubjectID: uuid.New(), Role: entity.RoleCustomer, Phone: "0987000050"}

	_, err := fx.service.Activate(ctx, &usecase.ActivateInput{
		Barcode:       "12N5L0000000007",
		CustomerName:  "Self Service",
		CustomerPhone: "0987000050",
		Actor:         actor,
	})
	require.NoError(t, err)

	item, err := postgres.NewBarcodeRepository(fx.db).FindBarcodeByCode(ctx, "12N5L0000000007")
	require.NoError(t, err)
	assert.Nil(t, item.UsedByID, "customer self-service is not attributed to staff")
}

func TestActivationService_ListActivations_RejectsInvertedRange(t *testing.T) {
	fx := createTestActivationService(t)

	from := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	to := from.Add(-time.Hour)

	_, err := fx.service.ListActivations(context.Background(), entity.ActivationFilter{DateFrom: &from, DateTo: &to})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestActivationService_ExportActivations(t *testing.T) {
	fx := createTestActivationService(t)
	fx.expectAnnouncements()
	ctx := context.Background()
	fx.service.now = func() time.Time { return time.Date(2026, 5, 2, 10, 30, 0, 0, time.UTC) }

	seedBarcode(t, fx.db, "12N5L0000000008", fx.product.ID)
	_, err := fx.service.Activate(ctx, &usecase.ActivateInput{
		Barcode:       "12N5L0000000008",
		CustomerName:  "Export Me",
		CustomerPhone: "0987000060",
		Actor:         fx.admin,
	})
	require.NoError(t, err)

	out, err := fx.service.ExportActivations(ctx, entity.ActivationFilter{})
	require.NoError(t, err)
	assert.Equal(t, "activations-20260502-103000.xlsx", out.FileName)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", out.ContentType)
	assert.NotEmpty(t, out.Content)
}
