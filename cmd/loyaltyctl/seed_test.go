package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	mockUC "loyalty/internal/mocks/usecase"
	"loyalty/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type seedMocks struct {
	auth     *mockUC.MockAuthUsecase
	products *mockUC.MockProductUsecase
	dealers  *mockUC.MockDealerUsecase
	barcodes *mockUC.MockBarcodeUsecase
}

func newTestSeeder(t *testing.T) (*seeder, seedMocks) {
	t.Helper()

	m := seedMocks{
		auth:     mockUC.NewMockAuthUsecase(t),
		products: mockUC.NewMockProductUsecase(t),
		dealers:  mockUC.NewMockDealerUsecase(t),
		barcodes: mockUC.NewMockBarcodeUsecase(t),
	}
	deps := seedDeps{
		AuthUC:    m.auth,
		ProductUC: m.products,
		DealerUC:  m.dealers,
		BarcodeUC: m.barcodes,
	}

	return newSeeder(deps, &bytes.Buffer{}), m
}

func TestSeeder_Run_FreshDatabase(t *testing.T) {
	s, m := newTestSeeder(t)
	ctx := context.Background()

	m.auth.EXPECT().CreateStaffUser(ctx, mock.Anything).Return(&entity.StaffUser{}, nil).Times(2)
	m.products.EXPECT().CreateProduct(ctx, mock.Anything).Return(&entity.Product{}, nil).Times(len(seedProducts))
	m.dealers.EXPECT().CreateDealer(ctx, mock.Anything).Return(&entity.Dealer{}, nil).Times(len(seedDealers))
	m.barcodes.EXPECT().
		BatchRegisterBarcodes(ctx, mock.MatchedBy(func(in *usecase.BatchRegisterInput) bool {
			return len(in.Items) == len(seedProducts)*sampleBarcodesPerProduct
		})).
		RunAndReturn(func(_ context.Context, in *usecase.BatchRegisterInput) (*usecase.BatchRegisterOutput, error) {
			out := &usecase.BatchRegisterOutput{Total: len(in.Items)}
			for _, item := range in.Items {
				out.Results = append(out.Results, usecase.BatchItemResult{Code: item.Code, Status: usecase.BatchItemCreated})
			}

			return out, nil
		}).
		Once()

	report, err := s.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, seedCount{Created: 2}, report.Staff)
	assert.Equal(t, seedCount{Created: 5}, report.Products)
	assert.Equal(t, seedCount{Created: 5}, report.Dealers)
	assert.Equal(t, seedCount{Created: 50}, report.Barcodes)
}

func TestSeeder_Run_IsIdempotent(t *testing.T) {
	s, m := newTestSeeder(t)
	ctx := context.Background()

	m.auth.EXPECT().CreateStaffUser(ctx, mock.Anything).
		Return(nil, domainerrors.ErrUsernameTaken.WithDetails("admin")).Times(2)
	m.products.EXPECT().CreateProduct(ctx, mock.Anything).
		Return(nil, domainerrors.ErrProductAlreadyExists).Times(len(seedProducts))
	m.dealers.EXPECT().CreateDealer(ctx, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrDealerAlreadyExists)).Times(len(seedDealers))
	m.barcodes.EXPECT().BatchRegisterBarcodes(ctx, mock.Anything).
		Return(&usecase.BatchRegisterOutput{Results: []usecase.BatchItemResult{
			{Code: "12N5LSEED0001", Status: usecase.BatchItemError, ErrorCode: "BARCODE_ALREADY_EXISTS"},
			{Code: "12N5LSEED0002", Status: usecase.BatchItemError, ErrorCode: "BARCODE_ALREADY_USED"},
		}}, nil).
		Once()

	report, err := s.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, seedCount{Existing: 2}, report.Staff)
	assert.Equal(t, seedCount{Existing: 5}, report.Products)
	assert.Equal(t, seedCount{Existing: 5}, report.Dealers)
	assert.Equal(t, seedCount{Existing: 1}, report.Barcodes)
}

func TestSeeder_Run_StopsOnUnexpectedError(t *testing.T) {
	s, m := newTestSeeder(t)
	ctx := context.Background()

	m.auth.EXPECT().CreateStaffUser(ctx, mock.Anything).Return(&entity.StaffUser{}, nil).Times(2)
	m.products.EXPECT().CreateProduct(ctx, mock.Anything).Return(nil, errors.New("connection reset")).Once()

	_, err := s.Run(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed product 12N5L")
}

func TestSampleBarcodes_AreStructuredCodes(t *testing.T) {
	for _, item := range sampleBarcodes() {
		assert.Equal(t, entity.BarcodeFormatStructured, entity.ClassifyBarcode(item.Code), item.Code)

		sku, ok := entity.ResolveBarcodeSKU(item.Code)
		require.True(t, ok)
		assert.Equal(t, item.SKU, sku)
	}
}

func TestPasswordArg(t *testing.T) {
	cmd := &cobra.Command{}

	password, err := passwordArg(cmd, []string{"from-arg"})
	require.NoError(t, err)
	assert.Equal(t, "from-arg", password)

	cmd.SetIn(strings.NewReader("from-stdin\n"))
	password, err = passwordArg(cmd, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-stdin", password)

	cmd.SetIn(strings.NewReader(""))
	_, err = passwordArg(cmd, nil)
	require.Error(t, err)
}
