package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type seedDeps struct {
	fx.In

	AuthUC    usecase.AuthUsecase
	ProductUC usecase.ProductUsecase
	DealerUC  usecase.DealerUsecase
	BarcodeUC usecase.BarcodeUsecase
}

type seedStaff struct {
	username string
	password string
	role     entity.Role
}

var seedStaffUsers = []seedStaff{
	{"admin", "admin123", entity.RoleAdmin},
	{"staff01", "staff123", entity.RoleStaff},
}

var seedProducts = []usecase.CreateProductInput{
	{SKU: "12N5L", Name: "Natri-Ion motorcycle battery 12N5L"},
	{SKU: "12N7L", Name: "Natri-Ion scooter battery 12N7L"},
	{SKU: "YTX4A", Name: "Natri-Ion motorcycle battery YTX4A"},
	{SKU: "YTX5A", Name: "Natri-Ion scooter battery YTX5A"},
	{SKU: "YTX7A", Name: "Natri-Ion scooter battery YTX7A"},
}

var seedDealers = []usecase.CreateDealerInput{
	{Code: "DL001", Name: "Nguyen Van An", Phone: "0901234567", ShopName: "An Khang Store", Address: "123 Le Loi, District 1, HCMC"},
	{Code: "DL002", Name: "Tran Thi Binh", Phone: "0912345678", ShopName: "Binh Minh Agency", Address: "456 Nguyen Hue, District 1, HCMC"},
	{Code: "DL003", Name: "Le Hoang Cuong", Phone: "0923456789", ShopName: "Cuong Mini Mart", Address: "789 Tran Hung Dao, District 5, HCMC"},
	{Code: "DL004", Name: "Pham Minh Duc", Phone: "0934567890", ShopName: "Duc Phat Shop", Address: "321 Hai Ba Trung, District 3, HCMC"},
	{Code: "DL005", Name: "Hoang Thi Em", Phone: "0945678901", ShopName: "Em Grocery", Address: "654 Vo Van Tan, District 3, HCMC"},
}

// sampleBarcodesPerProduct is the number of structured codes generated per seeded SKU.
const sampleBarcodesPerProduct = 10

// seedReport counts created and already-present rows per kind.
type seedReport struct {
	Staff, Products, Dealers, Barcodes seedCount
}

type seedCount struct {
	Created, Existing int
}

func (r *seedReport) String() string {
	return fmt.Sprintf("staff %d/%d, products %d/%d, dealers %d/%d, barcodes %d/%d (created/existing)",
		r.Staff.Created, r.Staff.Existing,
		r.Products.Created, r.Products.Existing,
		r.Dealers.Created, r.Dealers.Existing,
		r.Barcodes.Created, r.Barcodes.Existing,
	)
}

type seeder struct {
	deps   seedDeps
	logger *slog.Logger
}

func newSeeder(deps seedDeps, out io.Writer) *seeder {
	return &seeder{
		deps:   deps,
		logger: slog.New(slog.NewTextHandler(out, nil)),
	}
}

// Run inserts the reference data. Rows that already exist are counted, not failed.
func (s *seeder) Run(ctx context.Context) (*seedReport, error) {
	report := &seedReport{}

	for _, st := range seedStaffUsers {
		_, err := s.deps.AuthUC.CreateStaffUser(ctx, &usecase.CreateStaffInput{
			Username: st.username,
			Password: st.password,
			Role:     st.role,
		})
		if err := tally(&report.Staff, err, domainerrors.ErrUsernameTaken); err != nil {
			return nil, errors.Wrapf(err, "seed staff %s", st.username)
		}
	}

	for _, p := range seedProducts {
		_, err := s.deps.ProductUC.CreateProduct(ctx, &p)
		if err := tally(&report.Products, err, domainerrors.ErrProductAlreadyExists); err != nil {
			return nil, errors.Wrapf(err, "seed product %s", p.SKU)
		}
	}

	for _, d := range seedDealers {
		_, err := s.deps.DealerUC.CreateDealer(ctx, &d)
		if err := tally(&report.Dealers, err, domainerrors.ErrDealerAlreadyExists); err != nil {
			return nil, errors.Wrapf(err, "seed dealer %s", d.Code)
		}
	}

	out, err := s.deps.BarcodeUC.BatchRegisterBarcodes(ctx, &usecase.BatchRegisterInput{Items: sampleBarcodes()})
	if err != nil {
		return nil, errors.Wrap(err, "seed barcodes")
	}
	for _, res := range out.Results {
		switch {
		case res.Status == usecase.BatchItemCreated:
			report.Barcodes.Created++
		case res.ErrorCode == domainerrors.ErrBarcodeAlreadyExists.ErrorCode():
			report.Barcodes.Existing++
		default:
			s.logger.Warn("Sample barcode rejected",
				slog.String("code", res.Code),
				slog.String("error_code", res.ErrorCode),
				slog.String("error", res.Error),
			)
		}
	}

	return report, nil
}

// sampleBarcodes builds deterministic structured codes such as 12N5LSEED0001.
func sampleBarcodes() []usecase.BatchBarcodeItem {
	items := make([]usecase.BatchBarcodeItem, 0, len(seedProducts)*sampleBarcodesPerProduct)
	for _, p := range seedProducts {
		for i := 1; i <= sampleBarcodesPerProduct; i++ {
			items = append(items, usecase.BatchBarcodeItem{
				Code: fmt.Sprintf("%sSEED%04d", p.SKU, i),
				SKU:  p.SKU,
			})
		}
	}

	return items
}

// tally counts err against c. The existing-row error is absorbed; anything else is returned.
func tally(c *seedCount, err error, existing error) error {
	switch {
	case err == nil:
		c.Created++
	case errors.Is(err, existing):
		c.Existing++
	default:
		return err
	}

	return nil
}
