// Package export renders reports as spreadsheets.
package export

import (
	"io"
	"time"

	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const activationSheet = "Activations"

var activationHeadings = []any{
	"Activated At", "Barcode", "Product", "SKU", "Customer", "Phone", "Dealer Code", "Dealer", "Points",
}

type xlsxExporter struct {
	location *time.Location
}

// NewXLSXExporter creates an exporter writing timestamps in the server's local zone.
func NewXLSXExporter() service.ActivationExporter {
	return &xlsxExporter{location: time.Local}
}

func (e *xlsxExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *xlsxExporter) FileExtension() string {
	return "xlsx"
}

// WriteActivations streams one row per record below a heading row.
func (e *xlsxExporter) WriteActivations(w io.Writer, records []*entity.ActivationRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", activationSheet); err != nil {
		return errors.WithStack(err)
	}

	sw, err := f.NewStreamWriter(activationSheet)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := sw.SetRow("A1", activationHeadings); err != nil {
		return errors.WithStack(err)
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.WithStack(err)
		}

		if err := sw.SetRow(cell, []any{
			record.CreatedAt.In(e.location).Format(time.DateTime),
			record.BarcodeCode,
			record.ProductName,
			record.ProductSKU,
			record.CustomerName,
			record.CustomerPhone,
			derefString(record.DealerCode),
			derefString(record.DealerName),
			record.PointsAwarded,
		}); err != nil {
			return errors.WithStack(err)
		}
	}

	if err := sw.Flush(); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(f.Write(w))
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
