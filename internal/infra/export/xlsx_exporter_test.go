package export

import (
	"bytes"
	"testing"
	"time"

	"loyalty/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_WriteActivations(t *testing.T) {
	dealerCode := "DL001"
	dealerName := "Dealer One"
	records := []*entity.ActivationRecord{
		{
			Activation:    entity.Activation{PointsAwarded: 1, CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
			BarcodeCode:   "12N5L000000001",
			ProductName:   "Battery 12N5L",
			ProductSKU:    "12N5L",
			CustomerName:  "Alice",
			CustomerPhone: "0912345678",
			DealerCode:    &dealerCode,
			DealerName:    &dealerName,
		},
		{
			Activation:    entity.Activation{PointsAwarded: 1, CreatedAt: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)},
			BarcodeCode:   "12N5L000000002",
			ProductName:   "Battery 12N5L",
			ProductSKU:    "12N5L",
			CustomerName:  "Bob",
			CustomerPhone: "0987654321",
		},
	}

	exporter := &xlsxExporter{location: time.UTC}
	var buf bytes.Buffer
	require.NoError(t, exporter.WriteActivations(&buf, records))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(activationSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Barcode", rows[0][1])
	assert.Equal(t, "2024-05-01 10:00:00", rows[1][0])
	assert.Equal(t, "DL001", rows[1][6])
	assert.Equal(t, "Bob", rows[2][4])
	assert.Equal(t, "1", rows[2][8])
	assert.Equal(t, "xlsx", exporter.FileExtension())
}
