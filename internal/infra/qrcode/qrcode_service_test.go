package qrcode

import (
	"testing"

	"loyalty/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(256, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestNew_FromConfig(t *testing.T) {
	svc := New(&config.Config{}).(*qrcodeService)
	assert.Equal(t, defaultSize, svc.size)
	assert.Empty(t, svc.baseURL)

	svc = New(&config.Config{QRCode: &config.QRCodeConfig{
		Size:                 512,
		ErrorCorrectionLevel: "H",
		BaseURL:              "https://loyalty.example.com/dealers/lookup",
	}}).(*qrcodeService)
	assert.Equal(t, 512, svc.size)
	assert.Equal(t, "https://loyalty.example.com/dealers/lookup", svc.baseURL)
}

func TestQRCodeService_GenerateDealerQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://loyalty.example.com/dealers/lookup")

	qrBytes, err := service.GenerateDealerQR("DL001")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateDealerQR_InvalidCode(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.GenerateDealerQR("dealer-1")
	assert.Error(t, err)
}

func TestQRCodeService_Content(t *testing.T) {
	withURL := NewQRCodeService(256, "M", "https://loyalty.example.com/dealers/lookup").(*qrcodeService)
	content, err := withURL.content("DL001")
	require.NoError(t, err)
	assert.Equal(t, "https://loyalty.example.com/dealers/lookup?code=DL001", content)

	bare := NewQRCodeService(256, "M", "").(*qrcodeService)
	content, err = bare.content("DL001")
	require.NoError(t, err)
	assert.Equal(t, "DL001", content)
}

func TestQRCodeService_ParseDealerQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{name: "lookup url", data: "https://loyalty.example.com/dealers/lookup?code=DL001", want: "DL001"},
		{name: "bare code", data: " dl002 ", want: "DL002"},
		{name: "url without code", data: "https://loyalty.example.com/dealers/lookup", wantErr: true},
		{name: "garbage", data: "not a dealer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseDealerQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
