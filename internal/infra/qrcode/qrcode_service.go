package qrcode

import (
	"net/url"
	"strings"

	"loyalty/config"
	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	dealerCodeParam = "code"
	defaultSize     = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// New builds the service from the qrcode config section.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	size := cfg.QRCode.Size
	if size <= 0 {
		size = defaultSize
	}

	return NewQRCodeService(size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// NewQRCodeService creates a new QR code service instance. When baseURL is set the QR
// content is the lookup URL baseURL?code=<dealer code>, otherwise the bare code.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimSpace(baseURL),
	}
}

// GenerateDealerQR renders the dealer lookup content as a PNG.
func (s *qrcodeService) GenerateDealerQR(dealerCode string) ([]byte, error) {
	if !entity.IsValidDealerCode(dealerCode) {
		return nil, errors.Errorf("invalid dealer code: %s", dealerCode)
	}

	content, err := s.content(dealerCode)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) content(dealerCode string) (string, error) {
	if s.baseURL == "" {
		return dealerCode, nil
	}

	lookupURL, err := url.Parse(s.baseURL)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse QR base URL")
	}
	query := lookupURL.Query()
	query.Set(dealerCodeParam, dealerCode)
	lookupURL.RawQuery = query.Encode()

	return lookupURL.String(), nil
}

// ParseDealerQR accepts either a lookup URL carrying ?code= or a bare dealer code.
func (s *qrcodeService) ParseDealerQR(qrData string) (string, error) {
	raw := strings.TrimSpace(qrData)

	code := raw
	if strings.Contains(raw, "://") {
		parsed, err := url.Parse(raw)
		if err != nil {
			return "", errors.Wrap(err, "failed to parse QR code URL")
		}
		code = parsed.Query().Get(dealerCodeParam)
	}

	code = strings.ToUpper(code)
	if !entity.IsValidDealerCode(code) {
		return "", errors.Errorf("invalid dealer code in QR data: %q", code)
	}

	return code, nil
}
