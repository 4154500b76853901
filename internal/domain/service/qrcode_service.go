package service

// QRCodeService renders QR codes for dealer lookups.
type QRCodeService interface {
	// GenerateDealerQR returns a PNG QR code that resolves to the dealer lookup for code.
	GenerateDealerQR(dealerCode string) ([]byte, error)

	// ParseDealerQR extracts the dealer code from scanned QR content.
	ParseDealerQR(qrData string) (string, error)
}
