package entity

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BarcodeStatus is the redemption state of a barcode. The only legal
// transition is UNUSED -> USED.
type BarcodeStatus string

const (
	BarcodeUnused BarcodeStatus = "UNUSED"
	BarcodeUsed   BarcodeStatus = "USED"
)

// IsValid checks if the status is a known value.
func (s BarcodeStatus) IsValid() bool {
	return s == BarcodeUnused || s == BarcodeUsed
}

// BarcodeItem is a single redeemable code printed on a product.
type BarcodeItem struct {
	ID          uuid.UUID
	Code        string
	ProductID   uuid.UUID
	Product     *Product // Populated by lookups that join the product.
	Status      BarcodeStatus
	CreatedByID *uuid.UUID // Staff who registered the code manually.
	UsedByID    *uuid.UUID // Staff who redeemed it, if any.
	ActivatedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsUsed reports whether the barcode has been redeemed.
func (b *BarcodeItem) IsUsed() bool {
	return b.Status == BarcodeUsed
}

// BarcodeFormat classifies a normalised code.
type BarcodeFormat int

const (
	BarcodeFormatInvalid BarcodeFormat = iota
	// BarcodeFormatLegacy is a purely numeric code of 8-20 digits.
	BarcodeFormatLegacy
	// BarcodeFormatStructured is a 12-40 character alphanumeric code starting with a known product prefix.
	BarcodeFormatStructured
)

var (
	legacyBarcodePattern     = regexp.MustCompile(`^\d{8,20}$`)
	structuredBarcodePattern = regexp.MustCompile(`^[A-Z0-9]{12,40}$`)
	lookupBarcodePattern     = regexp.MustCompile(`^[A-Z0-9]{8,40}$`)
)

// barcodePrefixes maps structured-code prefixes to product SKUs.
var barcodePrefixes = map[string]string{
	"12N5L": "12N5L",
	"12N7L": "12N7L",
	"YTX4A": "YTX4A",
	"YTX5A": "YTX5A",
	"YTX7A": "YTX7A",
}

// sortedPrefixes holds barcodePrefixes keys longest first, ties broken lexically.
var sortedPrefixes = func() []string {
	keys := make([]string, 0, len(barcodePrefixes))
	for k := range barcodePrefixes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}

		return keys[i] < keys[j]
	})

	return keys
}()

// KnownBarcodePrefixes returns the structured-code prefixes, longest first.
func KnownBarcodePrefixes() []string {
	out := make([]string, len(sortedPrefixes))
	copy(out, sortedPrefixes)

	return out
}

// NormalizeBarcode trims surrounding whitespace and upper-cases the code.
func NormalizeBarcode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ClassifyBarcode determines which intake mode a normalised code belongs to.
func ClassifyBarcode(code string) BarcodeFormat {
	if legacyBarcodePattern.MatchString(code) {
		return BarcodeFormatLegacy
	}
	if structuredBarcodePattern.MatchString(code) {
		if _, ok := ResolveBarcodeSKU(code); ok {
			return BarcodeFormatStructured
		}
	}

	return BarcodeFormatInvalid
}

// IsValidBarcodeFormat reports whether code is acceptable for registration.
func IsValidBarcodeFormat(code string) bool {
	return ClassifyBarcode(code) != BarcodeFormatInvalid
}

// IsLookupableBarcode reports whether code is shaped like any barcode the
// registry could hold. Lookups use this looser check so that an unknown but
// well-formed code yields "not found" rather than "invalid format".
func IsLookupableBarcode(code string) bool {
	return lookupBarcodePattern.MatchString(code)
}

// ResolveBarcodeSKU returns the SKU identified by the longest known prefix of code.
func ResolveBarcodeSKU(code string) (string, bool) {
	for _, prefix := range sortedPrefixes {
		if strings.HasPrefix(code, prefix) {
			return barcodePrefixes[prefix], true
		}
	}

	return "", false
}

// BarcodeFilter narrows barcode listings. Zero values mean "no filter".
type BarcodeFilter struct {
	SKU    string
	Status BarcodeStatus
	Query  string // Case-insensitive substring of the code.
	Skip   int
	Take   int
}
