package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var phonePattern = regexp.MustCompile(`^0(3|5|7|8|9)\d{8}$`)

// NormalizePhone trims whitespace around a phone number.
func NormalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}

// IsValidPhone reports whether phone is a 10-digit local mobile number.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// Customer is an end customer. Phone is the natural key and never changes
// once set; Name is mutable. Points only grow, one per activation.
type Customer struct {
	ID        uuid.UUID
	Phone     string
	Name      string
	Points    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DirectoryFilter narrows customer and dealer listings.
type DirectoryFilter struct {
	Search string
	Skip   int
	Take   int
}
