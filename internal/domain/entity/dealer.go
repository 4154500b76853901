package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var dealerCodePattern = regexp.MustCompile(`^[A-Z]{2}\d{3,}$`)

// IsValidDealerCode reports whether code looks like a dealer code, e.g. DL001.
func IsValidDealerCode(code string) bool {
	return dealerCodePattern.MatchString(code)
}

// DealerStatus is the lifecycle state of a dealer. Inactive dealers keep their
// history but cannot be credited with new activations.
type DealerStatus string

const (
	DealerActive   DealerStatus = "ACTIVE"
	DealerInactive DealerStatus = "INACTIVE"
)

// IsValid checks if the status is a known value.
func (s DealerStatus) IsValid() bool {
	return s == DealerActive || s == DealerInactive
}

// Dealer is a point-of-sale intermediary.
type Dealer struct {
	ID        uuid.UUID
	Code      string
	Name      string
	ShopName  string
	Phone     string
	Address   string
	Points    int64
	Status    DealerStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the dealer can receive new attributions.
func (d *Dealer) IsActive() bool {
	return d.Status == DealerActive
}

// Deactivate moves the dealer to the inactive state. It is idempotent.
func (d *Dealer) Deactivate() {
	d.Status = DealerInactive
}
