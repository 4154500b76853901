package entity

import "github.com/google/uuid"

// OwnerField names the path parameter a member principal must own.
type OwnerField string

const (
	OwnerNone     OwnerField = ""
	OwnerCustomer OwnerField = "customerId"
	OwnerDealer   OwnerField = "dealerId"
)

// Capability states which roles may perform an operation and, for member roles,
// which resource id they must own. ADMIN and STAFF are never subject to ownership.
type Capability struct {
	Roles Roles
	Owner OwnerField
}

// AllowsRole reports whether role may perform the operation at all.
func (c Capability) AllowsRole(role Role) bool {
	return c.Roles.Contains(role)
}

// Owns reports whether the principal owns the resource id named by the capability.
func (c Capability) Owns(p Principal, resourceID uuid.UUID) bool {
	if p.Role.IsStaffSide() || c.Owner == OwnerNone {
		return true
	}

	switch c.Owner {
	case OwnerCustomer:
		return p.CustomerID != nil && *p.CustomerID == resourceID
	case OwnerDealer:
		return p.DealerID != nil && *p.DealerID == resourceID
	default:
		return false
	}
}
