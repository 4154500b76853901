// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a principal can have in the system.
// The set is closed: staff-side roles authenticate with a password, member-side
// roles authenticate with a one-time code.
type Role string

const (
	// RoleAdmin manages catalog, dealers and reporting.
	RoleAdmin Role = "ADMIN"
	// RoleStaff registers barcodes and redeems activations on behalf of customers.
	RoleStaff Role = "STAFF"
	// RoleDealer is a point-of-sale intermediary credited alongside customers.
	RoleDealer Role = "DEALER"
	// RoleCustomer is an end customer earning points.
	RoleCustomer Role = "CUSTOMER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleDealer, RoleCustomer:
		return true
	default:
		return false
	}
}

// IsStaffSide reports whether the role belongs to password-authenticated staff.
func (r Role) IsStaffSide() bool {
	return r == RoleAdmin || r == RoleStaff
}

// IsMemberSide reports whether the role belongs to an OTP-authenticated account.
func (r Role) IsMemberSide() bool {
	return r == RoleCustomer || r == RoleDealer
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
