package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCapability_Owns(t *testing.T) {
	customerID := uuid.New()
	dealerID := uuid.New()
	other := uuid.New()

	customer := Principal{SubjectID: uuid.New(), Role: RoleCustomer, CustomerID: &customerID}
	dealer := Principal{SubjectID: uuid.New(), Role: RoleDealer, DealerID: &dealerID}
	staff := Principal{SubjectID: uuid.New(), Role: RoleStaff}

	customerCap := Capability{Roles: Roles{RoleAdmin, RoleStaff, RoleCustomer}, Owner: OwnerCustomer}
	dealerCap := Capability{Roles: Roles{RoleAdmin, RoleDealer}, Owner: OwnerDealer}

	tests := []struct {
		name       string
		capability Capability
		principal  Principal
		resourceID uuid.UUID
		want       bool
	}{
		{"customer owns own id", customerCap, customer, customerID, true},
		{"customer does not own other id", customerCap, customer, other, false},
		{"dealer cannot satisfy customer ownership", customerCap, dealer, customerID, false},
		{"staff bypasses ownership", customerCap, staff, other, true},
		{"dealer owns own id", dealerCap, dealer, dealerID, true},
		{"dealer does not own other dealer", dealerCap, dealer, other, false},
		{"no owner field", Capability{Roles: Roles{RoleCustomer}}, customer, other, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.capability.Owns(tt.principal, tt.resourceID))
		})
	}
}

func TestCapability_AllowsRole(t *testing.T) {
	c := Capability{Roles: Roles{RoleAdmin, RoleStaff}}

	assert.True(t, c.AllowsRole(RoleAdmin))
	assert.True(t, c.AllowsRole(RoleStaff))
	assert.False(t, c.AllowsRole(RoleCustomer))
	assert.False(t, c.AllowsRole(RoleDealer))
}
