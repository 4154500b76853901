package router

import "loyalty/internal/domain/entity"

// Operation names an authorised API operation.
type Operation string

const (
	OpMe                  Operation = "auth.me"
	OpCreateStaff         Operation = "staff.create"
	OpActivate            Operation = "activations.create"
	OpListActivations     Operation = "activations.list"
	OpExportActivations   Operation = "activations.export"
	OpAdminStats          Operation = "stats.admin"
	OpRegisterBarcodes    Operation = "barcodes.register"
	OpListBarcodes        Operation = "barcodes.list"
	OpListProducts        Operation = "products.list"
	OpCreateProduct       Operation = "products.create"
	OpManageDealers       Operation = "dealers.manage"
	OpListCustomers       Operation = "customers.list"
	OpCustomerByPhone     Operation = "customers.byPhone"
	OpCustomerActivations Operation = "customers.activations"
	OpDealerStats         Operation = "dealers.stats"
	OpDealerActivations   Operation = "dealers.activations"
	OpManageDevices       Operation = "devices.manage"
	OpListAuditLogs       Operation = "auditLogs.list"
	OpLiveFeed            Operation = "live.subscribe"
)

var (
	anyRole   = entity.Roles{entity.RoleAdmin, entity.RoleStaff, entity.RoleDealer, entity.RoleCustomer}
	staffSide = entity.Roles{entity.RoleAdmin, entity.RoleStaff}
	adminOnly = entity.Roles{entity.RoleAdmin}
)

// capabilities is the authorisation table for every protected route. CUSTOMER
// activations are further restricted to the caller's own phone by the engine.
var capabilities = map[Operation]entity.Capability{
	OpMe:                  {Roles: anyRole},
	OpCreateStaff:         {Roles: adminOnly},
	OpActivate:            {Roles: entity.Roles{entity.RoleAdmin, entity.RoleStaff, entity.RoleCustomer}},
	OpListActivations:     {Roles: staffSide},
	OpExportActivations:   {Roles: adminOnly},
	OpAdminStats:          {Roles: adminOnly},
	OpRegisterBarcodes:    {Roles: staffSide},
	OpListBarcodes:        {Roles: staffSide},
	OpListProducts:        {Roles: staffSide},
	OpCreateProduct:       {Roles: adminOnly},
	OpManageDealers:       {Roles: adminOnly},
	OpListCustomers:       {Roles: adminOnly},
	OpCustomerByPhone:     {Roles: staffSide},
	OpCustomerActivations: {Roles: entity.Roles{entity.RoleAdmin, entity.RoleStaff, entity.RoleCustomer}, Owner: entity.OwnerCustomer},
	OpDealerStats:         {Roles: entity.Roles{entity.RoleAdmin, entity.RoleDealer}, Owner: entity.OwnerDealer},
	OpDealerActivations:   {Roles: entity.Roles{entity.RoleAdmin, entity.RoleDealer}, Owner: entity.OwnerDealer},
	OpManageDevices:       {Roles: entity.Roles{entity.RoleCustomer}},
	OpListAuditLogs:       {Roles: adminOnly},
	OpLiveFeed:            {Roles: adminOnly},
}

// CapabilityFor returns the capability of op. Unknown operations allow nobody.
func CapabilityFor(op Operation) entity.Capability {
	return capabilities[op]
}
