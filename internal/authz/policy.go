// Package authz holds the single authorization table for the API. Every
// role-gated operation is declared here and nowhere else, so the business's
// access policy can be read (and audited) in one place.
package authz

import "github.com/societyhub/societyhub-api/internal/models"

// Operation identifies a role-gated API operation
type Operation string

// Operations
const (
	OpUserCreate Operation = "user.create"
	OpUserList   Operation = "user.list"
	OpUserUpdate Operation = "user.update"
	OpUserDelete Operation = "user.delete"

	OpFlatCreate Operation = "flat.create"
	OpFlatUpdate Operation = "flat.update"
	OpFlatDelete Operation = "flat.delete"

	OpTenancyCreate Operation = "tenancy.create"
	OpTenancyUpdate Operation = "tenancy.update"
	OpTenancyDelete Operation = "tenancy.delete"

	OpResidentCreate Operation = "resident.create"
	OpResidentUpdate Operation = "resident.update"
	OpResidentDelete Operation = "resident.delete"

	OpMaintenanceCreate Operation = "maintenance.create"
	OpMaintenanceUpdate Operation = "maintenance.update"
	OpInterestSweep     Operation = "maintenance.sweep"
	OpMaintenanceExport Operation = "maintenance.export"

	OpVendorCreate Operation = "vendor.create"
	OpVendorUpdate Operation = "vendor.update"
	OpVendorDelete Operation = "vendor.delete"

	OpAuditRead Operation = "audit.read"
	OpJobStatus Operation = "job.status"
)

// policy maps each operation to its role allow-list. This table is the
// access policy of the business; change it only with sign-off.
var policy = map[Operation][]string{
	OpUserCreate: {models.RoleAdmin},
	OpUserList:   {models.RoleAdmin, models.RoleAccounts, models.RoleOperations},
	OpUserUpdate: {models.RoleAdmin},
	OpUserDelete: {models.RoleAdmin},

	OpFlatCreate: {models.RoleAdmin, models.RoleOperations},
	OpFlatUpdate: {models.RoleAdmin, models.RoleOperations},
	OpFlatDelete: {models.RoleAdmin},

	OpTenancyCreate: {models.RoleAdmin, models.RoleOperations},
	OpTenancyUpdate: {models.RoleAdmin, models.RoleOperations},
	OpTenancyDelete: {models.RoleAdmin},

	OpResidentCreate: {models.RoleAdmin, models.RoleOperations, models.RoleFlatOwner},
	OpResidentUpdate: {models.RoleAdmin, models.RoleOperations, models.RoleFlatOwner},
	OpResidentDelete: {models.RoleAdmin, models.RoleOperations},

	OpMaintenanceCreate: {models.RoleAdmin, models.RoleAccounts},
	OpMaintenanceUpdate: {models.RoleAdmin, models.RoleAccounts},
	OpInterestSweep:     {models.RoleAdmin, models.RoleAccounts},
	OpMaintenanceExport: {models.RoleAdmin, models.RoleAccounts},

	OpVendorCreate: {models.RoleAdmin, models.RoleOperations},
	OpVendorUpdate: {models.RoleAdmin, models.RoleOperations, models.RoleAccounts},
	OpVendorDelete: {models.RoleAdmin},

	OpAuditRead: {models.RoleAdmin, models.RoleAccounts, models.RoleOperations},
	OpJobStatus: {models.RoleAdmin, models.RoleOperations},
}

// Allowed reports whether role may perform op. Unknown operations are
// denied.
func Allowed(op Operation, role string) bool {
	for _, allowed := range policy[op] {
		if role == allowed {
			return true
		}
	}
	return false
}

// Roles returns the allow-list for an operation
func Roles(op Operation) []string {
	roles := policy[op]
	out := make([]string, len(roles))
	copy(out, roles)
	return out
}
