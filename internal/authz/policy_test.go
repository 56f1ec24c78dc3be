package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/societyhub/societyhub-api/internal/models"
)

func TestPolicyMatrix(t *testing.T) {
	tests := []struct {
		op      Operation
		allowed []string
	}{
		{OpUserCreate, []string{models.RoleAdmin}},
		{OpUserList, []string{models.RoleAdmin, models.RoleAccounts, models.RoleOperations}},
		{OpUserUpdate, []string{models.RoleAdmin}},
		{OpUserDelete, []string{models.RoleAdmin}},

		{OpFlatCreate, []string{models.RoleAdmin, models.RoleOperations}},
		{OpFlatUpdate, []string{models.RoleAdmin, models.RoleOperations}},
		{OpFlatDelete, []string{models.RoleAdmin}},

		{OpTenancyCreate, []string{models.RoleAdmin, models.RoleOperations}},
		{OpTenancyUpdate, []string{models.RoleAdmin, models.RoleOperations}},
		{OpTenancyDelete, []string{models.RoleAdmin}},

		{OpResidentCreate, []string{models.RoleAdmin, models.RoleOperations, models.RoleFlatOwner}},
		{OpResidentUpdate, []string{models.RoleAdmin, models.RoleOperations, models.RoleFlatOwner}},
		{OpResidentDelete, []string{models.RoleAdmin, models.RoleOperations}},

		{OpMaintenanceCreate, []string{models.RoleAdmin, models.RoleAccounts}},
		{OpMaintenanceUpdate, []string{models.RoleAdmin, models.RoleAccounts}},
		{OpInterestSweep, []string{models.RoleAdmin, models.RoleAccounts}},
		{OpMaintenanceExport, []string{models.RoleAdmin, models.RoleAccounts}},

		{OpVendorCreate, []string{models.RoleAdmin, models.RoleOperations}},
		{OpVendorUpdate, []string{models.RoleAdmin, models.RoleOperations, models.RoleAccounts}},
		{OpVendorDelete, []string{models.RoleAdmin}},

		{OpAuditRead, []string{models.RoleAdmin, models.RoleAccounts, models.RoleOperations}},
		{OpJobStatus, []string{models.RoleAdmin, models.RoleOperations}},
	}

	allRoles := []string{models.RoleAdmin, models.RoleAccounts, models.RoleOperations, models.RoleFlatOwner}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			permitted := map[string]bool{}
			for _, r := range tt.allowed {
				permitted[r] = true
			}
			for _, role := range allRoles {
				assert.Equal(t, permitted[role], Allowed(tt.op, role),
					"op %s role %s", tt.op, role)
			}
		})
	}
}

func TestAllowedUnknownInputs(t *testing.T) {
	assert.False(t, Allowed(Operation("noop.unknown"), models.RoleAdmin))
	assert.False(t, Allowed(OpUserCreate, "visitor"))
	assert.False(t, Allowed(OpUserCreate, ""))
}

func TestRolesReturnsCopy(t *testing.T) {
	roles := Roles(OpUserList)
	assert.Len(t, roles, 3)

	roles[0] = "mutated"
	assert.NotEqual(t, "mutated", Roles(OpUserList)[0])
}
