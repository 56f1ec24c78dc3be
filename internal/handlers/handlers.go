package handlers

import (
	"github.com/societyhub/societyhub-api/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	User        *UserHandler
	Flat        *FlatHandler
	Tenancy     *TenancyHandler
	Resident    *ResidentHandler
	Maintenance *MaintenanceHandler
	Vendor      *VendorHandler
	Audit       *AuditHandler
	Job         *JobHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(),
		Auth:        NewAuthHandler(svcs.Auth, svcs.User),
		User:        NewUserHandler(svcs.User),
		Flat:        NewFlatHandler(svcs.Flat),
		Tenancy:     NewTenancyHandler(svcs.Tenancy),
		Resident:    NewResidentHandler(svcs.Resident),
		Maintenance: NewMaintenanceHandler(svcs.Maintenance, svcs.Report, svcs.Export),
		Vendor:      NewVendorHandler(svcs.Vendor),
		Audit:       NewAuditHandler(svcs.Audit),
		Job:         NewJobHandler(svcs.Job),
	}
}
