package services

import (
	"gorm.io/gorm"

	"github.com/societyhub/societyhub-api/internal/config"
	"github.com/societyhub/societyhub-api/internal/jobs"
	"github.com/societyhub/societyhub-api/internal/repository"
)

// Services holds all service instances
type Services struct {
	Auth        *AuthService
	User        *UserService
	Flat        *FlatService
	Tenancy     *TenancyService
	Resident    *ResidentService
	Maintenance *MaintenanceService
	Vendor      *VendorService
	Export      *ExportService
	Report      *ReportService
	Audit       *AuditService
	Job         *JobService
}

// NewServices wires all services with their repositories
func NewServices(repos *repository.Repositories, cfg *config.Config, db *gorm.DB, worker *jobs.Worker) *Services {
	auditSvc := NewAuditService(db)

	return &Services{
		Auth:        NewAuthService(repos.User, cfg),
		User:        NewUserService(repos.User, auditSvc),
		Flat:        NewFlatService(repos.Flat, repos.User, auditSvc),
		Tenancy:     NewTenancyService(repos.Tenancy, repos.Flat, auditSvc),
		Resident:    NewResidentService(repos.Resident, repos.Flat, auditSvc),
		Maintenance: NewMaintenanceService(repos.Maintenance, repos.Flat, auditSvc),
		Vendor:      NewVendorService(repos.Vendor, auditSvc),
		Export:      NewExportService(repos.Maintenance),
		Report:      NewReportService(repos.Maintenance, repos.Flat),
		Audit:       auditSvc,
		Job:         NewJobService(worker),
	}
}
