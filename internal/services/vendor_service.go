package services

import (
	"context"
	"fmt"

	"github.com/societyhub/societyhub-api/internal/models"
	"github.com/societyhub/societyhub-api/internal/repository"
)

// VendorService keeps the ledger of external service providers. The
// remaining balance is always derived server-side from charges and
// payments; clients can never set it directly.
type VendorService struct {
	repo     repository.VendorRepository
	auditSvc *AuditService
}

func NewVendorService(repo repository.VendorRepository, auditSvc *AuditService) *VendorService {
	return &VendorService{
		repo:     repo,
		auditSvc: auditSvc,
	}
}

func (s *VendorService) FindByID(ctx context.Context, id uint) (*models.VendorAccount, error) {
	vendor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, asServiceError(err)
	}
	return vendor, nil
}

// List returns vendors with pagination, optionally filtered by status
func (s *VendorService) List(ctx context.Context, status string, query *repository.ListQuery) ([]models.VendorAccount, int64, error) {
	if status != "" {
		if !models.ValidVendorStatus(status) {
			return nil, 0, validationf("invalid vendor status: %s", status)
		}
		vendors, err := s.repo.FindByStatus(ctx, status)
		return vendors, int64(len(vendors)), err
	}
	return s.repo.List(ctx, query)
}

// Create registers a vendor account
func (s *VendorService) Create(ctx context.Context, vendor *models.VendorAccount, actorID uint) error {
	if vendor.Name == "" {
		return validationf("vendor name is required")
	}
	if vendor.Status == "" {
		vendor.Status = models.VendorStatusActive
	}
	if !models.ValidVendorStatus(vendor.Status) {
		return validationf("invalid vendor status: %s", vendor.Status)
	}
	if vendor.TotalCharges < 0 || vendor.AmountPaid < 0 {
		return validationf("vendor amounts cannot be negative")
	}
	vendor.RecomputeRemaining()

	if err := s.repo.Create(ctx, vendor); err != nil {
		return err
	}
	return s.auditSvc.Log(ctx, actorID, "CREATE", "Vendor", vendor.ID,
		fmt.Sprintf("vendor %s registered for %s", vendor.Name, vendor.Work))
}

// VendorUpdate carries the updatable vendor fields; nil means leave
// unchanged. amount_remaining has no field here on purpose.
type VendorUpdate struct {
	Name            *string  `json:"name"`
	Work            *string  `json:"work"`
	Phone           *string  `json:"phone"`
	Email           *string  `json:"email"`
	BusinessDetails *string  `json:"business_details"`
	Status          *string  `json:"status"`
	TotalCharges    *float64 `json:"total_charges"`
	AmountPaid      *float64 `json:"amount_paid"`
}

// Update applies a partial update and rederives the remaining balance
// whenever either side of the ledger moved.
func (s *VendorService) Update(ctx context.Context, id uint, update VendorUpdate, actorID uint) (*models.VendorAccount, error) {
	vendor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, asServiceError(err)
	}

	if update.Name != nil {
		if *update.Name == "" {
			return nil, validationf("vendor name cannot be empty")
		}
		vendor.Name = *update.Name
	}
	if update.Work != nil {
		vendor.Work = *update.Work
	}
	if update.Phone != nil {
		vendor.Phone = *update.Phone
	}
	if update.Email != nil {
		vendor.Email = update.Email
	}
	if update.BusinessDetails != nil {
		vendor.BusinessDetails = update.BusinessDetails
	}
	if update.Status != nil {
		if !models.ValidVendorStatus(*update.Status) {
			return nil, validationf("invalid vendor status: %s", *update.Status)
		}
		vendor.Status = *update.Status
	}
	if update.TotalCharges != nil {
		if *update.TotalCharges < 0 {
			return nil, validationf("total charges cannot be negative")
		}
		vendor.TotalCharges = *update.TotalCharges
	}
	if update.AmountPaid != nil {
		if *update.AmountPaid < 0 {
			return nil, validationf("amount paid cannot be negative")
		}
		vendor.AmountPaid = *update.AmountPaid
	}
	vendor.RecomputeRemaining()

	if err := s.repo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	if err := s.auditSvc.Log(ctx, actorID, "UPDATE", "Vendor", vendor.ID,
		fmt.Sprintf("vendor %s updated: remaining %.2f", vendor.Name, vendor.AmountRemaining)); err != nil {
		return nil, err
	}
	return vendor, nil
}

// Delete removes a vendor account
func (s *VendorService) Delete(ctx context.Context, id uint, actorID uint) error {
	vendor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return asServiceError(err)
	}
	if err := s.repo.Delete(ctx, vendor.ID); err != nil {
		return err
	}
	return s.auditSvc.Log(ctx, actorID, "DELETE", "Vendor", vendor.ID,
		fmt.Sprintf("vendor %s removed", vendor.Name))
}
