package services

import (
	"context"
	"fmt"
	"time"

	"github.com/societyhub/societyhub-api/internal/models"
	"github.com/societyhub/societyhub-api/internal/repository"
)

// agreementMonth is the flat 30-day month used for agreement end dates.
// Not calendar-accurate; kept for compatibility with existing records.
const agreementMonth = 30 * 24 * time.Hour

// TenancyService maintains the single-current-tenant invariant per flat
type TenancyService struct {
	repo     repository.TenancyRepository
	flatRepo repository.FlatRepository
	auditSvc *AuditService
}

func NewTenancyService(repo repository.TenancyRepository, flatRepo repository.FlatRepository, auditSvc *AuditService) *TenancyService {
	return &TenancyService{
		repo:     repo,
		flatRepo: flatRepo,
		auditSvc: auditSvc,
	}
}

func (s *TenancyService) FindByID(ctx context.Context, id uint) (*models.TenancyRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, asServiceError(err)
	}
	return record, nil
}

// CurrentTenant returns the current tenancy record for a flat, or
// ErrNotFound when the flat is owner-occupied or vacant.
func (s *TenancyService) CurrentTenant(ctx context.Context, flatID uint) (*models.TenancyRecord, error) {
	record, err := s.repo.CurrentForFlat(ctx, flatID)
	if err != nil {
		return nil, asServiceError(err)
	}
	return record, nil
}

// HistoryForFlat returns all tenancy records for a flat, newest agreement
// first.
func (s *TenancyService) HistoryForFlat(ctx context.Context, flatID uint) ([]models.TenancyRecord, error) {
	return s.repo.HistoryForFlat(ctx, flatID)
}

// RecordNewTenancy supersedes any existing tenancy for the flat. Flipping
// the old records and inserting the new current one happen in a single
// transaction inside the repository.
func (s *TenancyService) RecordNewTenancy(ctx context.Context, record *models.TenancyRecord, actorID uint) error {
	if record.OccupantCount <= 0 {
		return validationf("occupant count must be positive")
	}
	if record.AgreementDuration <= 0 {
		return validationf("agreement duration must be positive")
	}
	if _, err := s.flatRepo.FindByID(ctx, record.FlatID); err != nil {
		return validationf("flat %d does not exist", record.FlatID)
	}

	endDate := record.AgreementStartDate.Add(time.Duration(record.AgreementDuration) * agreementMonth)
	record.AgreementEndDate = &endDate

	if err := s.repo.CreateCurrent(ctx, record); err != nil {
		return err
	}
	return s.auditSvc.Log(ctx, actorID, "CREATE", "Tenancy", record.ID,
		fmt.Sprintf("tenancy recorded for flat %d: %s", record.FlatID, record.TenantName))
}

// TenancyUpdate carries the updatable tenancy fields; nil means leave
// unchanged. is_current is deliberately absent: the invariant only moves
// through RecordNewTenancy.
type TenancyUpdate struct {
	TenantName    *string `json:"tenant_name"`
	TenantEmail   *string `json:"tenant_email"`
	TenantPhone   *string `json:"tenant_phone"`
	OccupantCount *int    `json:"occupant_count"`
}

// Update applies a partial update to a tenancy record
func (s *TenancyService) Update(ctx context.Context, id uint, update TenancyUpdate, actorID uint) (*models.TenancyRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, asServiceError(err)
	}

	if update.TenantName != nil {
		record.TenantName = *update.TenantName
	}
	if update.TenantEmail != nil {
		record.TenantEmail = *update.TenantEmail
	}
	if update.TenantPhone != nil {
		record.TenantPhone = *update.TenantPhone
	}
	if update.OccupantCount != nil {
		if *update.OccupantCount <= 0 {
			return nil, validationf("occupant count must be positive")
		}
		record.OccupantCount = *update.OccupantCount
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}
	if err := s.auditSvc.Log(ctx, actorID, "UPDATE", "Tenancy", record.ID,
		fmt.Sprintf("tenancy updated for flat %d", record.FlatID)); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes a tenancy record
func (s *TenancyService) Delete(ctx context.Context, id uint, actorID uint) error {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return asServiceError(err)
	}
	if err := s.repo.Delete(ctx, record.ID); err != nil {
		return err
	}
	return s.auditSvc.Log(ctx, actorID, "DELETE", "Tenancy", record.ID,
		fmt.Sprintf("tenancy deleted for flat %d", record.FlatID))
}
