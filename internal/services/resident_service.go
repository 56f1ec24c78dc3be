package services

import (
	"context"
	"fmt"

	"github.com/societyhub/societyhub-api/internal/models"
	"github.com/societyhub/societyhub-api/internal/repository"
)

// ResidentService manages the people occupying flats
type ResidentService struct {
	repo     repository.ResidentRepository
	flatRepo repository.FlatRepository
	auditSvc *AuditService
}

func NewResidentService(repo repository.ResidentRepository, flatRepo repository.FlatRepository, auditSvc *AuditService) *ResidentService {
	return &ResidentService{
		repo:     repo,
		flatRepo: flatRepo,
		auditSvc: auditSvc,
	}
}

func (s *ResidentService) FindByID(ctx context.Context, id uint) (*models.Resident, error) {
	resident, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, asServiceError(err)
	}
	return resident, nil
}

// ListForFlat returns all residents registered against a flat
func (s *ResidentService) ListForFlat(ctx context.Context, flatID uint) ([]models.Resident, error) {
	if _, err := s.flatRepo.FindByID(ctx, flatID); err != nil {
		return nil, asServiceError(err)
	}
	return s.repo.FindByFlat(ctx, flatID)
}

// Create registers a resident against an existing flat
func (s *ResidentService) Create(ctx context.Context, resident *models.Resident, actorID uint) error {
	if resident.Name == "" {
		return validationf("resident name is required")
	}
	if _, err := s.flatRepo.FindByID(ctx, resident.FlatID); err != nil {
		return validationf("flat %d does not exist", resident.FlatID)
	}
	if err := s.repo.Create(ctx, resident); err != nil {
		return err
	}
	return s.auditSvc.Log(ctx, actorID, "CREATE", "Resident", resident.ID,
		fmt.Sprintf("resident %s added to flat %d", resident.Name, resident.FlatID))
}

// ResidentUpdate carries the updatable resident fields; nil means leave
// unchanged.
type ResidentUpdate struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Relationship *string `json:"relationship"`
	Age          *int    `json:"age"`
	IDProof      *string `json:"id_proof"`
}

// Update applies a partial update to a resident
func (s *ResidentService) Update(ctx context.Context, id uint, update ResidentUpdate, actorID uint) (*models.Resident, error) {
	resident, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, asServiceError(err)
	}

	if update.Name != nil {
		if *update.Name == "" {
			return nil, validationf("resident name cannot be empty")
		}
		resident.Name = *update.Name
	}
	if update.Email != nil {
		resident.Email = update.Email
	}
	if update.Phone != nil {
		resident.Phone = update.Phone
	}
	if update.Relationship != nil {
		resident.Relationship = update.Relationship
	}
	if update.Age != nil {
		resident.Age = update.Age
	}
	if update.IDProof != nil {
		resident.IDProof = update.IDProof
	}

	if err := s.repo.Update(ctx, resident); err != nil {
		return nil, err
	}
	if err := s.auditSvc.Log(ctx, actorID, "UPDATE", "Resident", resident.ID,
		fmt.Sprintf("resident %s updated", resident.Name)); err != nil {
		return nil, err
	}
	return resident, nil
}

// Delete removes a resident
func (s *ResidentService) Delete(ctx context.Context, id uint, actorID uint) error {
	resident, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return asServiceError(err)
	}
	if err := s.repo.Delete(ctx, resident.ID); err != nil {
		return err
	}
	return s.auditSvc.Log(ctx, actorID, "DELETE", "Resident", resident.ID,
		fmt.Sprintf("resident %s removed from flat %d", resident.Name, resident.FlatID))
}
