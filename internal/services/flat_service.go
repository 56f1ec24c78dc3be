package services

import (
	"context"
	"fmt"

	"github.com/societyhub/societyhub-api/internal/models"
	"github.com/societyhub/societyhub-api/internal/repository"
)

// FlatService handles flat-related business logic
type FlatService struct {
	repo     repository.FlatRepository
	userRepo repository.UserRepository
	auditSvc *AuditService
}

func NewFlatService(repo repository.FlatRepository, userRepo repository.UserRepository, auditSvc *AuditService) *FlatService {
	return &FlatService{
		repo:     repo,
		userRepo: userRepo,
		auditSvc: auditSvc,
	}
}

func (s *FlatService) FindByID(ctx context.Context, id uint) (*models.Flat, error) {
	flat, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, asServiceError(err)
	}
	return flat, nil
}

func (s *FlatService) List(ctx context.Context, query *repository.ListQuery) ([]models.Flat, int64, error) {
	return s.repo.List(ctx, query)
}

// Create registers a new flat. The owner must be an existing user; the
// contact snapshot on the flat is kept as submitted, not re-derived.
func (s *FlatService) Create(ctx context.Context, flat *models.Flat, actorID uint) error {
	if !models.ValidFlatType(flat.FlatType) {
		return validationf("unknown flat type %q", flat.FlatType)
	}
	if _, err := s.userRepo.FindByID(ctx, flat.OwnerID); err != nil {
		return validationf("owner user %d does not exist", flat.OwnerID)
	}

	if err := s.repo.Create(ctx, flat); err != nil {
		return err
	}
	return s.auditSvc.Log(ctx, actorID, "CREATE", "Flat", flat.ID,
		fmt.Sprintf("flat created: %s", flat.FlatNumber))
}

// FlatUpdate carries the updatable flat fields; nil means leave unchanged
type FlatUpdate struct {
	OwnerName  *string  `json:"owner_name"`
	OwnerEmail *string  `json:"owner_email"`
	OwnerPhone *string  `json:"owner_phone"`
	SquareSize *float64 `json:"square_size"`
	FlatType   *string  `json:"flat_type"`
}

// Update applies a partial update to a flat
func (s *FlatService) Update(ctx context.Context, id uint, update FlatUpdate, actorID uint) (*models.Flat, error) {
	flat, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, asServiceError(err)
	}

	if update.OwnerName != nil {
		flat.OwnerName = *update.OwnerName
	}
	if update.OwnerEmail != nil {
		flat.OwnerEmail = *update.OwnerEmail
	}
	if update.OwnerPhone != nil {
		flat.OwnerPhone = *update.OwnerPhone
	}
	if update.SquareSize != nil {
		flat.SquareSize = *update.SquareSize
	}
	if update.FlatType != nil {
		if !models.ValidFlatType(*update.FlatType) {
			return nil, validationf("unknown flat type %q", *update.FlatType)
		}
		flat.FlatType = *update.FlatType
	}

	if err := s.repo.Update(ctx, flat); err != nil {
		return nil, err
	}
	if err := s.auditSvc.Log(ctx, actorID, "UPDATE", "Flat", flat.ID,
		fmt.Sprintf("flat updated: %s", flat.FlatNumber)); err != nil {
		return nil, err
	}
	return flat, nil
}

// Delete removes a flat
func (s *FlatService) Delete(ctx context.Context, id uint, actorID uint) error {
	flat, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return asServiceError(err)
	}
	if err := s.repo.Delete(ctx, flat.ID); err != nil {
		return err
	}
	return s.auditSvc.Log(ctx, actorID, "DELETE", "Flat", flat.ID,
		fmt.Sprintf("flat deleted: %s", flat.FlatNumber))
}
