package repository

import (
	"context"

	"github.com/societyhub/societyhub-api/internal/models"
	"gorm.io/gorm"
)

// ResidentRepository defines the interface for resident data access
type ResidentRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Resident, error)
	FindByFlat(ctx context.Context, flatID uint) ([]models.Resident, error)
	Create(ctx context.Context, resident *models.Resident) error
	Update(ctx context.Context, resident *models.Resident) error
	Delete(ctx context.Context, id uint) error
}

type residentRepository struct {
	db *gorm.DB
}

// NewResidentRepository creates a new resident repository
func NewResidentRepository(db *gorm.DB) ResidentRepository {
	return &residentRepository{db: db}
}

func (r *residentRepository) FindByID(ctx context.Context, id uint) (*models.Resident, error) {
	var resident models.Resident
	err := r.db.WithContext(ctx).First(&resident, id).Error
	if err != nil {
		return nil, err
	}
	return &resident, nil
}

func (r *residentRepository) FindByFlat(ctx context.Context, flatID uint) ([]models.Resident, error) {
	var residents []models.Resident
	err := r.db.WithContext(ctx).
		Where("flat_id = ?", flatID).
		Order("created_at ASC").
		Find(&residents).Error
	return residents, err
}

func (r *residentRepository) Create(ctx context.Context, resident *models.Resident) error {
	return r.db.WithContext(ctx).Create(resident).Error
}

func (r *residentRepository) Update(ctx context.Context, resident *models.Resident) error {
	return r.db.WithContext(ctx).Save(resident).Error
}

func (r *residentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Resident{}, id).Error
}
