package repository

import (
	"context"
	"fmt"

	"github.com/societyhub/societyhub-api/internal/models"
	"gorm.io/gorm"
)

// TenancyRepository defines the interface for tenancy data access
type TenancyRepository interface {
	FindByID(ctx context.Context, id uint) (*models.TenancyRecord, error)
	CurrentForFlat(ctx context.Context, flatID uint) (*models.TenancyRecord, error)
	HistoryForFlat(ctx context.Context, flatID uint) ([]models.TenancyRecord, error)
	CreateCurrent(ctx context.Context, record *models.TenancyRecord) error
	Update(ctx context.Context, record *models.TenancyRecord) error
	Delete(ctx context.Context, id uint) error
}

type tenancyRepository struct {
	db *gorm.DB
}

// NewTenancyRepository creates a new tenancy repository
func NewTenancyRepository(db *gorm.DB) TenancyRepository {
	return &tenancyRepository{db: db}
}

func (r *tenancyRepository) FindByID(ctx context.Context, id uint) (*models.TenancyRecord, error) {
	var record models.TenancyRecord
	err := r.db.WithContext(ctx).First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *tenancyRepository) CurrentForFlat(ctx context.Context, flatID uint) (*models.TenancyRecord, error) {
	var record models.TenancyRecord
	err := r.db.WithContext(ctx).
		Where("flat_id = ? AND is_current = ?", flatID, true).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *tenancyRepository) HistoryForFlat(ctx context.Context, flatID uint) ([]models.TenancyRecord, error) {
	var records []models.TenancyRecord
	err := r.db.WithContext(ctx).
		Where("flat_id = ?", flatID).
		Order("agreement_start_date DESC").
		Find(&records).Error
	return records, err
}

// CreateCurrent flips every existing record for the flat to not-current and
// inserts the new record as current, all within one transaction. Readers
// never observe two current records, or zero mid-flip. Two racers on the
// same flat can both pass the flip under READ COMMITTED, so the partial
// unique index idx_one_current_tenancy is the backstop: the second insert
// fails with a unique violation and surfaces as ErrDuplicate.
func (r *tenancyRepository) CreateCurrent(ctx context.Context, record *models.TenancyRecord) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.TenancyRecord{}).
			Where("flat_id = ?", record.FlatID).
			Update("is_current", false).Error; err != nil {
			return err
		}

		record.IsCurrent = true
		return tx.Create(record).Error
	})
	if err != nil && isUniqueViolation(err) {
		return fmt.Errorf("%w: flat already has a current tenancy record", ErrDuplicate)
	}
	return err
}

func (r *tenancyRepository) Update(ctx context.Context, record *models.TenancyRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *tenancyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.TenancyRecord{}, id).Error
}
