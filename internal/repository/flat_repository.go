package repository

import (
	"context"
	"fmt"

	"github.com/societyhub/societyhub-api/internal/models"
	"gorm.io/gorm"
)

// FlatRepository defines the interface for flat data access
type FlatRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Flat, error)
	FindByNumber(ctx context.Context, flatNumber string) (*models.Flat, error)
	Create(ctx context.Context, flat *models.Flat) error
	Update(ctx context.Context, flat *models.Flat) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Flat, int64, error)
}

type flatRepository struct {
	db *gorm.DB
}

// NewFlatRepository creates a new flat repository
func NewFlatRepository(db *gorm.DB) FlatRepository {
	return &flatRepository{db: db}
}

func (r *flatRepository) FindByID(ctx context.Context, id uint) (*models.Flat, error) {
	var flat models.Flat
	err := r.db.WithContext(ctx).First(&flat, id).Error
	if err != nil {
		return nil, err
	}
	return &flat, nil
}

func (r *flatRepository) FindByNumber(ctx context.Context, flatNumber string) (*models.Flat, error) {
	var flat models.Flat
	err := r.db.WithContext(ctx).
		Where("flat_number = ?", flatNumber).
		First(&flat).Error
	if err != nil {
		return nil, err
	}
	return &flat, nil
}

func (r *flatRepository) Create(ctx context.Context, flat *models.Flat) error {
	if err := r.db.WithContext(ctx).Create(flat).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: flat number already exists", ErrDuplicate)
		}
		return err
	}
	return nil
}

func (r *flatRepository) Update(ctx context.Context, flat *models.Flat) error {
	if err := r.db.WithContext(ctx).Save(flat).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: flat number already exists", ErrDuplicate)
		}
		return err
	}
	return nil
}

func (r *flatRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Flat{}, id).Error
}

func (r *flatRepository) List(ctx context.Context, query *ListQuery) ([]models.Flat, int64, error) {
	query = query.orDefault()
	var flats []models.Flat
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Flat{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("flat_number ASC").
		Offset(query.Skip).
		Limit(query.Limit).
		Find(&flats).Error
	return flats, total, err
}
