package repository

import (
	"context"

	"github.com/societyhub/societyhub-api/internal/models"
	"gorm.io/gorm"
)

// VendorRepository defines the interface for vendor account data access
type VendorRepository interface {
	FindByID(ctx context.Context, id uint) (*models.VendorAccount, error)
	FindByStatus(ctx context.Context, status string) ([]models.VendorAccount, error)
	Create(ctx context.Context, vendor *models.VendorAccount) error
	Update(ctx context.Context, vendor *models.VendorAccount) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.VendorAccount, int64, error)
}

type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) FindByID(ctx context.Context, id uint) (*models.VendorAccount, error) {
	var vendor models.VendorAccount
	err := r.db.WithContext(ctx).First(&vendor, id).Error
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) FindByStatus(ctx context.Context, status string) ([]models.VendorAccount, error) {
	var vendors []models.VendorAccount
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("name ASC").
		Find(&vendors).Error
	return vendors, err
}

func (r *vendorRepository) Create(ctx context.Context, vendor *models.VendorAccount) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

func (r *vendorRepository) Update(ctx context.Context, vendor *models.VendorAccount) error {
	return r.db.WithContext(ctx).Save(vendor).Error
}

func (r *vendorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.VendorAccount{}, id).Error
}

func (r *vendorRepository) List(ctx context.Context, query *ListQuery) ([]models.VendorAccount, int64, error) {
	query = query.orDefault()
	var vendors []models.VendorAccount
	var total int64

	db := r.db.WithContext(ctx).Model(&models.VendorAccount{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("created_at DESC").
		Offset(query.Skip).
		Limit(query.Limit).
		Find(&vendors).Error
	return vendors, total, err
}
