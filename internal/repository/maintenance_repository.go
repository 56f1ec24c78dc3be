package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/societyhub/societyhub-api/internal/models"
	"gorm.io/gorm"
)

// MaintenanceRepository defines the interface for maintenance billing data access
type MaintenanceRepository interface {
	FindByID(ctx context.Context, id uint) (*models.MaintenanceRecord, error)
	FindByFlat(ctx context.Context, flatID uint, query *ListQuery) ([]models.MaintenanceRecord, error)
	FindByMonthYear(ctx context.Context, month, year int) ([]models.MaintenanceRecord, error)
	CreateInvoice(ctx context.Context, record *models.MaintenanceRecord) error
	Update(ctx context.Context, record *models.MaintenanceRecord) error
	FindOverduePending(ctx context.Context, asOf time.Time) ([]models.MaintenanceRecord, error)
	ApplyOverdueInterest(ctx context.Context, asOf time.Time, rate float64) (int64, error)
}

type maintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new maintenance repository
func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) FindByID(ctx context.Context, id uint) (*models.MaintenanceRecord, error) {
	var record models.MaintenanceRecord
	err := r.db.WithContext(ctx).First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *maintenanceRepository) FindByFlat(ctx context.Context, flatID uint, query *ListQuery) ([]models.MaintenanceRecord, error) {
	query = query.orDefault()
	var records []models.MaintenanceRecord
	err := r.db.WithContext(ctx).
		Where("flat_id = ?", flatID).
		Order("year DESC, month DESC").
		Offset(query.Skip).
		Limit(query.Limit).
		Find(&records).Error
	return records, err
}

func (r *maintenanceRepository) FindByMonthYear(ctx context.Context, month, year int) ([]models.MaintenanceRecord, error) {
	var records []models.MaintenanceRecord
	err := r.db.WithContext(ctx).
		Where("month = ? AND year = ?", month, year).
		Order("flat_id ASC").
		Find(&records).Error
	return records, err
}

// CreateInvoice inserts a new billing record for a cycle. The existence
// check and the insert run in one transaction so two concurrent requests
// cannot both bill the same (flat, month, year); the composite unique index
// is the backstop for racers on other connections.
func (r *maintenanceRepository) CreateInvoice(ctx context.Context, record *models.MaintenanceRecord) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.MaintenanceRecord
		err := tx.Where("flat_id = ? AND month = ? AND year = ?",
			record.FlatID, record.Month, record.Year).
			First(&existing).Error
		if err == nil {
			return fmt.Errorf("%w: maintenance already billed for this cycle", ErrDuplicate)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(record).Error
	})
	if err != nil && isUniqueViolation(err) {
		return fmt.Errorf("%w: maintenance already billed for this cycle", ErrDuplicate)
	}
	return err
}

func (r *maintenanceRepository) Update(ctx context.Context, record *models.MaintenanceRecord) error {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice or receipt number already assigned", ErrDuplicate)
		}
		return err
	}
	return nil
}

func (r *maintenanceRepository) FindOverduePending(ctx context.Context, asOf time.Time) ([]models.MaintenanceRecord, error) {
	var records []models.MaintenanceRecord
	err := r.db.WithContext(ctx).
		Where("payment_status = ? AND due_date < ?", models.PaymentStatusPending, asOf).
		Find(&records).Error
	return records, err
}

// ApplyOverdueInterest marks every pending record past its due date as
// overdue with flat penalty interest, in a single statement. Already-swept
// records are excluded by the status filter, so a second run is a no-op.
func (r *maintenanceRepository) ApplyOverdueInterest(ctx context.Context, asOf time.Time, rate float64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.MaintenanceRecord{}).
		Where("payment_status = ? AND due_date < ?", models.PaymentStatusPending, asOf).
		Updates(map[string]interface{}{
			"interest":       gorm.Expr("base_amount * ?", rate),
			"total_amount":   gorm.Expr("base_amount * ?", 1+rate),
			"payment_status": models.PaymentStatusOverdue,
		})
	return result.RowsAffected, result.Error
}
