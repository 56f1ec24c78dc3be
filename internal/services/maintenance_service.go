package services

import (
	"context"
	"fmt"
	"time"

	"github.com/societyhub/societyhub-api/internal/models"
	"github.com/societyhub/societyhub-api/internal/repository"
	"github.com/societyhub/societyhub-api/internal/statemachine"
	"github.com/societyhub/societyhub-api/pkg/logger"
)

// OverdueInterestRate is the flat penalty applied once to the base amount
// when a pending record crosses its due date.
const OverdueInterestRate = 0.10

// MaintenanceService implements monthly billing for flats: invoice
// generation, payment recording and the overdue interest sweep.
type MaintenanceService struct {
	repo     repository.MaintenanceRepository
	flatRepo repository.FlatRepository
	auditSvc *AuditService
}

func NewMaintenanceService(repo repository.MaintenanceRepository, flatRepo repository.FlatRepository, auditSvc *AuditService) *MaintenanceService {
	return &MaintenanceService{
		repo:     repo,
		flatRepo: flatRepo,
		auditSvc: auditSvc,
	}
}

func (s *MaintenanceService) FindByID(ctx context.Context, id uint) (*models.MaintenanceRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, asServiceError(err)
	}
	return record, nil
}

// ListForFlat returns a flat's billing history, newest cycle first
func (s *MaintenanceService) ListForFlat(ctx context.Context, flatID uint, query *repository.ListQuery) ([]models.MaintenanceRecord, error) {
	if _, err := s.flatRepo.FindByID(ctx, flatID); err != nil {
		return nil, asServiceError(err)
	}
	return s.repo.FindByFlat(ctx, flatID, query)
}

// ListForCycle returns every record billed for the given month and year
func (s *MaintenanceService) ListForCycle(ctx context.Context, month, year int) ([]models.MaintenanceRecord, error) {
	if month < 1 || month > 12 {
		return nil, validationf("month must be between 1 and 12")
	}
	return s.repo.FindByMonthYear(ctx, month, year)
}

// GenerateInvoice bills one flat for one cycle. The invoice number and due
// date are derived, never client-supplied, and a second invoice for the
// same (flat, month, year) is rejected with ErrConflict.
func (s *MaintenanceService) GenerateInvoice(ctx context.Context, flatID uint, month, year int, baseAmount float64, actorID uint) (*models.MaintenanceRecord, error) {
	if month < 1 || month > 12 {
		return nil, validationf("month must be between 1 and 12")
	}
	if baseAmount < 0 {
		return nil, validationf("base amount cannot be negative")
	}
	if _, err := s.flatRepo.FindByID(ctx, flatID); err != nil {
		return nil, validationf("flat %d does not exist", flatID)
	}

	record := &models.MaintenanceRecord{
		FlatID:        flatID,
		Month:         month,
		Year:          year,
		BaseAmount:    baseAmount,
		TotalAmount:   baseAmount,
		PaymentStatus: models.PaymentStatusPending,
		DueDate:       models.DueDateFor(year, month),
		InvoiceNumber: models.InvoiceNumberFor(flatID, year, month),
	}

	if err := s.repo.CreateInvoice(ctx, record); err != nil {
		return nil, err
	}
	if err := s.auditSvc.Log(ctx, actorID, "CREATE", "Maintenance", record.ID,
		fmt.Sprintf("invoice %s generated for flat %d", record.InvoiceNumber, flatID)); err != nil {
		return nil, err
	}
	return record, nil
}

// MaintenancePayment carries the payment fields a client may set; nil
// means leave unchanged.
type MaintenancePayment struct {
	PaymentStatus *string  `json:"payment_status"`
	AmountPaid    *float64 `json:"amount_paid"`
}

// RecordPayment applies a payment update to a maintenance record. Status
// changes go through the state machine; entering paid stamps the paid date
// and assigns the receipt number exactly once.
func (s *MaintenanceService) RecordPayment(ctx context.Context, id uint, payment MaintenancePayment, actorID uint) (*models.MaintenanceRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, asServiceError(err)
	}

	if payment.AmountPaid != nil {
		if *payment.AmountPaid < 0 {
			return nil, validationf("amount paid cannot be negative")
		}
		record.AmountPaid = *payment.AmountPaid
	}

	if payment.PaymentStatus != nil && *payment.PaymentStatus != record.PaymentStatus {
		if !models.ValidPaymentStatus(*payment.PaymentStatus) {
			return nil, validationf("invalid payment status: %s", *payment.PaymentStatus)
		}
		wasPaid := record.PaymentStatus == models.PaymentStatusPaid

		sm := statemachine.NewMaintenanceFSM(record)
		if err := sm.TransitionTo(ctx, *payment.PaymentStatus); err != nil {
			return nil, fmt.Errorf("%w: cannot move from %s to %s",
				ErrInvalidState, record.PaymentStatus, *payment.PaymentStatus)
		}

		if record.PaymentStatus == models.PaymentStatusPaid && !wasPaid {
			now := time.Now().UTC()
			record.PaidDate = &now
			// Receipt numbers survive a later status reset; only the
			// first transition into paid mints one.
			if record.ReceiptNumber == nil {
				receipt := models.ReceiptNumberFor(record.FlatID, record.Year, record.Month)
				record.ReceiptNumber = &receipt
			}
		}
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}
	if err := s.auditSvc.Log(ctx, actorID, "UPDATE", "Maintenance", record.ID,
		fmt.Sprintf("payment recorded on %s: status %s", record.InvoiceNumber, record.PaymentStatus)); err != nil {
		return nil, err
	}
	return record, nil
}

// ListOverduePending returns the pending records already past their due
// date, the exact set the next sweep would flip to overdue.
func (s *MaintenanceService) ListOverduePending(ctx context.Context, asOf time.Time) ([]models.MaintenanceRecord, error) {
	return s.repo.FindOverduePending(ctx, asOf)
}

// SweepOverdueInterest flips every past-due pending record to overdue and
// applies the flat interest in one statement. Running it twice is safe:
// the status filter excludes already-swept records.
func (s *MaintenanceService) SweepOverdueInterest(ctx context.Context, asOf time.Time) (int64, error) {
	affected, err := s.repo.ApplyOverdueInterest(ctx, asOf, OverdueInterestRate)
	if err != nil {
		return 0, err
	}
	if affected > 0 {
		logger.Info("overdue interest applied",
			"records", affected,
			"rate", OverdueInterestRate,
			"as_of", asOf.Format(time.RFC3339))
	}
	return affected, nil
}
