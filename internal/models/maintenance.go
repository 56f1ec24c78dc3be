package models

import (
	"fmt"
	"time"
)

// MaintenanceRecord is one monthly billing obligation for a flat.
// One record exists per (flat, month, year); the composite unique index is
// the backstop for the pre-insert check in the billing service.
type MaintenanceRecord struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	FlatID        uint       `gorm:"not null;index;uniqueIndex:idx_maintenance_cycle" json:"flat_id"`
	Month         int        `gorm:"not null;uniqueIndex:idx_maintenance_cycle" json:"month"` // 1-12
	Year          int        `gorm:"not null;uniqueIndex:idx_maintenance_cycle" json:"year"`
	BaseAmount    float64    `gorm:"type:decimal(10,2);not null" json:"base_amount"`
	Interest      float64    `gorm:"type:decimal(10,2);default:0" json:"interest"`
	TotalAmount   float64    `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	AmountPaid    float64    `gorm:"type:decimal(10,2);default:0" json:"amount_paid"`
	PaymentStatus string     `gorm:"default:pending;not null;index" json:"payment_status"`
	DueDate       time.Time  `gorm:"not null;index" json:"due_date"`
	PaidDate      *time.Time `json:"paid_date"`
	InvoiceNumber string     `gorm:"uniqueIndex" json:"invoice_number"`
	ReceiptNumber *string    `gorm:"uniqueIndex" json:"receipt_number"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Associations
	Flat Flat `gorm:"foreignKey:FlatID" json:"-"`
}

// TableName specifies the table name for MaintenanceRecord
func (MaintenanceRecord) TableName() string {
	return "maintenance_records"
}

// Payment status constants
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusOverdue = "overdue"
)

// ValidPaymentStatus reports whether s is a known payment status
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusOverdue:
		return true
	}
	return false
}

// InvoiceNumberFor derives the invoice number for a billing cycle.
// The format is fixed for compatibility with existing records.
func InvoiceNumberFor(flatID uint, year, month int) string {
	return fmt.Sprintf("INV-%d-%d%02d", flatID, year, month)
}

// ReceiptNumberFor derives the receipt number for a billing cycle
func ReceiptNumberFor(flatID uint, year, month int) string {
	return fmt.Sprintf("REC-%d-%d%02d", flatID, year, month)
}

// DueDateFor returns the due date for a billing cycle: always the 10th
// calendar day of the billing month.
func DueDateFor(year, month int) time.Time {
	return time.Date(year, time.Month(month), 10, 0, 0, 0, 0, time.UTC)
}

// IsOverdue returns true if the record is pending and past its due date
func (m *MaintenanceRecord) IsOverdue(asOf time.Time) bool {
	return m.PaymentStatus == PaymentStatusPending && asOf.After(m.DueDate)
}

// MaintenanceResponse is the JSON response format for maintenance records
type MaintenanceResponse struct {
	ID            uint       `json:"id"`
	FlatID        uint       `json:"flat_id"`
	Month         int        `json:"month"`
	Year          int        `json:"year"`
	BaseAmount    float64    `json:"base_amount"`
	Interest      float64    `json:"interest"`
	TotalAmount   float64    `json:"total_amount"`
	AmountPaid    float64    `json:"amount_paid"`
	PaymentStatus string     `json:"payment_status"`
	DueDate       time.Time  `json:"due_date"`
	PaidDate      *time.Time `json:"paid_date"`
	InvoiceNumber string     `json:"invoice_number"`
	ReceiptNumber *string    `json:"receipt_number"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ToResponse converts MaintenanceRecord to MaintenanceResponse
func (m *MaintenanceRecord) ToResponse() MaintenanceResponse {
	return MaintenanceResponse{
		ID:            m.ID,
		FlatID:        m.FlatID,
		Month:         m.Month,
		Year:          m.Year,
		BaseAmount:    m.BaseAmount,
		Interest:      m.Interest,
		TotalAmount:   m.TotalAmount,
		AmountPaid:    m.AmountPaid,
		PaymentStatus: m.PaymentStatus,
		DueDate:       m.DueDate,
		PaidDate:      m.PaidDate,
		InvoiceNumber: m.InvoiceNumber,
		ReceiptNumber: m.ReceiptNumber,
		CreatedAt:     m.CreatedAt,
	}
}
