package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBillingNumberFormats(t *testing.T) {
	assert.Equal(t, "INV-7-202403", InvoiceNumberFor(7, 2024, 3))
	assert.Equal(t, "INV-123-202512", InvoiceNumberFor(123, 2025, 12))
	assert.Equal(t, "REC-7-202403", ReceiptNumberFor(7, 2024, 3))
}

func TestDueDateIsTenthOfMonth(t *testing.T) {
	due := DueDateFor(2024, 3)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), due)

	due = DueDateFor(2025, 12)
	assert.Equal(t, 10, due.Day())
	assert.Equal(t, time.December, due.Month())
}

func TestIsOverdue(t *testing.T) {
	record := &MaintenanceRecord{
		PaymentStatus: PaymentStatusPending,
		DueDate:       DueDateFor(2024, 3),
	}

	assert.False(t, record.IsOverdue(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, record.IsOverdue(time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)))

	record.PaymentStatus = PaymentStatusPaid
	assert.False(t, record.IsOverdue(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)))
}

func TestVendorRecomputeRemaining(t *testing.T) {
	vendor := &VendorAccount{TotalCharges: 5000, AmountPaid: 1800}
	vendor.RecomputeRemaining()
	assert.Equal(t, 3200.0, vendor.AmountRemaining)

	vendor.AmountPaid = 6000
	vendor.RecomputeRemaining()
	assert.Equal(t, -1000.0, vendor.AmountRemaining)
}
