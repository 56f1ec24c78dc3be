package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/societyhub/societyhub-api/internal/models"
)

func testInvoice(flatID uint, month, year int, base float64) *models.MaintenanceRecord {
	return &models.MaintenanceRecord{
		FlatID:        flatID,
		Month:         month,
		Year:          year,
		BaseAmount:    base,
		TotalAmount:   base,
		PaymentStatus: models.PaymentStatusPending,
		DueDate:       models.DueDateFor(year, month),
		InvoiceNumber: models.InvoiceNumberFor(flatID, year, month),
	}
}

func TestCreateInvoiceRejectsDuplicateCycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMaintenanceRepository(db)
	flat := seedTestFlat(t, db, "D-404")
	ctx := context.Background()

	require.NoError(t, repo.CreateInvoice(ctx, testInvoice(flat.ID, 3, 2024, 1500)))

	err := repo.CreateInvoice(ctx, testInvoice(flat.ID, 3, 2024, 1500))
	assert.ErrorIs(t, err, ErrDuplicate)

	// A different cycle for the same flat is fine.
	require.NoError(t, repo.CreateInvoice(ctx, testInvoice(flat.ID, 4, 2024, 1500)))
}

func TestApplyOverdueInterestSingleStatement(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMaintenanceRepository(db)
	flat := seedTestFlat(t, db, "E-505")
	other := seedTestFlat(t, db, "E-506")
	ctx := context.Background()

	dueRecord := testInvoice(flat.ID, 3, 2024, 1000)
	require.NoError(t, repo.CreateInvoice(ctx, dueRecord))

	notDue := testInvoice(other.ID, 5, 2024, 1000)
	require.NoError(t, repo.CreateInvoice(ctx, notDue))

	asOf := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	affected, err := repo.ApplyOverdueInterest(ctx, asOf, 0.10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	swept, err := repo.FindByID(ctx, dueRecord.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusOverdue, swept.PaymentStatus)
	assert.InDelta(t, 100.0, swept.Interest, 0.001)
	assert.InDelta(t, 1100.0, swept.TotalAmount, 0.001)

	untouched, err := repo.FindByID(ctx, notDue.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, untouched.PaymentStatus)
	assert.Zero(t, untouched.Interest)

	// Second sweep: nothing left to flip.
	affected, err = repo.ApplyOverdueInterest(ctx, asOf, 0.10)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestApplyOverdueInterestSkipsPaidRecords(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMaintenanceRepository(db)
	flat := seedTestFlat(t, db, "F-606")
	ctx := context.Background()

	record := testInvoice(flat.ID, 3, 2024, 1000)
	require.NoError(t, repo.CreateInvoice(ctx, record))

	record.PaymentStatus = models.PaymentStatusPaid
	record.AmountPaid = 1000
	require.NoError(t, repo.Update(ctx, record))

	asOf := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	affected, err := repo.ApplyOverdueInterest(ctx, asOf, 0.10)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestFindByFlatOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMaintenanceRepository(db)
	flat := seedTestFlat(t, db, "G-707")
	ctx := context.Background()

	require.NoError(t, repo.CreateInvoice(ctx, testInvoice(flat.ID, 12, 2023, 1000)))
	require.NoError(t, repo.CreateInvoice(ctx, testInvoice(flat.ID, 2, 2024, 1000)))
	require.NoError(t, repo.CreateInvoice(ctx, testInvoice(flat.ID, 1, 2024, 1000)))

	records, err := repo.FindByFlat(ctx, flat.ID, NewListQuery())
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 2, records[0].Month)
	assert.Equal(t, 2024, records[0].Year)
	assert.Equal(t, 12, records[2].Month)
	assert.Equal(t, 2023, records[2].Year)
}

func TestFindOverduePending(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMaintenanceRepository(db)
	flat := seedTestFlat(t, db, "H-808")
	ctx := context.Background()

	require.NoError(t, repo.CreateInvoice(ctx, testInvoice(flat.ID, 3, 2024, 1000)))
	require.NoError(t, repo.CreateInvoice(ctx, testInvoice(flat.ID, 6, 2024, 1000)))

	asOf := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	overdue, err := repo.FindOverduePending(ctx, asOf)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, 3, overdue[0].Month)
}
