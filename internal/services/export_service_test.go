package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/societyhub/societyhub-api/internal/models"
)

func seedCycle(t *testing.T, repo *mockMaintenanceRepo) {
	t.Helper()
	paid := "REC-1-202403"
	records := []*models.MaintenanceRecord{
		{
			FlatID: 1, Month: 3, Year: 2024,
			BaseAmount: 1000, TotalAmount: 1000, AmountPaid: 1000,
			PaymentStatus: models.PaymentStatusPaid,
			DueDate:       models.DueDateFor(2024, 3),
			InvoiceNumber: "INV-1-202403",
			ReceiptNumber: &paid,
		},
		{
			FlatID: 2, Month: 3, Year: 2024,
			BaseAmount: 1000, Interest: 100, TotalAmount: 1100,
			PaymentStatus: models.PaymentStatusOverdue,
			DueDate:       models.DueDateFor(2024, 3),
			InvoiceNumber: "INV-2-202403",
		},
	}
	for _, r := range records {
		require.NoError(t, repo.CreateInvoice(context.Background(), r))
	}
}

func TestExportCSVContents(t *testing.T) {
	repo := newMockMaintenanceRepo()
	seedCycle(t, repo)
	svc := NewExportService(repo)

	data, filename, err := svc.ExportCSV(context.Background(), 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, "collection_report_2024_03.csv", filename)

	csv := string(data)
	assert.Contains(t, csv, "INV-1-202403")
	assert.Contains(t, csv, "REC-1-202403")
	assert.Contains(t, csv, "INV-2-202403")
	assert.Contains(t, csv, "Total Billed,2100.00")
	assert.Contains(t, csv, "Total Collected,1000.00")
	assert.Contains(t, csv, "Total Interest,100.00")
	assert.Contains(t, csv, "Outstanding,1100.00")
}

func TestExportCSVValidatesMonth(t *testing.T) {
	svc := NewExportService(newMockMaintenanceRepo())

	_, _, err := svc.ExportCSV(context.Background(), 0, 2024)
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = svc.ExportXLSX(context.Background(), 13, 2024)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExportXLSXProducesWorkbook(t *testing.T) {
	repo := newMockMaintenanceRepo()
	seedCycle(t, repo)
	svc := NewExportService(repo)

	data, filename, err := svc.ExportXLSX(context.Background(), 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, "collection_report_2024_03.xlsx", filename)
	// xlsx files are zip archives
	assert.True(t, strings.HasPrefix(string(data[:2]), "PK"))
}

func TestSummarize(t *testing.T) {
	sum := summarize([]models.MaintenanceRecord{
		{TotalAmount: 1100, AmountPaid: 0, Interest: 100},
		{TotalAmount: 1000, AmountPaid: 1000},
	})
	assert.Equal(t, 2, sum.Records)
	assert.Equal(t, 2100.0, sum.TotalBilled)
	assert.Equal(t, 1000.0, sum.TotalCollected)
	assert.Equal(t, 100.0, sum.TotalInterest)
	assert.Equal(t, 1100.0, sum.Outstanding)
}
