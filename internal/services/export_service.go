package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/societyhub/societyhub-api/internal/models"
	"github.com/societyhub/societyhub-api/internal/repository"
)

// ExportService produces the monthly collection report in CSV and XLSX for
// the accounts team.
type ExportService struct {
	maintenanceRepo repository.MaintenanceRepository
}

func NewExportService(maintenanceRepo repository.MaintenanceRepository) *ExportService {
	return &ExportService{maintenanceRepo: maintenanceRepo}
}

// CollectionSummary aggregates a billing cycle for the report footer
type CollectionSummary struct {
	Records        int
	TotalBilled    float64
	TotalCollected float64
	TotalInterest  float64
	Outstanding    float64
}

func summarize(records []models.MaintenanceRecord) CollectionSummary {
	var sum CollectionSummary
	sum.Records = len(records)
	for _, r := range records {
		sum.TotalBilled += r.TotalAmount
		sum.TotalCollected += r.AmountPaid
		sum.TotalInterest += r.Interest
	}
	sum.Outstanding = sum.TotalBilled - sum.TotalCollected
	return sum
}

// ExportCSV renders the collection report for one cycle as CSV
func (s *ExportService) ExportCSV(ctx context.Context, month, year int) ([]byte, string, error) {
	if month < 1 || month > 12 {
		return nil, "", validationf("month must be between 1 and 12")
	}
	records, err := s.maintenanceRepo.FindByMonthYear(ctx, month, year)
	if err != nil {
		return nil, "", err
	}
	sum := summarize(records)

	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	_ = writer.Write([]string{"Monthly Collection Report", fmt.Sprintf("%04d-%02d", year, month)})
	_ = writer.Write([]string{""})
	_ = writer.Write([]string{"Invoice", "Flat ID", "Base Amount", "Interest", "Total", "Paid", "Status", "Due Date", "Receipt"})

	for _, r := range records {
		receipt := ""
		if r.ReceiptNumber != nil {
			receipt = *r.ReceiptNumber
		}
		_ = writer.Write([]string{
			r.InvoiceNumber,
			fmt.Sprintf("%d", r.FlatID),
			fmt.Sprintf("%.2f", r.BaseAmount),
			fmt.Sprintf("%.2f", r.Interest),
			fmt.Sprintf("%.2f", r.TotalAmount),
			fmt.Sprintf("%.2f", r.AmountPaid),
			r.PaymentStatus,
			r.DueDate.Format("2006-01-02"),
			receipt,
		})
	}

	_ = writer.Write([]string{""})
	_ = writer.Write([]string{"Records", fmt.Sprintf("%d", sum.Records)})
	_ = writer.Write([]string{"Total Billed", fmt.Sprintf("%.2f", sum.TotalBilled)})
	_ = writer.Write([]string{"Total Collected", fmt.Sprintf("%.2f", sum.TotalCollected)})
	_ = writer.Write([]string{"Total Interest", fmt.Sprintf("%.2f", sum.TotalInterest)})
	_ = writer.Write([]string{"Outstanding", fmt.Sprintf("%.2f", sum.Outstanding)})

	writer.Flush()

	filename := fmt.Sprintf("collection_report_%04d_%02d.csv", year, month)
	return buf.Bytes(), filename, nil
}

// ExportXLSX renders the collection report for one cycle as a spreadsheet
func (s *ExportService) ExportXLSX(ctx context.Context, month, year int) ([]byte, string, error) {
	if month < 1 || month > 12 {
		return nil, "", validationf("month must be between 1 and 12")
	}
	records, err := s.maintenanceRepo.FindByMonthYear(ctx, month, year)
	if err != nil {
		return nil, "", err
	}
	sum := summarize(records)

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Collections"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	_ = f.SetCellValue(sheet, "A1", fmt.Sprintf("Monthly Collection Report %04d-%02d", year, month))
	_ = f.SetCellStyle(sheet, "A1", "A1", headerStyle)

	columns := []string{"Invoice", "Flat ID", "Base Amount", "Interest", "Total", "Paid", "Status", "Due Date", "Receipt"}
	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		_ = f.SetCellValue(sheet, cell, col)
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	row := 4
	for _, r := range records {
		receipt := ""
		if r.ReceiptNumber != nil {
			receipt = *r.ReceiptNumber
		}
		values := []interface{}{
			r.InvoiceNumber, r.FlatID, r.BaseAmount, r.Interest,
			r.TotalAmount, r.AmountPaid, r.PaymentStatus,
			r.DueDate.Format("2006-01-02"), receipt,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	row++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Records")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), sum.Records)
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row+1), "Total Billed")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row+1), sum.TotalBilled)
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row+2), "Total Collected")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row+2), sum.TotalCollected)
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row+3), "Total Interest")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row+3), sum.TotalInterest)
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row+4), "Outstanding")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row+4), sum.Outstanding)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("collection_report_%04d_%02d.xlsx", year, month)
	return buf.Bytes(), filename, nil
}
