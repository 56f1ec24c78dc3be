package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/societyhub/societyhub-api/internal/repository"
)

// ReportService renders printable invoices and receipts
type ReportService struct {
	maintenanceRepo repository.MaintenanceRepository
	flatRepo        repository.FlatRepository
}

func NewReportService(maintenanceRepo repository.MaintenanceRepository, flatRepo repository.FlatRepository) *ReportService {
	return &ReportService{
		maintenanceRepo: maintenanceRepo,
		flatRepo:        flatRepo,
	}
}

// InvoicePDF renders the invoice for a maintenance record
func (s *ReportService) InvoicePDF(ctx context.Context, recordID uint) ([]byte, string, error) {
	record, err := s.maintenanceRepo.FindByID(ctx, recordID)
	if err != nil {
		return nil, "", asServiceError(err)
	}
	flat, err := s.flatRepo.FindByID(ctx, record.FlatID)
	if err != nil {
		return nil, "", asServiceError(err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Maintenance Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, record.InvoiceNumber)
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 8, "Flat:")
	pdf.Cell(60, 8, flat.FlatNumber)
	pdf.Ln(6)
	pdf.Cell(60, 8, "Owner:")
	pdf.Cell(60, 8, flat.OwnerName)
	pdf.Ln(6)
	pdf.Cell(60, 8, "Billing Cycle:")
	pdf.Cell(60, 8, fmt.Sprintf("%04d-%02d", record.Year, record.Month))
	pdf.Ln(6)
	pdf.Cell(60, 8, "Due Date:")
	pdf.Cell(60, 8, record.DueDate.Format("2006-01-02"))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(40, 8, "Charges")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 8, "Base Amount:")
	pdf.Cell(60, 8, fmt.Sprintf("%.2f", record.BaseAmount))
	pdf.Ln(6)
	pdf.Cell(60, 8, "Interest:")
	pdf.Cell(60, 8, fmt.Sprintf("%.2f", record.Interest))
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(60, 8, "Total Due:")
	pdf.Cell(60, 8, fmt.Sprintf("%.2f", record.TotalAmount))
	pdf.Ln(10)

	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(40, 8, fmt.Sprintf("Status: %s", record.PaymentStatus))

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s.pdf", record.InvoiceNumber)
	return buf.Bytes(), filename, nil
}

// ReceiptPDF renders the payment receipt for a paid maintenance record.
// Unpaid records have no receipt to render.
func (s *ReportService) ReceiptPDF(ctx context.Context, recordID uint) ([]byte, string, error) {
	record, err := s.maintenanceRepo.FindByID(ctx, recordID)
	if err != nil {
		return nil, "", asServiceError(err)
	}
	if record.ReceiptNumber == nil {
		return nil, "", validationf("no receipt exists for invoice %s", record.InvoiceNumber)
	}
	flat, err := s.flatRepo.FindByID(ctx, record.FlatID)
	if err != nil {
		return nil, "", asServiceError(err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Payment Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, *record.ReceiptNumber)
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 8, "Invoice:")
	pdf.Cell(60, 8, record.InvoiceNumber)
	pdf.Ln(6)
	pdf.Cell(60, 8, "Flat:")
	pdf.Cell(60, 8, flat.FlatNumber)
	pdf.Ln(6)
	pdf.Cell(60, 8, "Owner:")
	pdf.Cell(60, 8, flat.OwnerName)
	pdf.Ln(6)
	pdf.Cell(60, 8, "Billing Cycle:")
	pdf.Cell(60, 8, fmt.Sprintf("%04d-%02d", record.Year, record.Month))
	pdf.Ln(6)
	if record.PaidDate != nil {
		pdf.Cell(60, 8, "Paid On:")
		pdf.Cell(60, 8, record.PaidDate.Format("2006-01-02"))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(60, 8, "Amount Received:")
	pdf.Cell(60, 8, fmt.Sprintf("%.2f", record.AmountPaid))

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s.pdf", *record.ReceiptNumber)
	return buf.Bytes(), filename, nil
}
