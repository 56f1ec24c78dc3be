package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/societyhub/societyhub-api/internal/middleware"
	"github.com/societyhub/societyhub-api/internal/models"
	"github.com/societyhub/societyhub-api/internal/services"
)

type MaintenanceHandler struct {
	maintenanceService *services.MaintenanceService
	reportService      *services.ReportService
	exportService      *services.ExportService
}

func NewMaintenanceHandler(maintenanceService *services.MaintenanceService, reportService *services.ReportService, exportService *services.ExportService) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
		reportService:      reportService,
		exportService:      exportService,
	}
}

type GenerateInvoiceRequest struct {
	FlatID     uint    `json:"flat_id" binding:"required"`
	Month      int     `json:"month" binding:"required"`
	Year       int     `json:"year" binding:"required"`
	BaseAmount float64 `json:"base_amount"`
}

// @Summary Generate Invoice
// @Description Bills a flat for one month; one invoice per flat per cycle
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param request body GenerateInvoiceRequest true "Billing cycle"
// @Success 201 {object} models.MaintenanceResponse
// @Failure 400 {object} map[string]interface{}
// @Security BearerAuth
// @Router /maintenance [post]
func (h *MaintenanceHandler) Create(c *gin.Context) {
	var req GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "validation", err.Error())
		return
	}

	record, err := h.maintenanceService.GenerateInvoice(c.Request.Context(),
		req.FlatID, req.Month, req.Year, req.BaseAmount, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record.ToResponse())
}

// @Summary Get Maintenance Record
// @Tags Maintenance
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} models.MaintenanceResponse
// @Security BearerAuth
// @Router /maintenance/{id} [get]
func (h *MaintenanceHandler) Show(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	record, err := h.maintenanceService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record.ToResponse())
}

// @Summary Maintenance History for a Flat
// @Tags Maintenance
// @Produce json
// @Param id path int true "Flat ID"
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Max records" default(100)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /flats/{id}/maintenance [get]
func (h *MaintenanceHandler) IndexForFlat(c *gin.Context) {
	flatID, ok := idParam(c, "id")
	if !ok {
		return
	}
	records, err := h.maintenanceService.ListForFlat(c.Request.Context(), flatID, listQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.MaintenanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, r.ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"maintenance": responses})
}

// @Summary Maintenance Records for a Cycle
// @Tags Maintenance
// @Produce json
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year (YYYY)"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /maintenance [get]
func (h *MaintenanceHandler) IndexForCycle(c *gin.Context) {
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	records, err := h.maintenanceService.ListForCycle(c.Request.Context(), month, year)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.MaintenanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, r.ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"maintenance": responses})
}

// @Summary Record Payment
// @Description Updates payment status and amount on a maintenance record
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Param request body services.MaintenancePayment true "Payment"
// @Success 200 {object} models.MaintenanceResponse
// @Security BearerAuth
// @Router /maintenance/{id} [patch]
func (h *MaintenanceHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var payment services.MaintenancePayment
	if err := c.ShouldBindJSON(&payment); err != nil {
		errorJSON(c, http.StatusBadRequest, "validation", err.Error())
		return
	}

	record, err := h.maintenanceService.RecordPayment(c.Request.Context(), id, payment, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record.ToResponse())
}

// @Summary Overdue Pending Records
// @Description Lists pending records past due, the set the next sweep will flip
// @Tags Maintenance
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /maintenance/overdue [get]
func (h *MaintenanceHandler) IndexOverdue(c *gin.Context) {
	records, err := h.maintenanceService.ListOverduePending(c.Request.Context(), time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.MaintenanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, r.ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"maintenance": responses})
}

// @Summary Trigger Interest Sweep
// @Description Applies overdue interest to all past-due pending records
// @Tags Maintenance
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /maintenance/sweep [post]
func (h *MaintenanceHandler) Sweep(c *gin.Context) {
	affected, err := h.maintenanceService.SweepOverdueInterest(c.Request.Context(), time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records_updated": affected})
}

// @Summary Invoice PDF
// @Tags Maintenance
// @Produce application/pdf
// @Param id path int true "Record ID"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /maintenance/{id}/invoice.pdf [get]
func (h *MaintenanceHandler) InvoicePDF(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	data, filename, err := h.reportService.InvoicePDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", data)
}

// @Summary Receipt PDF
// @Tags Maintenance
// @Produce application/pdf
// @Param id path int true "Record ID"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /maintenance/{id}/receipt.pdf [get]
func (h *MaintenanceHandler) ReceiptPDF(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	data, filename, err := h.reportService.ReceiptPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", data)
}

// @Summary Export Collection Report
// @Description Downloads the monthly collection report as CSV or XLSX
// @Tags Maintenance
// @Produce json
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year (YYYY)"
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /maintenance/export [get]
func (h *MaintenanceHandler) Export(c *gin.Context) {
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	var (
		data        []byte
		filename    string
		contentType string
		err         error
	)
	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		data, filename, err = h.exportService.ExportXLSX(c.Request.Context(), month, year)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "csv":
		data, filename, err = h.exportService.ExportCSV(c.Request.Context(), month, year)
		contentType = "text/csv"
	default:
		errorJSON(c, http.StatusBadRequest, "validation", "format must be csv or xlsx")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}
