package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/societyhub/societyhub-api/internal/middleware"
	"github.com/societyhub/societyhub-api/internal/models"
	"github.com/societyhub/societyhub-api/internal/services"
)

type VendorHandler struct {
	vendorService *services.VendorService
}

func NewVendorHandler(vendorService *services.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

type CreateVendorRequest struct {
	Name            string  `json:"name" binding:"required"`
	Work            string  `json:"work" binding:"required"`
	Phone           string  `json:"phone" binding:"required"`
	Email           *string `json:"email"`
	BusinessDetails *string `json:"business_details"`
	Status          string  `json:"status"`
	TotalCharges    float64 `json:"total_charges"`
	AmountPaid      float64 `json:"amount_paid"`
}

// @Summary List Vendors
// @Tags Vendors
// @Produce json
// @Param status query string false "Filter by status"
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Max records" default(100)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /vendors [get]
func (h *VendorHandler) Index(c *gin.Context) {
	query := listQuery(c)
	vendors, total, err := h.vendorService.List(c.Request.Context(), c.Query("status"), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		responses = append(responses, v.ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{
		"vendors": responses,
		"total":   total,
		"skip":    query.Skip,
		"limit":   query.Limit,
	})
}

// @Summary Get Vendor
// @Tags Vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} models.VendorResponse
// @Security BearerAuth
// @Router /vendors/{id} [get]
func (h *VendorHandler) Show(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	vendor, err := h.vendorService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor.ToResponse())
}

// @Summary Register Vendor
// @Tags Vendors
// @Accept json
// @Produce json
// @Param request body CreateVendorRequest true "Vendor"
// @Success 201 {object} models.VendorResponse
// @Security BearerAuth
// @Router /vendors [post]
func (h *VendorHandler) Create(c *gin.Context) {
	var req CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "validation", err.Error())
		return
	}

	vendor := &models.VendorAccount{
		Name:            req.Name,
		Work:            req.Work,
		Phone:           req.Phone,
		Email:           req.Email,
		BusinessDetails: req.BusinessDetails,
		Status:          req.Status,
		TotalCharges:    req.TotalCharges,
		AmountPaid:      req.AmountPaid,
	}
	if err := h.vendorService.Create(c.Request.Context(), vendor, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vendor.ToResponse())
}

// @Summary Update Vendor
// @Tags Vendors
// @Accept json
// @Produce json
// @Param id path int true "Vendor ID"
// @Param request body services.VendorUpdate true "Fields to update"
// @Success 200 {object} models.VendorResponse
// @Security BearerAuth
// @Router /vendors/{id} [patch]
func (h *VendorHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var update services.VendorUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		errorJSON(c, http.StatusBadRequest, "validation", err.Error())
		return
	}

	vendor, err := h.vendorService.Update(c.Request.Context(), id, update, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor.ToResponse())
}

// @Summary Delete Vendor
// @Tags Vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /vendors/{id} [delete]
func (h *VendorHandler) Destroy(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.vendorService.Delete(c.Request.Context(), id, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vendor deleted"})
}
