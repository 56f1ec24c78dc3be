package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/societyhub/societyhub-api/internal/middleware"
	"github.com/societyhub/societyhub-api/internal/models"
	"github.com/societyhub/societyhub-api/internal/services"
)

type TenancyHandler struct {
	tenancyService *services.TenancyService
}

func NewTenancyHandler(tenancyService *services.TenancyService) *TenancyHandler {
	return &TenancyHandler{tenancyService: tenancyService}
}

type CreateTenancyRequest struct {
	FlatID             uint      `json:"flat_id" binding:"required"`
	TenantName         string    `json:"tenant_name" binding:"required"`
	TenantEmail        string    `json:"tenant_email" binding:"required,email"`
	TenantPhone        string    `json:"tenant_phone" binding:"required"`
	OccupantCount      int       `json:"occupant_count" binding:"required"`
	TenantIDProofs     *string   `json:"tenant_id_proofs"`
	AgreementDocument  *string   `json:"agreement_document"`
	AgreementDuration  int       `json:"agreement_duration" binding:"required"`
	AgreementStartDate time.Time `json:"agreement_start_date" binding:"required"`
}

// @Summary Record Tenancy
// @Description Records a new tenancy for a flat, superseding any current one
// @Tags Tenancies
// @Accept json
// @Produce json
// @Param request body CreateTenancyRequest true "Tenancy"
// @Success 201 {object} models.TenancyResponse
// @Security BearerAuth
// @Router /tenancies [post]
func (h *TenancyHandler) Create(c *gin.Context) {
	var req CreateTenancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "validation", err.Error())
		return
	}

	record := &models.TenancyRecord{
		FlatID:             req.FlatID,
		TenantName:         req.TenantName,
		TenantEmail:        req.TenantEmail,
		TenantPhone:        req.TenantPhone,
		OccupantCount:      req.OccupantCount,
		TenantIDProofs:     req.TenantIDProofs,
		AgreementDocument:  req.AgreementDocument,
		AgreementDuration:  req.AgreementDuration,
		AgreementStartDate: req.AgreementStartDate,
	}
	if err := h.tenancyService.RecordNewTenancy(c.Request.Context(), record, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record.ToResponse())
}

// @Summary Get Tenancy
// @Tags Tenancies
// @Produce json
// @Param id path int true "Tenancy ID"
// @Success 200 {object} models.TenancyResponse
// @Security BearerAuth
// @Router /tenancies/{id} [get]
func (h *TenancyHandler) Show(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	record, err := h.tenancyService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record.ToResponse())
}

// @Summary Current Tenant
// @Description Returns the current tenancy for a flat
// @Tags Tenancies
// @Produce json
// @Param id path int true "Flat ID"
// @Success 200 {object} models.TenancyResponse
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /flats/{id}/tenant [get]
func (h *TenancyHandler) Current(c *gin.Context) {
	flatID, ok := idParam(c, "id")
	if !ok {
		return
	}
	record, err := h.tenancyService.CurrentTenant(c.Request.Context(), flatID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record.ToResponse())
}

// @Summary Tenancy History
// @Description Returns all tenancy records for a flat, newest first
// @Tags Tenancies
// @Produce json
// @Param id path int true "Flat ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /flats/{id}/tenancies [get]
func (h *TenancyHandler) History(c *gin.Context) {
	flatID, ok := idParam(c, "id")
	if !ok {
		return
	}
	records, err := h.tenancyService.HistoryForFlat(c.Request.Context(), flatID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.TenancyResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, r.ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"tenancies": responses})
}

// @Summary Update Tenancy
// @Tags Tenancies
// @Accept json
// @Produce json
// @Param id path int true "Tenancy ID"
// @Param request body services.TenancyUpdate true "Fields to update"
// @Success 200 {object} models.TenancyResponse
// @Security BearerAuth
// @Router /tenancies/{id} [patch]
func (h *TenancyHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var update services.TenancyUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		errorJSON(c, http.StatusBadRequest, "validation", err.Error())
		return
	}

	record, err := h.tenancyService.Update(c.Request.Context(), id, update, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record.ToResponse())
}

// @Summary Delete Tenancy
// @Tags Tenancies
// @Produce json
// @Param id path int true "Tenancy ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /tenancies/{id} [delete]
func (h *TenancyHandler) Destroy(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.tenancyService.Delete(c.Request.Context(), id, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tenancy deleted"})
}
