package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/societyhub/societyhub-api/internal/middleware"
	"github.com/societyhub/societyhub-api/internal/models"
	"github.com/societyhub/societyhub-api/internal/services"
)

type ResidentHandler struct {
	residentService *services.ResidentService
}

func NewResidentHandler(residentService *services.ResidentService) *ResidentHandler {
	return &ResidentHandler{residentService: residentService}
}

type CreateResidentRequest struct {
	FlatID       uint    `json:"flat_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Relationship *string `json:"relationship"`
	Age          *int    `json:"age"`
	IDProof      *string `json:"id_proof"`
}

// @Summary Residents of a Flat
// @Tags Residents
// @Produce json
// @Param id path int true "Flat ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /flats/{id}/residents [get]
func (h *ResidentHandler) IndexForFlat(c *gin.Context) {
	flatID, ok := idParam(c, "id")
	if !ok {
		return
	}
	residents, err := h.residentService.ListForFlat(c.Request.Context(), flatID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.ResidentResponse, 0, len(residents))
	for _, r := range residents {
		responses = append(responses, r.ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"residents": responses})
}

// @Summary Get Resident
// @Tags Residents
// @Produce json
// @Param id path int true "Resident ID"
// @Success 200 {object} models.ResidentResponse
// @Security BearerAuth
// @Router /residents/{id} [get]
func (h *ResidentHandler) Show(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	resident, err := h.residentService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resident.ToResponse())
}

// @Summary Add Resident
// @Tags Residents
// @Accept json
// @Produce json
// @Param request body CreateResidentRequest true "Resident"
// @Success 201 {object} models.ResidentResponse
// @Security BearerAuth
// @Router /residents [post]
func (h *ResidentHandler) Create(c *gin.Context) {
	var req CreateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "validation", err.Error())
		return
	}

	resident := &models.Resident{
		FlatID:       req.FlatID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Relationship: req.Relationship,
		Age:          req.Age,
		IDProof:      req.IDProof,
	}
	if err := h.residentService.Create(c.Request.Context(), resident, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resident.ToResponse())
}

// @Summary Update Resident
// @Tags Residents
// @Accept json
// @Produce json
// @Param id path int true "Resident ID"
// @Param request body services.ResidentUpdate true "Fields to update"
// @Success 200 {object} models.ResidentResponse
// @Security BearerAuth
// @Router /residents/{id} [patch]
func (h *ResidentHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var update services.ResidentUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		errorJSON(c, http.StatusBadRequest, "validation", err.Error())
		return
	}

	resident, err := h.residentService.Update(c.Request.Context(), id, update, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resident.ToResponse())
}

// @Summary Remove Resident
// @Tags Residents
// @Produce json
// @Param id path int true "Resident ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /residents/{id} [delete]
func (h *ResidentHandler) Destroy(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.residentService.Delete(c.Request.Context(), id, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "resident removed"})
}
