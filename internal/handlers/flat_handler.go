package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/societyhub/societyhub-api/internal/middleware"
	"github.com/societyhub/societyhub-api/internal/models"
	"github.com/societyhub/societyhub-api/internal/services"
)

type FlatHandler struct {
	flatService *services.FlatService
}

func NewFlatHandler(flatService *services.FlatService) *FlatHandler {
	return &FlatHandler{flatService: flatService}
}

type CreateFlatRequest struct {
	FlatNumber string  `json:"flat_number" binding:"required"`
	OwnerID    uint    `json:"owner_id" binding:"required"`
	OwnerName  string  `json:"owner_name" binding:"required"`
	OwnerEmail string  `json:"owner_email" binding:"required,email"`
	OwnerPhone string  `json:"owner_phone" binding:"required"`
	SquareSize float64 `json:"square_size"`
	FlatType   string  `json:"flat_type"`
}

// @Summary List Flats
// @Tags Flats
// @Produce json
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Max records" default(100)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /flats [get]
func (h *FlatHandler) Index(c *gin.Context) {
	query := listQuery(c)
	flats, total, err := h.flatService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.FlatResponse, 0, len(flats))
	for _, f := range flats {
		responses = append(responses, f.ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{
		"flats": responses,
		"total": total,
		"skip":  query.Skip,
		"limit": query.Limit,
	})
}

// @Summary Get Flat
// @Tags Flats
// @Produce json
// @Param id path int true "Flat ID"
// @Success 200 {object} models.FlatResponse
// @Security BearerAuth
// @Router /flats/{id} [get]
func (h *FlatHandler) Show(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	flat, err := h.flatService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flat.ToResponse())
}

// @Summary Create Flat
// @Tags Flats
// @Accept json
// @Produce json
// @Param request body CreateFlatRequest true "Flat"
// @Success 201 {object} models.FlatResponse
// @Security BearerAuth
// @Router /flats [post]
func (h *FlatHandler) Create(c *gin.Context) {
	var req CreateFlatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "validation", err.Error())
		return
	}

	flat := &models.Flat{
		FlatNumber: req.FlatNumber,
		OwnerID:    req.OwnerID,
		OwnerName:  req.OwnerName,
		OwnerEmail: req.OwnerEmail,
		OwnerPhone: req.OwnerPhone,
		SquareSize: req.SquareSize,
		FlatType:   req.FlatType,
	}
	if flat.FlatType == "" {
		flat.FlatType = models.FlatTypeResident
	}
	if err := h.flatService.Create(c.Request.Context(), flat, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flat.ToResponse())
}

// @Summary Update Flat
// @Tags Flats
// @Accept json
// @Produce json
// @Param id path int true "Flat ID"
// @Param request body services.FlatUpdate true "Fields to update"
// @Success 200 {object} models.FlatResponse
// @Security BearerAuth
// @Router /flats/{id} [patch]
func (h *FlatHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var update services.FlatUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		errorJSON(c, http.StatusBadRequest, "validation", err.Error())
		return
	}

	flat, err := h.flatService.Update(c.Request.Context(), id, update, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flat.ToResponse())
}

// @Summary Delete Flat
// @Tags Flats
// @Produce json
// @Param id path int true "Flat ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /flats/{id} [delete]
func (h *FlatHandler) Destroy(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.flatService.Delete(c.Request.Context(), id, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "flat deleted"})
}
