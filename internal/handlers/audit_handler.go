package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/societyhub/societyhub-api/internal/services"
)

type AuditHandler struct {
	auditService *services.AuditService
}

func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// @Summary List Audit Logs
// @Description Returns the mutation trail, newest first
// @Tags Audit
// @Produce json
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Max records" default(100)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /audit [get]
func (h *AuditHandler) Index(c *gin.Context) {
	query := listQuery(c)
	logs, total, err := h.auditService.List(c.Request.Context(), query.Limit, query.Skip)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"audit_logs": logs,
		"total":      total,
		"skip":       query.Skip,
		"limit":      query.Limit,
	})
}
