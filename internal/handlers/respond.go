package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/societyhub/societyhub-api/internal/repository"
	"github.com/societyhub/societyhub-api/internal/services"
	"github.com/societyhub/societyhub-api/pkg/logger"
)

// respondError translates the service error taxonomy into HTTP. Conflicts
// map to 400, matching the validation bucket the clients already handle.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		errorJSON(c, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		errorJSON(c, http.StatusUnauthorized, "unauthorized", err.Error())
	case errors.Is(err, services.ErrConflict):
		errorJSON(c, http.StatusBadRequest, "conflict", err.Error())
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInvalidState):
		errorJSON(c, http.StatusBadRequest, "validation", err.Error())
	default:
		logger.Error("unhandled error", "path", c.FullPath(), "error", err.Error())
		errorJSON(c, http.StatusInternalServerError, "internal", "internal server error")
	}
}

func errorJSON(c *gin.Context, status int, kind, message string) {
	c.JSON(status, gin.H{
		"error": gin.H{"kind": kind, "message": message},
	})
}

// idParam parses the named path parameter as an unsigned ID
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "validation", "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

// listQuery reads the skip/limit pagination parameters
func listQuery(c *gin.Context) *repository.ListQuery {
	query := repository.NewListQuery()
	if skip, err := strconv.Atoi(c.DefaultQuery("skip", "0")); err == nil && skip >= 0 {
		query.Skip = skip
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "100")); err == nil && limit > 0 {
		query.Limit = limit
	}
	return query
}
