package handlers

import (
	"errors"
	"net/http"
	"strings"

	"botenwerf/internal/domain/entities"
	"botenwerf/internal/usecase"
	"botenwerf/pkg"

	"github.com/gin-gonic/gin"
)

// auditFromHeaders reads the acting user from the gateway-injected headers.
// Authentication happens upstream; an absent header degrades to "system" so
// audit fields are never empty.
func auditFromHeaders(c *gin.Context) entities.AuditUser {
	userID := strings.TrimSpace(c.GetHeader("X-User-Id"))
	userName := strings.TrimSpace(c.GetHeader("X-User-Name"))
	if userName == "" {
		userName = "system"
	}
	return entities.AuditUser{UserID: userID, UserName: userName}
}

// mapProjectCoreError covers the sentinels shared by every project-scoped
// use case. Handler-specific map functions fall through to it.
func mapProjectCoreError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRevisionConflict):
		return pkg.NewDomainErrorSimple("REVISION_CONFLICT", "Project was modified concurrently, retry with fresh data", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
