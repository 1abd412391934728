package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "botenwerf/internal/adapter/http/dto/request"
	response "botenwerf/internal/adapter/http/dto/response"
	"botenwerf/internal/domain/entities"
	"botenwerf/internal/usecase"
	"botenwerf/pkg"

	"github.com/gin-gonic/gin"
)

// BOMHandler handles bill-of-materials snapshot requests.

type BOMHandler struct {
	usecase usecase.IBOMUseCase
}

func NewBOMHandler(uc usecase.IBOMUseCase) *BOMHandler {
	return &BOMHandler{usecase: uc}
}

func (h *BOMHandler) GenerateBOM(c *gin.Context) {
	// The body is optional; an absent trigger defaults to MANUAL.
	var payload request.GenerateBOMRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_BOM_INPUT", "Invalid BOM payload", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	trigger := entities.BOMTrigger(payload.Trigger)
	if trigger == "" {
		trigger = entities.BOMTriggerManual
	}

	p, err := h.usecase.GenerateBOM(c.Request.Context(), c.Param("id"), trigger)
	if err != nil {
		appErr := mapBOMError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(p))
}

func (h *BOMHandler) GetLatestBOM(c *gin.Context) {
	view, err := h.usecase.Latest(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBOMError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBOMView(view))
}

// ExportBOM streams one snapshot as a CSV attachment.
func (h *BOMHandler) ExportBOM(c *gin.Context) {
	data, filename, err := h.usecase.ExportCSV(c.Request.Context(), c.Param("id"), c.Param("snapshot_id"))
	if err != nil {
		appErr := mapBOMError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

func mapBOMError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBOMTrigger), errors.Is(err, usecase.ErrInvalidSnapshotID):
		return pkg.NewDomainErrorSimple("INVALID_BOM_INPUT", "Invalid BOM payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSnapshotNotFound):
		return pkg.NewDomainErrorSimple("SNAPSHOT_NOT_FOUND", "BOM snapshot not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoSnapshots):
		return pkg.NewDomainErrorSimple("NO_SNAPSHOTS", "Project has no BOM snapshots yet", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyConfiguration):
		return pkg.NewDomainErrorSimple("EMPTY_CONFIGURATION", "Configuration has no items", http.StatusConflict)
	default:
		return mapProjectCoreError(err)
	}
}
