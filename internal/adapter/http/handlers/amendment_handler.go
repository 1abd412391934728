package handlers

import (
	"errors"
	"net/http"

	request "botenwerf/internal/adapter/http/dto/request"
	response "botenwerf/internal/adapter/http/dto/response"
	"botenwerf/internal/usecase"
	"botenwerf/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAmendmentPayload = pkg.NewDomainErrorSimple("INVALID_AMENDMENT_INPUT", "Invalid amendment payload", http.StatusBadRequest)

// AmendmentHandler handles post-freeze configuration changes.

type AmendmentHandler struct {
	usecase usecase.IAmendmentUseCase
}

func NewAmendmentHandler(uc usecase.IAmendmentUseCase) *AmendmentHandler {
	return &AmendmentHandler{usecase: uc}
}

func (h *AmendmentHandler) RequestAmendment(c *gin.Context) {
	var payload request.AmendmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAmendmentPayload.HTTPStatus, errInvalidAmendmentPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.RequestAmendment(
		c.Request.Context(),
		c.Param("id"),
		payload.ToType(),
		payload.Reason,
		payload.ToChanges(),
		auditFromHeaders(c),
	)
	if err != nil {
		appErr := mapAmendmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(p))
}

func (h *AmendmentHandler) ListAmendments(c *gin.Context) {
	amendments, err := h.usecase.ListAmendments(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAmendmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, amendments)
}

func mapAmendmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmendmentType),
		errors.Is(err, usecase.ErrEmptyReason),
		errors.Is(err, usecase.ErrEmptyChanges),
		errors.Is(err, usecase.ErrInvalidItemID),
		errors.Is(err, usecase.ErrInvalidItemInput):
		return pkg.NewDomainErrorSimple("INVALID_AMENDMENT_INPUT", "Invalid amendment payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Configuration item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFrozen):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FROZEN", "Project is not frozen, edit the configuration directly", http.StatusConflict)
	case errors.Is(err, usecase.ErrProjectLocked):
		return pkg.NewDomainErrorSimple("PROJECT_LOCKED", "Project is closed, no further changes are possible", http.StatusConflict)
	default:
		return mapProjectCoreError(err)
	}
}
