package handlers

import (
	"context"
	"errors"
	"net/http"

	request "botenwerf/internal/adapter/http/dto/request"
	response "botenwerf/internal/adapter/http/dto/response"
	"botenwerf/internal/domain/entities"
	"botenwerf/internal/usecase"
	"botenwerf/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for quote versions on a project.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateDraft(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	p, err := h.usecase.CreateDraft(c.Request.Context(), c.Param("id"), payload.ToInput(), auditFromHeaders(c))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(p))
}

func (h *QuoteHandler) UpdateDraft(c *gin.Context) {
	var payload request.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	p, err := h.usecase.UpdateDraft(c.Request.Context(), c.Param("id"), c.Param("quote_id"), payload.ToInput(), auditFromHeaders(c))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *QuoteHandler) MarkAsSent(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.MarkAsSent)
}

func (h *QuoteHandler) MarkAsAccepted(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.MarkAsAccepted)
}

func (h *QuoteHandler) MarkAsRejected(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.MarkAsRejected)
}

func (h *QuoteHandler) CreateNewVersion(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.CreateNewVersion)
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	updater func(ctx context.Context, projectID, quoteID string, audit entities.AuditUser) (entities.Project, error),
) {
	p, err := updater(c.Request.Context(), c.Param("id"), c.Param("quote_id"), auditFromHeaders(c))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(p))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyConfiguration):
		return pkg.NewDomainErrorSimple("EMPTY_CONFIGURATION", "Configuration has no items to quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrOpenQuoteExists):
		return pkg.NewDomainErrorSimple("OPEN_QUOTE_EXISTS", "Another quote is still open", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotDraft):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_DRAFT", "Only draft quotes can be edited", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidQuoteTransition):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_TRANSITION", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotingClosed):
		return pkg.NewDomainErrorSimple("QUOTING_CLOSED", "Quotes can only be managed before order confirmation", http.StatusConflict)
	default:
		return mapProjectCoreError(err)
	}
}
