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

var errInvalidItemPayload = pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid configuration item payload", http.StatusBadRequest)

// ConfigurationHandler handles HTTP requests for the project's priced
// equipment list. Every mutation returns the full project so the client sees
// the recomputed totals in one round trip.

type ConfigurationHandler struct {
	usecase usecase.IConfigurationUseCase
}

func NewConfigurationHandler(uc usecase.IConfigurationUseCase) *ConfigurationHandler {
	return &ConfigurationHandler{usecase: uc}
}

func (h *ConfigurationHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(p))
}

func (h *ConfigurationHandler) UpdateItem(c *gin.Context) {
	var payload request.UpdateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("id"), c.Param("item_id"), payload.ToInput())
	if err != nil {
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ConfigurationHandler) RemoveItem(c *gin.Context) {
	p, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	if err != nil {
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ConfigurationHandler) MoveItem(c *gin.Context) {
	var payload request.MoveItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.MoveItem(c.Request.Context(), c.Param("id"), c.Param("item_id"), usecase.MoveDirection(payload.Direction))
	if err != nil {
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ConfigurationHandler) UpdatePricing(c *gin.Context) {
	var payload request.UpdatePricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.UpdatePricing(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(p))
}

func mapConfigurationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemID), errors.Is(err, usecase.ErrInvalidItemInput), errors.Is(err, usecase.ErrInvalidMoveDirection):
		return pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid configuration item payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Configuration item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConfigurationFrozen):
		return pkg.NewDomainErrorSimple("CONFIGURATION_FROZEN", "Configuration is frozen, use an amendment", http.StatusConflict)
	default:
		return mapProjectCoreError(err)
	}
}
