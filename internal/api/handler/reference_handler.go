package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
	"github.com/plantops/manufacturing-ops/internal/core/ports"
)

type ReferenceHandler struct {
	referenceService ports.ReferenceService
}

func NewReferenceHandler(referenceService ports.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

type createCategoryRequest struct {
	CategoryName string   `json:"category_name" validate:"required,min=2"`
	Values       []string `json:"values" validate:"required"`
}

type updateCategoryRequest struct {
	CategoryName string   `json:"category_name" validate:"omitempty,min=2"`
	Values       []string `json:"values" validate:"required"`
}

// Create godoc
// @Summary Create a reference data category
// @Tags reference
// @Accept json
// @Produce json
// @Param category body createCategoryRequest true "Category"
// @Success 201 {object} domain.ReferenceCategory
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /v1/reference-data [post]
func (h *ReferenceHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cat, err := h.referenceService.Create(c.Request().Context(), req.CategoryName, req.Values)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, cat)
}

// List godoc
// @Summary List all reference data categories
// @Tags reference
// @Produce json
// @Success 200 {array} domain.ReferenceCategory
// @Security BearerAuth
// @Router /v1/reference-data [get]
func (h *ReferenceHandler) List(c echo.Context) error {
	cats, err := h.referenceService.List(c.Request().Context())
	if err != nil {
		return err
	}
	if cats == nil {
		cats = []*domain.ReferenceCategory{}
	}
	return c.JSON(http.StatusOK, cats)
}

// Get godoc
// @Summary Fetch one reference data category by name
// @Tags reference
// @Produce json
// @Param name path string true "Category name"
// @Success 200 {object} domain.ReferenceCategory
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /v1/reference-data/{name} [get]
func (h *ReferenceHandler) Get(c echo.Context) error {
	cat, err := h.referenceService.Get(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cat)
}

// Update godoc
// @Summary Replace a category's values, optionally renaming it
// @Tags reference
// @Accept json
// @Produce json
// @Param name path string true "Category name"
// @Param category body updateCategoryRequest true "New contents"
// @Success 200 {object} domain.ReferenceCategory
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /v1/reference-data/{name} [put]
func (h *ReferenceHandler) Update(c echo.Context) error {
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cat, err := h.referenceService.Update(c.Request().Context(), c.Param("name"), req.CategoryName, req.Values)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cat)
}

// Delete godoc
// @Summary Delete a reference data category
// @Tags reference
// @Param name path string true "Category name"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /v1/reference-data/{name} [delete]
func (h *ReferenceHandler) Delete(c echo.Context) error {
	if err := h.referenceService.Delete(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
