package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/plantops/manufacturing-ops/internal/api/metrics"
	"github.com/plantops/manufacturing-ops/internal/core/domain"
	"github.com/plantops/manufacturing-ops/internal/core/ports"
)

type ProductionHandler struct {
	productionService ports.ProductionService
}

func NewProductionHandler(productionService ports.ProductionService) *ProductionHandler {
	return &ProductionHandler{productionService: productionService}
}

// Create godoc
// @Summary Record a production entry
// @Tags production
// @Accept json
// @Produce json
// @Param entry body createEntryRequest true "Production entry"
// @Success 201 {object} domain.ProductionEntry
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /v1/production [post]
func (h *ProductionHandler) Create(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.productionService.Create(c.Request().Context(), actor, ports.CreateEntryInput{
		ProductName:      req.ProductName,
		MachineID:        req.MachineID,
		QuantityProduced: req.QuantityProduced,
		OperatorID:       req.OperatorID,
		ProductionDate:   req.ProductionDate,
		Shift:            req.Shift,
		Comments:         req.Comments,
		TimeTakenMinutes: req.TimeTakenMinutes,
	})
	if err != nil {
		return err
	}

	shift := entry.Shift
	if shift == "" {
		shift = "unspecified"
	}
	metrics.EntriesCreatedTotal.WithLabelValues(shift).Inc()

	return c.JSON(http.StatusCreated, entry)
}

// List godoc
// @Summary List production entries visible to the caller
// @Tags production
// @Produce json
// @Param product_name query string false "Filter by product"
// @Param machine_id query string false "Filter by machine"
// @Param start_date query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {array} domain.ProductionEntry
// @Security BearerAuth
// @Router /v1/production [get]
func (h *ProductionHandler) List(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	input, err := parseListInput(c)
	if err != nil {
		return err
	}

	entries, err := h.productionService.List(c.Request().Context(), actor, input)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []*domain.ProductionEntry{}
	}

	return c.JSON(http.StatusOK, entries)
}

// Get godoc
// @Summary Fetch a single production entry
// @Tags production
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} domain.ProductionEntry
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /v1/production/{id} [get]
func (h *ProductionHandler) Get(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	entry, err := h.productionService.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, entry)
}

// Update godoc
// @Summary Update a production entry
// @Tags production
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param entry body updateEntryRequest true "Fields to change"
// @Success 200 {object} domain.ProductionEntry
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /v1/production/{id} [put]
func (h *ProductionHandler) Update(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.productionService.Update(c.Request().Context(), actor, c.Param("id"), ports.EntryUpdate{
		ProductName:      req.ProductName,
		MachineID:        req.MachineID,
		QuantityProduced: req.QuantityProduced,
		OperatorID:       req.OperatorID,
		ProductionDate:   req.ProductionDate,
		Shift:            req.Shift,
		Comments:         req.Comments,
		TimeTakenMinutes: req.TimeTakenMinutes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, entry)
}

// Delete godoc
// @Summary Delete a production entry
// @Tags production
// @Param id path string true "Entry ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /v1/production/{id} [delete]
func (h *ProductionHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.productionService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ExportCSV godoc
// @Summary Export the caller's visible entries as CSV
// @Tags production
// @Produce text/csv
// @Success 200 {string} string "CSV payload"
// @Security BearerAuth
// @Router /v1/production/export/csv [get]
func (h *ProductionHandler) ExportCSV(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	input, err := parseListInput(c)
	if err != nil {
		return err
	}

	filename := "production_data_export_" + time.Now().UTC().Format("20060102_150405") + ".csv"
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Response().WriteHeader(http.StatusOK)

	if err := h.productionService.ExportCSV(c.Request().Context(), actor, input, c.Response()); err != nil {
		return err
	}
	metrics.ExportsTotal.Inc()

	return nil
}
