package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plantops/manufacturing-ops/internal/core/ports"
)

type ReportHandler struct {
	reportService ports.ReportService
}

func NewReportHandler(reportService ports.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Daily godoc
// @Summary Production totals per calendar day
// @Tags reports
// @Produce json
// @Param start_date query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {array} ports.DailySummary
// @Security BearerAuth
// @Router /v1/reports/daily [get]
func (h *ReportHandler) Daily(c echo.Context) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return err
	}
	rows, err := h.reportService.DailySummary(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []ports.DailySummary{}
	}
	return c.JSON(http.StatusOK, rows)
}

// Monthly godoc
// @Summary Production totals per month
// @Tags reports
// @Produce json
// @Success 200 {array} ports.MonthlySummary
// @Security BearerAuth
// @Router /v1/reports/monthly [get]
func (h *ReportHandler) Monthly(c echo.Context) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return err
	}
	rows, err := h.reportService.MonthlySummary(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []ports.MonthlySummary{}
	}
	return c.JSON(http.StatusOK, rows)
}

// Machines godoc
// @Summary Per-machine output and average cycle time
// @Tags reports
// @Produce json
// @Success 200 {array} ports.MachineSummary
// @Security BearerAuth
// @Router /v1/reports/machines [get]
func (h *ReportHandler) Machines(c echo.Context) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return err
	}
	rows, err := h.reportService.MachinePerformance(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []ports.MachineSummary{}
	}
	return c.JSON(http.StatusOK, rows)
}

// Overview godoc
// @Summary Plant-wide totals
// @Tags reports
// @Produce json
// @Success 200 {object} ports.OverviewSummary
// @Security BearerAuth
// @Router /v1/reports/overview [get]
func (h *ReportHandler) Overview(c echo.Context) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return err
	}
	row, err := h.reportService.Overview(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, row)
}

// ByProduct godoc
// @Summary Production totals per product
// @Tags reports
// @Produce json
// @Success 200 {array} ports.ProductSummary
// @Security BearerAuth
// @Router /v1/reports/products [get]
func (h *ReportHandler) ByProduct(c echo.Context) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return err
	}
	rows, err := h.reportService.ByProduct(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []ports.ProductSummary{}
	}
	return c.JSON(http.StatusOK, rows)
}

// ByOperator godoc
// @Summary Production totals per operator
// @Tags reports
// @Produce json
// @Success 200 {array} ports.OperatorSummary
// @Security BearerAuth
// @Router /v1/reports/operators [get]
func (h *ReportHandler) ByOperator(c echo.Context) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return err
	}
	rows, err := h.reportService.ByOperator(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []ports.OperatorSummary{}
	}
	return c.JSON(http.StatusOK, rows)
}
