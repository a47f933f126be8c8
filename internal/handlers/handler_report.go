package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

// registerReportRoutes registers routes for generated report records.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := &reportHandler{reportService: reportService}

	reports := rg.Group("/reports")
	{
		reports.POST("", h.createReport)
		reports.GET("", h.listReports)
		reports.GET("/:id", h.getReport)
		reports.DELETE("/:id", h.deleteReport)
	}
}

// createReport godoc
// @Summary Record a generated report
// @Tags reports
// @Accept  json
// @Produce  json
// @Param   report body dto.CreateReportRequest true "Report metadata"
// @Success 201 {object} domain.Report
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /reports [post]
func (h *reportHandler) createReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "CreateReport")
		return
	}

	report, err := h.reportService.CreateReport(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create report")
		return
	}

	logger.Info("Report recorded", slog.String("report_id", report.ReportID), slog.String("type", string(report.ReportType)))
	c.JSON(http.StatusCreated, report)
}

// getReport godoc
// @Summary Get a report by ID
// @Tags reports
// @Produce  json
// @Param   id path string true "Report ID"
// @Success 200 {object} domain.Report
// @Failure 404 {object} map[string]string "Report not found"
// @Router /reports/{id} [get]
func (h *reportHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("report_id", c.Param("id")))

	report, err := h.reportService.GetReportByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "retrieve report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// listReports godoc
// @Summary List reports
// @Tags reports
// @Produce  json
// @Param   type query string false "balance-sheet, profit-loss or cash-flow"
// @Success 200 {object} dto.ListReportsResponse
// @Router /reports [get]
func (h *reportHandler) listReports(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListReportsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err, "ListReports query")
		return
	}

	reports, err := h.reportService.ListReports(c.Request.Context(), params.Type)
	if err != nil {
		respondServiceError(c, logger, err, "list reports")
		return
	}
	c.JSON(http.StatusOK, dto.ListReportsResponse{Reports: reports})
}

// deleteReport godoc
// @Summary Remove a report
// @Tags reports
// @Param   id path string true "Report ID"
// @Success 204 "No Content"
// @Router /reports/{id} [delete]
func (h *reportHandler) deleteReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("report_id", c.Param("id")))

	if err := h.reportService.RemoveReport(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "remove report")
		return
	}
	c.Status(http.StatusNoContent)
}
