package dto

import (
	"encoding/json"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// CreateReportRequest records a generated report.
type CreateReportRequest struct {
	Type  domain.ReportType `json:"type" binding:"required,oneof=balance-sheet profit-loss cash-flow"`
	Title string            `json:"title" binding:"required"`
	Data  json.RawMessage   `json:"data"`
}

// ListReportsParams filters the report list.
type ListReportsParams struct {
	Type domain.ReportType `form:"type" binding:"omitempty,oneof=balance-sheet profit-loss cash-flow"`
}

// ListReportsResponse wraps the list of reports.
type ListReportsResponse struct {
	Reports []domain.Report `json:"reports"`
}
