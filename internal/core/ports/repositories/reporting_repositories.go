package repositories

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// ReportReader defines read operations for generated report records
type ReportReader interface {
	FindReportByID(ctx context.Context, reportID string) (*domain.Report, error)
	ListReports(ctx context.Context) ([]domain.Report, error)
}

// ReportWriter defines write operations for generated report records
type ReportWriter interface {
	SaveReport(ctx context.Context, report domain.Report) error
	DeleteReport(ctx context.Context, reportID string) error
}

// ReportRepositoryFacade combines all report-related repository interfaces
type ReportRepositoryFacade interface {
	ReportReader
	ReportWriter
}
