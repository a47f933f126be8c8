package services

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/SscSPs/finance_dashboard/internal/dto"
)

// ReportReaderSvc defines read operations for generated report records
type ReportReaderSvc interface {
	GetReportByID(ctx context.Context, reportID string) (*domain.Report, error)
	ListReports(ctx context.Context, reportType domain.ReportType) ([]domain.Report, error)
}

// ReportWriterSvc defines write operations for generated report records
type ReportWriterSvc interface {
	CreateReport(ctx context.Context, req dto.CreateReportRequest) (*domain.Report, error)
	RemoveReport(ctx context.Context, reportID string) error
}

// ReportSvcFacade combines all report-related service interfaces
type ReportSvcFacade interface {
	ReportReaderSvc
	ReportWriterSvc
}
