package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/utils"
)

type reportService struct {
	BaseService
	reportRepo portsrepo.ReportRepositoryFacade
	now        func() time.Time
}

// ReportServiceOption is a functional option for configuring the report service
type ReportServiceOption func(*reportService)

// WithReportClock overrides the time source used for GeneratedAt.
func WithReportClock(now func() time.Time) ReportServiceOption {
	return func(s *reportService) {
		s.now = now
	}
}

// NewReportService creates the service that records generated reports.
func NewReportService(repo portsrepo.ReportRepositoryFacade, options ...ReportServiceOption) portssvc.ReportSvcFacade {
	svc := &reportService{
		reportRepo: repo,
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *reportService) CreateReport(ctx context.Context, req dto.CreateReportRequest) (*domain.Report, error) {
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("unknown report type %q: %w", req.Type, apperrors.ErrValidation)
	}

	report := domain.Report{
		ReportID:    utils.NewID(utils.ReportIDPrefix),
		ReportType:  req.Type,
		Title:       req.Title,
		GeneratedAt: s.now(),
		Data:        req.Data,
	}

	if err := s.reportRepo.SaveReport(ctx, report); err != nil {
		s.LogError(ctx, err, "Failed to save report", slog.String("report_id", report.ReportID))
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	s.LogInfo(ctx, "Report recorded", slog.String("report_id", report.ReportID), slog.String("type", string(report.ReportType)))
	return &report, nil
}

func (s *reportService) GetReportByID(ctx context.Context, reportID string) (*domain.Report, error) {
	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find report", slog.String("report_id", reportID))
		}
		return nil, err
	}
	return report, nil
}

func (s *reportService) ListReports(ctx context.Context, reportType domain.ReportType) ([]domain.Report, error) {
	all, err := s.reportRepo.ListReports(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reports")
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	if reportType == "" {
		return all, nil
	}

	filtered := make([]domain.Report, 0, len(all))
	for _, report := range all {
		if report.ReportType == reportType {
			filtered = append(filtered, report)
		}
	}
	return filtered, nil
}

// RemoveReport deletes the record if it exists. Removing an unknown id is a no-op.
func (s *reportService) RemoveReport(ctx context.Context, reportID string) error {
	err := s.reportRepo.DeleteReport(ctx, reportID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to delete report", slog.String("report_id", reportID))
		return fmt.Errorf("failed to delete report: %w", err)
	}
	s.LogInfo(ctx, "Report removed", slog.String("report_id", reportID))
	return nil
}
