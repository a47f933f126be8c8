package memory

import (
	"bytes"
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
)

type reportRepository struct {
	reports *collection[domain.Report]
}

// NewReportRepository creates an in-memory report store.
func NewReportRepository() portsrepo.ReportRepositoryFacade {
	return &reportRepository{
		reports: newCollection("report", func(r domain.Report) string { return r.ReportID }),
	}
}

func (r *reportRepository) FindReportByID(_ context.Context, reportID string) (*domain.Report, error) {
	return r.reports.get(reportID)
}

func (r *reportRepository) ListReports(_ context.Context) ([]domain.Report, error) {
	return r.reports.list(), nil
}

func (r *reportRepository) SaveReport(_ context.Context, report domain.Report) error {
	// The payload is caller-owned; keep a private copy.
	report.Data = bytes.Clone(report.Data)
	return r.reports.prepend(report)
}

func (r *reportRepository) DeleteReport(_ context.Context, reportID string) error {
	return r.reports.remove(reportID)
}
