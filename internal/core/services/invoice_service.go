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

type invoiceService struct {
	BaseService
	invoiceRepo       portsrepo.InvoiceRepositoryFacade
	strictTransitions bool
	now               func() time.Time
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithStrictTransitions selects the transition policy. When strict, only
// draft->sent and sent->paid are accepted; otherwise any status overwrites.
func WithStrictTransitions(strict bool) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.strictTransitions = strict
	}
}

// WithInvoiceClock overrides the time source used for audit fields.
func WithInvoiceClock(now func() time.Time) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.now = now
	}
}

// NewInvoiceService creates an invoice service. Transitions are strict unless
// configured otherwise.
func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade, options ...InvoiceServiceOption) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		invoiceRepo:       repo,
		strictTransitions: true,
		now:               time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("invoice amount must be positive: %w", apperrors.ErrValidation)
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return nil, err
	}
	template := req.Template
	if template == "" {
		template = domain.TemplateProfessional
	}

	now := s.now()
	invoice := domain.Invoice{
		InvoiceID:   utils.NewID(utils.InvoiceIDPrefix),
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     dueDate,
		Template:    template,
		Status:      domain.InvoiceDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_id", invoice.InvoiceID))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created successfully", slog.String("invoice_id", invoice.InvoiceID))
	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, status domain.InvoiceStatus) ([]domain.Invoice, error) {
	all, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if status == "" {
		return all, nil
	}

	filtered := make([]domain.Invoice, 0, len(all))
	for _, invoice := range all {
		if invoice.Status == status {
			filtered = append(filtered, invoice)
		}
	}
	return filtered, nil
}

func (s *invoiceService) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus) (*domain.Invoice, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown invoice status %q: %w", status, apperrors.ErrValidation)
	}

	var previous domain.InvoiceStatus
	now := s.now()
	invoice, err := s.invoiceRepo.UpdateInvoice(ctx, invoiceID, func(invoice *domain.Invoice) error {
		previous = invoice.Status
		if invoice.Status == status {
			return nil
		}
		if s.strictTransitions && !invoice.Status.CanTransitionTo(status) {
			return fmt.Errorf("cannot move invoice from %s to %s: %w", invoice.Status, status, apperrors.ErrInvalidTransition)
		}
		invoice.Status = status
		invoice.LastUpdatedAt = now
		return nil
	})
	switch {
	case errors.Is(err, apperrors.ErrInvalidTransition):
		s.LogWarn(ctx, "Rejected invoice status change",
			slog.String("invoice_id", invoiceID),
			slog.String("from", string(previous)),
			slog.String("to", string(status)))
		return nil, err
	case errors.Is(err, apperrors.ErrNotFound):
		return nil, err
	case err != nil:
		s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoiceID))
		return nil, err
	}

	if previous != status {
		s.LogInfo(ctx, "Invoice status updated",
			slog.String("invoice_id", invoiceID),
			slog.String("from", string(previous)),
			slog.String("to", string(status)))
	}
	return invoice, nil
}

// RemoveInvoice deletes the invoice if it exists. Removing an unknown id is a no-op.
func (s *invoiceService) RemoveInvoice(ctx context.Context, invoiceID string) error {
	err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	s.LogInfo(ctx, "Invoice removed successfully", slog.String("invoice_id", invoiceID))
	return nil
}
