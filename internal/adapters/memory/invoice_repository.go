package memory

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
)

type invoiceRepository struct {
	invoices *collection[domain.Invoice]
}

// NewInvoiceRepository creates an in-memory invoice store.
func NewInvoiceRepository() portsrepo.InvoiceRepositoryFacade {
	return &invoiceRepository{
		invoices: newCollection("invoice", func(i domain.Invoice) string { return i.InvoiceID }),
	}
}

func (r *invoiceRepository) FindInvoiceByID(_ context.Context, invoiceID string) (*domain.Invoice, error) {
	return r.invoices.get(invoiceID)
}

func (r *invoiceRepository) ListInvoices(_ context.Context) ([]domain.Invoice, error) {
	return r.invoices.list(), nil
}

func (r *invoiceRepository) SaveInvoice(_ context.Context, invoice domain.Invoice) error {
	return r.invoices.prepend(invoice)
}

func (r *invoiceRepository) UpdateInvoice(_ context.Context, invoiceID string, mutate func(*domain.Invoice) error) (*domain.Invoice, error) {
	return r.invoices.modify(invoiceID, mutate)
}

func (r *invoiceRepository) DeleteInvoice(_ context.Context, invoiceID string) error {
	return r.invoices.remove(invoiceID)
}
