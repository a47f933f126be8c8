package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/finance_dashboard/internal/adapters/memory"
	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/core/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInvoiceRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		ClientName:  "Acme Corp",
		ClientEmail: "billing@acme.test",
		Description: "Website redesign",
		Amount:      decimal.RequireFromString("2500.00"),
		DueDate:     "2024-03-01",
	}
}

func createInvoice(t *testing.T, svc portssvc.InvoiceSvcFacade) *domain.Invoice {
	t.Helper()
	invoice, err := svc.CreateInvoice(context.Background(), newInvoiceRequest())
	require.NoError(t, err)
	return invoice
}

func TestInvoiceService_CreateStartsAsDraft(t *testing.T) {
	svc := services.NewInvoiceService(memory.NewInvoiceRepository())
	invoice := createInvoice(t, svc)

	assert.Equal(t, domain.InvoiceDraft, invoice.Status)
	assert.Equal(t, domain.TemplateProfessional, invoice.Template)
	assert.Regexp(t, `^INV-`, invoice.InvoiceID)
	assert.Equal(t, "2024-03-01", invoice.DueDate.Format(domain.DateLayout))
}

func TestInvoiceService_CreateRejectsNonPositiveAmount(t *testing.T) {
	svc := services.NewInvoiceService(memory.NewInvoiceRepository())
	req := newInvoiceRequest()
	req.Amount = decimal.Zero

	_, err := svc.CreateInvoice(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestInvoiceService_ForwardLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := services.NewInvoiceService(memory.NewInvoiceRepository())
	invoice := createInvoice(t, svc)

	sent, err := svc.UpdateInvoiceStatus(ctx, invoice.InvoiceID, domain.InvoiceSent)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceSent, sent.Status)

	paid, err := svc.UpdateInvoiceStatus(ctx, invoice.InvoiceID, domain.InvoicePaid)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoicePaid, paid.Status)

	stored, err := svc.GetInvoiceByID(ctx, invoice.InvoiceID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoicePaid, stored.Status)
}

func TestInvoiceService_StrictRejectsSkippingSent(t *testing.T) {
	ctx := context.Background()
	svc := services.NewInvoiceService(memory.NewInvoiceRepository(), services.WithStrictTransitions(true))
	invoice := createInvoice(t, svc)

	_, err := svc.UpdateInvoiceStatus(ctx, invoice.InvoiceID, domain.InvoicePaid)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	stored, _ := svc.GetInvoiceByID(ctx, invoice.InvoiceID)
	assert.Equal(t, domain.InvoiceDraft, stored.Status)
}

func TestInvoiceService_StrictRejectsGoingBack(t *testing.T) {
	ctx := context.Background()
	svc := services.NewInvoiceService(memory.NewInvoiceRepository())
	invoice := createInvoice(t, svc)
	_, err := svc.UpdateInvoiceStatus(ctx, invoice.InvoiceID, domain.InvoiceSent)
	require.NoError(t, err)

	_, err = svc.UpdateInvoiceStatus(ctx, invoice.InvoiceID, domain.InvoiceDraft)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestInvoiceService_SameStatusIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := services.NewInvoiceService(memory.NewInvoiceRepository())
	invoice := createInvoice(t, svc)

	same, err := svc.UpdateInvoiceStatus(ctx, invoice.InvoiceID, domain.InvoiceDraft)
	require.NoError(t, err)
	assert.Equal(t, invoice.LastUpdatedAt, same.LastUpdatedAt)
}

func TestInvoiceService_PermissiveAcceptsDraftToPaid(t *testing.T) {
	ctx := context.Background()
	svc := services.NewInvoiceService(memory.NewInvoiceRepository(), services.WithStrictTransitions(false))
	invoice := createInvoice(t, svc)

	paid, err := svc.UpdateInvoiceStatus(ctx, invoice.InvoiceID, domain.InvoicePaid)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoicePaid, paid.Status)

	back, err := svc.UpdateInvoiceStatus(ctx, invoice.InvoiceID, domain.InvoiceDraft)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceDraft, back.Status)
}

func TestInvoiceService_UpdateStatusUnknownInvoice(t *testing.T) {
	svc := services.NewInvoiceService(memory.NewInvoiceRepository())
	_, err := svc.UpdateInvoiceStatus(context.Background(), "INV-missing", domain.InvoiceSent)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestInvoiceService_ListByStatusAndRemove(t *testing.T) {
	ctx := context.Background()
	svc := services.NewInvoiceService(memory.NewInvoiceRepository())
	first := createInvoice(t, svc)
	second := createInvoice(t, svc)
	_, err := svc.UpdateInvoiceStatus(ctx, second.InvoiceID, domain.InvoiceSent)
	require.NoError(t, err)

	all, err := svc.ListInvoices(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.InvoiceID, all[0].InvoiceID)

	drafts, err := svc.ListInvoices(ctx, domain.InvoiceDraft)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, first.InvoiceID, drafts[0].InvoiceID)

	require.NoError(t, svc.RemoveInvoice(ctx, first.InvoiceID))
	require.NoError(t, svc.RemoveInvoice(ctx, first.InvoiceID), "second removal is a no-op")
	all, _ = svc.ListInvoices(ctx, "")
	assert.Len(t, all, 1)
}
