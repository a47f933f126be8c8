package dto

import (
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to draft an invoice.
type CreateInvoiceRequest struct {
	ClientName  string                 `json:"clientName" binding:"required"`
	ClientEmail string                 `json:"clientEmail" binding:"required,email"`
	Description string                 `json:"description"`
	Amount      decimal.Decimal        `json:"amount"` // must be positive
	DueDate     string                 `json:"dueDate" binding:"required,datetime=2006-01-02"`
	Template    domain.InvoiceTemplate `json:"template" binding:"omitempty,oneof=professional creative"`
}

// UpdateInvoiceStatusRequest moves an invoice through its lifecycle.
type UpdateInvoiceStatusRequest struct {
	Status domain.InvoiceStatus `json:"status" binding:"required,oneof=draft sent paid"`
}

// ListInvoicesParams filters the invoice list.
type ListInvoicesParams struct {
	Status domain.InvoiceStatus `form:"status" binding:"omitempty,oneof=draft sent paid"`
}

// ListInvoicesResponse wraps the list of invoices.
type ListInvoicesResponse struct {
	Invoices []domain.Invoice `json:"invoices"`
}
