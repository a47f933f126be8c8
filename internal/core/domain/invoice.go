package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "draft"
	InvoiceSent  InvoiceStatus = "sent"
	InvoicePaid  InvoiceStatus = "paid"
)

// IsValid reports whether s is a known invoice status.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid:
		return true
	}
	return false
}

// CanTransitionTo reports whether the forward-only lifecycle allows moving to next.
// Staying in the same state is allowed.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case InvoiceDraft:
		return next == InvoiceSent
	case InvoiceSent:
		return next == InvoicePaid
	}
	return false
}

// InvoiceTemplate selects the rendering template.
type InvoiceTemplate string

const (
	TemplateProfessional InvoiceTemplate = "professional"
	TemplateCreative     InvoiceTemplate = "creative"
)

// Invoice is a client invoice.
type Invoice struct {
	InvoiceID   string          `json:"invoiceID"`
	ClientName  string          `json:"clientName"`
	ClientEmail string          `json:"clientEmail"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"dueDate"`
	Template    InvoiceTemplate `json:"template"`
	Status      InvoiceStatus   `json:"status"`
	AuditFields
}

// MarshalJSON writes DueDate as YYYY-MM-DD.
func (inv Invoice) MarshalJSON() ([]byte, error) {
	type plain Invoice
	return json.Marshal(struct {
		plain
		DueDate string `json:"dueDate"`
	}{plain: plain(inv), DueDate: formatDate(inv.DueDate)})
}

func (inv *Invoice) UnmarshalJSON(data []byte) error {
	type plain Invoice
	aux := struct {
		*plain
		DueDate string `json:"dueDate"`
	}{plain: (*plain)(inv)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	due, err := parseDate(aux.DueDate)
	if err != nil {
		return err
	}
	inv.DueDate = due
	return nil
}
