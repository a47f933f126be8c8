package utils

import (
	"github.com/google/uuid"
)

// Identifier prefixes, one per entity kind.
const (
	AccountIDPrefix     = "ACC"
	TransactionIDPrefix = "TXN"
	InvoiceIDPrefix     = "INV"
	ReportIDPrefix      = "RPT"
	BudgetIDPrefix      = "BUD"
)

// NewID returns a collision-resistant identifier such as "INV-0b5f...".
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
