package domain

import "github.com/shopspring/decimal"

// Budget is a spending limit for one category. What has been spent is derived
// from transactions on read and never stored.
type Budget struct {
	BudgetID string          `json:"budgetID"`
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Color    string          `json:"color"`
	AuditFields
}
