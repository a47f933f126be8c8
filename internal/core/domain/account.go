package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the kind of financial account.
type AccountType string

const (
	Checking   AccountType = "checking"
	Savings    AccountType = "savings"
	Credit     AccountType = "credit"
	Investment AccountType = "investment"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Checking, Savings, Credit, Investment:
		return true
	}
	return false
}

// IsLiability reports whether balances of this type count as liabilities.
// Credit accounts conventionally hold negative balances; nothing enforces that.
func (t AccountType) IsLiability() bool {
	return t == Credit
}

// Account represents a financial account within the core domain.
type Account struct {
	AccountID    string          `json:"accountID"`
	Name         string          `json:"name"`
	AccountType  AccountType     `json:"accountType"` // not changed after creation
	Balance      decimal.Decimal `json:"balance"`
	CurrencyCode string          `json:"currencyCode"`
	AuditFields
}
