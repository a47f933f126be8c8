package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is money in or money out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// TypeForAmount derives the transaction type from the sign of amount.
// Zero counts as an expense.
func TypeForAmount(amount decimal.Decimal) TransactionType {
	if amount.IsPositive() {
		return Income
	}
	return Expense
}

// Transaction represents a dated, categorized monetary movement.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"` // positive = income, negative = expense
	Type          TransactionType `json:"type"`   // always TypeForAmount(Amount)
	// Account is the display name of the account, kept as a loose reference.
	Account string `json:"account"`
	// AccountID optionally links to an Account by identifier. Cleared when that account is removed.
	AccountID string `json:"accountID,omitempty"`
	AuditFields
}

// MarshalJSON writes Date as YYYY-MM-DD.
func (t Transaction) MarshalJSON() ([]byte, error) {
	type plain Transaction
	return json.Marshal(struct {
		plain
		Date string `json:"date"`
	}{plain: plain(t), Date: formatDate(t.Date)})
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	type plain Transaction
	aux := struct {
		*plain
		Date string `json:"date"`
	}{plain: (*plain)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	date, err := parseDate(aux.Date)
	if err != nil {
		return err
	}
	t.Date = date
	return nil
}

// Month returns the YYYY-MM bucket the transaction falls into.
func (t Transaction) Month() string {
	return t.Date.Format(MonthLayout)
}

// Validate checks the amount/type invariant.
func (t Transaction) Validate() error {
	if want := TypeForAmount(t.Amount); t.Type != want {
		return fmt.Errorf("transaction type %q does not match amount %s (want %q)", t.Type, t.Amount.String(), want)
	}
	return nil
}
