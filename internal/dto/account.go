package dto

import (
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name         string             `json:"name" binding:"required"`
	AccountType  domain.AccountType `json:"accountType" binding:"required,oneof=checking savings credit investment"`
	Balance      decimal.Decimal    `json:"balance"`
	CurrencyCode string             `json:"currencyCode" binding:"omitempty,uppercase,len=3"` // defaults to USD
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
// The account type cannot be changed.
type UpdateAccountRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1"`
	Balance      *decimal.Decimal `json:"balance"`
	CurrencyCode *string          `json:"currencyCode" binding:"omitempty,uppercase,len=3"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []domain.Account `json:"accounts"`
}
