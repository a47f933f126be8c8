package dto

import (
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// The type is never supplied; it follows from the sign of Amount.
type CreateTransactionRequest struct {
	Date        string           `json:"date" binding:"required,datetime=2006-01-02"`
	Description string           `json:"description" binding:"required"`
	Category    string           `json:"category"` // suggested from the description when empty
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Account     string           `json:"account"`
	AccountID   string           `json:"accountID"` // optional, must reference an existing account
}

// UpdateTransactionRequest is a partial update. Nil fields are left unchanged.
type UpdateTransactionRequest struct {
	Date        *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description *string          `json:"description" binding:"omitempty,min=1"`
	Category    *string          `json:"category"`
	Amount      *decimal.Decimal `json:"amount"`
	Account     *string          `json:"account"`
	AccountID   *string          `json:"accountID"` // empty string unlinks
}

// ListTransactionsParams defines the optional filters and paging for listing transactions.
type ListTransactionsParams struct {
	Category  string                 `form:"category"`
	Type      domain.TransactionType `form:"type" binding:"omitempty,oneof=income expense"`
	Month     string                 `form:"month" binding:"omitempty,datetime=2006-01"`
	Account   string                 `form:"account"` // display name or account id
	Search    string                 `form:"search"`  // case-insensitive substring of the description
	Limit     int                    `form:"limit" binding:"omitempty,min=1,max=100"` // 0 = no paging
	NextToken string                 `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	NextToken    *string              `json:"nextToken,omitempty"`
}

// SuggestCategoryParams holds the description to categorize.
type SuggestCategoryParams struct {
	Description string `form:"description" binding:"required"`
}

// SuggestCategoryResponse is the suggested category for a description.
type SuggestCategoryResponse struct {
	Description string `json:"description"`
	Category    string `json:"category"`
}
