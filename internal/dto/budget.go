package dto

import (
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest sets a spending limit for a category.
type CreateBudgetRequest struct {
	Category string          `json:"category" binding:"required"`
	Limit    decimal.Decimal `json:"limit"` // must be positive
	Color    string          `json:"color" binding:"omitempty,hexcolor"`
}

// UpdateBudgetRequest is a partial update. Nil fields are left unchanged.
type UpdateBudgetRequest struct {
	Category *string          `json:"category" binding:"omitempty,min=1"`
	Limit    *decimal.Decimal `json:"limit"`
	Color    *string          `json:"color" binding:"omitempty,hexcolor"`
}

// ListBudgetsResponse wraps the list of budgets.
type ListBudgetsResponse struct {
	Budgets []domain.Budget `json:"budgets"`
}
