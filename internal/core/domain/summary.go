package domain

import (
	"github.com/shopspring/decimal"
)

// NetWorth summarises account balances.
type NetWorth struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"` // non-negative
	NetWorth         decimal.Decimal `json:"netWorth"`
}

// MonthlyCashFlow is income and expense for one calendar month.
type MonthlyCashFlow struct {
	Month   string          `json:"month"` // YYYY-MM
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"` // non-negative
	Net     decimal.Decimal `json:"net"`
}

// CategoryAmount is a total bucketed by category.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// BudgetStatus is a budget with its derived spending.
type BudgetStatus struct {
	Budget
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"` // negative when over budget
	PercentUsed decimal.Decimal `json:"percentUsed"`
	OverBudget  bool            `json:"overBudget"`
}

// BudgetOverview is the budget view with totals.
type BudgetOverview struct {
	Month          string          `json:"month,omitempty"`
	Budgets        []BudgetStatus  `json:"budgets"`
	TotalBudgeted  decimal.Decimal `json:"totalBudgeted"`
	TotalSpent     decimal.Decimal `json:"totalSpent"`
	TotalRemaining decimal.Decimal `json:"totalRemaining"`
}
