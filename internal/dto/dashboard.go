package dto

import (
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyView is a USD amount converted and formatted in the selected currency.
type MoneyView struct {
	Amount    decimal.Decimal `json:"amount"`    // USD base
	Converted decimal.Decimal `json:"converted"` // in CurrencyCode
	Formatted string          `json:"formatted"`
}

// CashFlowParams limits the cash-flow series to the trailing N months (0 = all).
type CashFlowParams struct {
	Months int `form:"months,default=0" binding:"min=0"`
}

// BudgetProgressParams restricts spending to one month (empty = all time).
type BudgetProgressParams struct {
	Month string `form:"month" binding:"omitempty,datetime=2006-01"`
}

// CashFlowView is one month of cash flow in the selected currency.
type CashFlowView struct {
	Month   string    `json:"month"`
	Income  MoneyView `json:"income"`
	Expense MoneyView `json:"expense"`
	Net     MoneyView `json:"net"`
}

// CategoryView is a category total in the selected currency.
type CategoryView struct {
	Category string    `json:"category"`
	Amount   MoneyView `json:"amount"`
}

// BudgetStatusView is a budget's progress in the selected currency.
type BudgetStatusView struct {
	BudgetID    string          `json:"budgetID"`
	Category    string          `json:"category"`
	Color       string          `json:"color"`
	Limit       MoneyView       `json:"limit"`
	Spent       MoneyView       `json:"spent"`
	Remaining   MoneyView       `json:"remaining"`
	PercentUsed decimal.Decimal `json:"percentUsed"`
	OverBudget  bool            `json:"overBudget"`
}

// BudgetOverviewView is the month's budget overview in the selected currency.
type BudgetOverviewView struct {
	Month          string             `json:"month"`
	Budgets        []BudgetStatusView `json:"budgets"`
	TotalBudgeted  MoneyView          `json:"totalBudgeted"`
	TotalSpent     MoneyView          `json:"totalSpent"`
	TotalRemaining MoneyView          `json:"totalRemaining"`
}

// DashboardResponse bundles the dashboard figures. Every money figure is a
// MoneyView so clients never mix USD and selected-currency values.
type DashboardResponse struct {
	CurrencyCode       string               `json:"currencyCode"`
	Month              string               `json:"month"`
	NetWorth           MoneyView            `json:"netWorth"`
	TotalAssets        MoneyView            `json:"totalAssets"`
	TotalLiabilities   MoneyView            `json:"totalLiabilities"`
	MonthlyIncome      MoneyView            `json:"monthlyIncome"`
	MonthlyExpense     MoneyView            `json:"monthlyExpense"`
	YTDProfit          MoneyView            `json:"ytdProfit"`
	CashFlow           []CashFlowView       `json:"cashFlow"`
	ExpensesByCategory []CategoryView       `json:"expensesByCategory"`
	Budgets            BudgetOverviewView   `json:"budgets"`
	RecentTransactions []domain.Transaction `json:"recentTransactions"`
}
