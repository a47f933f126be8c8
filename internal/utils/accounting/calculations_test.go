package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/SscSPs/finance_dashboard/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func txn(date, category, amount string) domain.Transaction {
	d, _ := time.Parse(domain.DateLayout, date)
	a := dec(amount)
	return domain.Transaction{Date: d, Category: category, Amount: a, Type: domain.TypeForAmount(a)}
}

func TestCalculateNetWorth(t *testing.T) {
	accounts := []domain.Account{
		{AccountType: domain.Checking, Balance: dec("5420.50")},
		{AccountType: domain.Savings, Balance: dec("12500")},
		{AccountType: domain.Credit, Balance: dec("-1250.30")},
		{AccountType: domain.Investment, Balance: dec("8750.25")},
	}

	nw := accounting.CalculateNetWorth(accounts)

	assert.True(t, nw.TotalAssets.Equal(dec("26670.75")), nw.TotalAssets.String())
	assert.True(t, nw.TotalLiabilities.Equal(dec("1250.30")), nw.TotalLiabilities.String())
	assert.True(t, nw.NetWorth.Equal(dec("25420.45")), nw.NetWorth.String())
}

func TestCalculateNetWorth_MixedCurrencies(t *testing.T) {
	accounts := []domain.Account{
		{AccountType: domain.Checking, Balance: dec("100"), CurrencyCode: "USD"},
		{AccountType: domain.Savings, Balance: dec("8312"), CurrencyCode: "INR"},
		{AccountType: domain.Credit, Balance: dec("-85"), CurrencyCode: "EUR"},
		{AccountType: domain.Investment, Balance: dec("50")},
	}

	nw := accounting.CalculateNetWorth(accounts)

	assert.True(t, nw.TotalAssets.Equal(dec("250")), nw.TotalAssets.String())
	assert.True(t, nw.TotalLiabilities.Equal(dec("100")), nw.TotalLiabilities.String())
	assert.True(t, nw.NetWorth.Equal(dec("150")), nw.NetWorth.String())
}

func TestCalculateNetWorth_Empty(t *testing.T) {
	nw := accounting.CalculateNetWorth(nil)
	assert.True(t, nw.NetWorth.IsZero())
	assert.True(t, nw.TotalLiabilities.IsZero())
}

func TestCalculateMonthlyCashFlow(t *testing.T) {
	txns := []domain.Transaction{
		txn("2024-02-01", "Salary", "3000"),
		txn("2024-01-15", "Salary", "2500"),
		txn("2024-01-16", "Food & Drink", "-40"),
		txn("2024-02-03", "Shopping", "-120.50"),
		txn("2023-12-30", "Utilities", "-100"),
	}

	flows := accounting.CalculateMonthlyCashFlow(txns, 0)
	require.Len(t, flows, 3)
	assert.Equal(t, []string{"2023-12", "2024-01", "2024-02"}, []string{flows[0].Month, flows[1].Month, flows[2].Month})
	assert.True(t, flows[1].Income.Equal(dec("2500")))
	assert.True(t, flows[1].Expense.Equal(dec("40")))
	assert.True(t, flows[1].Net.Equal(dec("2460")))
	assert.True(t, flows[0].Net.Equal(dec("-100")))

	trailing := accounting.CalculateMonthlyCashFlow(txns, 2)
	require.Len(t, trailing, 2)
	assert.Equal(t, "2024-01", trailing[0].Month)
}

func TestMonthTotals(t *testing.T) {
	txns := []domain.Transaction{
		txn("2024-01-15", "Salary", "2500"),
		txn("2024-01-16", "Food", "-40"),
		txn("2024-02-16", "Food", "-60"),
	}
	income, expense := accounting.MonthTotals(txns, "2024-01")
	assert.True(t, income.Equal(dec("2500")))
	assert.True(t, expense.Equal(dec("40")))
}

func TestYearToDateProfit(t *testing.T) {
	txns := []domain.Transaction{
		txn("2024-03-01", "Salary", "3000"),
		txn("2024-01-02", "Rent", "-1200"),
		txn("2024-03-20", "Food", "-50"),
		txn("2024-04-01", "Salary", "3000"),
		txn("2023-12-31", "Bonus", "500"),
	}
	now := time.Date(2024, time.March, 20, 18, 0, 0, 0, time.UTC)

	profit := accounting.YearToDateProfit(txns, now)
	assert.True(t, profit.Equal(dec("1750")), profit.String())

	assert.True(t, accounting.YearToDateProfit(nil, now).IsZero())
}

func TestCalculateExpensesByCategory(t *testing.T) {
	txns := []domain.Transaction{
		txn("2024-01-15", "Salary", "2500"),
		txn("2024-01-16", "Food & Drink", "-40"),
		txn("2024-01-17", "Shopping", "-120"),
		txn("2024-01-18", "Food & Drink", "-15.50"),
		txn("2024-01-19", "Utilities", "-55.50"),
	}

	out := accounting.CalculateExpensesByCategory(txns)
	require.Len(t, out, 3)
	assert.Equal(t, "Shopping", out[0].Category)
	assert.Equal(t, "Food & Drink", out[1].Category)
	assert.Equal(t, "Utilities", out[2].Category)
	assert.True(t, out[1].Amount.Equal(dec("55.50")))
}

func TestCalculateBudgetProgress(t *testing.T) {
	budgets := []domain.Budget{
		{BudgetID: "b1", Category: "Shopping", Limit: dec("300")},
		{BudgetID: "b2", Category: "Food & Drink", Limit: dec("800")},
	}
	txns := []domain.Transaction{
		txn("2024-01-10", "shopping", "-350"),
		txn("2024-01-11", "Food & Drink", "-200"),
		txn("2024-02-11", "Food & Drink", "-100"),
		txn("2024-01-12", "Salary", "5000"),
	}

	overview := accounting.CalculateBudgetProgress(budgets, txns, "2024-01")
	require.Len(t, overview.Budgets, 2)

	shopping := overview.Budgets[0]
	assert.True(t, shopping.Spent.Equal(dec("350")))
	assert.True(t, shopping.Remaining.Equal(dec("-50")))
	assert.True(t, shopping.PercentUsed.Equal(dec("100")), "capped for display")
	assert.True(t, shopping.OverBudget)

	food := overview.Budgets[1]
	assert.True(t, food.Spent.Equal(dec("200")))
	assert.True(t, food.PercentUsed.Equal(dec("25")))
	assert.False(t, food.OverBudget)

	assert.True(t, overview.TotalBudgeted.Equal(dec("1100")))
	assert.True(t, overview.TotalSpent.Equal(dec("550")))
	assert.True(t, overview.TotalRemaining.Equal(dec("550")))

	allTime := accounting.CalculateBudgetProgress(budgets, txns, "")
	assert.True(t, allTime.Budgets[1].Spent.Equal(dec("300")))
}
