package accounting

import (
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalculateNetWorth sums account balances in the base currency. Each balance
// is converted from its account's currency first. Credit balances count as
// liabilities by magnitude; every other account type is an asset.
func CalculateNetWorth(accounts []domain.Account) domain.NetWorth {
	assets := decimal.Zero
	credit := decimal.Zero
	for _, acc := range accounts {
		balance := domain.ToBase(acc.Balance, acc.CurrencyCode)
		if acc.AccountType.IsLiability() {
			credit = credit.Add(balance)
			continue
		}
		assets = assets.Add(balance)
	}
	liabilities := credit.Abs()
	return domain.NetWorth{
		TotalAssets:      assets,
		TotalLiabilities: liabilities,
		NetWorth:         assets.Sub(liabilities),
	}
}

// CalculateMonthlyCashFlow buckets transactions by YYYY-MM in ascending month
// order. Only the trailing months are kept when months > 0.
func CalculateMonthlyCashFlow(txns []domain.Transaction, months int) []domain.MonthlyCashFlow {
	byMonth := make(map[string]*domain.MonthlyCashFlow)
	for _, txn := range txns {
		key := txn.Month()
		bucket, ok := byMonth[key]
		if !ok {
			bucket = &domain.MonthlyCashFlow{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[key] = bucket
		}
		if txn.Type == domain.Income {
			bucket.Income = bucket.Income.Add(txn.Amount)
		} else {
			bucket.Expense = bucket.Expense.Add(txn.Amount.Abs())
		}
	}

	flows := make([]domain.MonthlyCashFlow, 0, len(byMonth))
	for _, bucket := range byMonth {
		bucket.Net = bucket.Income.Sub(bucket.Expense)
		flows = append(flows, *bucket)
	}
	sort.Slice(flows, func(i, j int) bool { return flows[i].Month < flows[j].Month })

	if months > 0 && len(flows) > months {
		flows = flows[len(flows)-months:]
	}
	return flows
}

// MonthTotals returns income and expense (as a magnitude) for one month.
func MonthTotals(txns []domain.Transaction, month string) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, txn := range txns {
		if txn.Month() != month {
			continue
		}
		if txn.Type == domain.Income {
			income = income.Add(txn.Amount)
		} else {
			expense = expense.Add(txn.Amount.Abs())
		}
	}
	return income, expense
}

// YearToDateProfit is income minus expense for transactions dated in now's
// calendar year, up to and including now's date.
func YearToDateProfit(txns []domain.Transaction, now time.Time) decimal.Decimal {
	year := now.Year()
	today := now.Format(domain.DateLayout)
	profit := decimal.Zero
	for _, txn := range txns {
		if txn.Date.Year() != year || txn.Date.Format(domain.DateLayout) > today {
			continue
		}
		if txn.Type == domain.Income {
			profit = profit.Add(txn.Amount)
		} else {
			profit = profit.Sub(txn.Amount.Abs())
		}
	}
	return profit
}

// CalculateExpensesByCategory totals expense magnitudes per category, largest
// first. Ties are ordered by category name.
func CalculateExpensesByCategory(txns []domain.Transaction) []domain.CategoryAmount {
	totals := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		if txn.Type != domain.Expense {
			continue
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount.Abs())
	}

	out := make([]domain.CategoryAmount, 0, len(totals))
	for category, amount := range totals {
		out = append(out, domain.CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// CalculateBudgetProgress derives spending per budget from expense transactions
// whose category matches (case-insensitively). An empty month covers all time.
func CalculateBudgetProgress(budgets []domain.Budget, txns []domain.Transaction, month string) domain.BudgetOverview {
	spentByCategory := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		if txn.Type != domain.Expense {
			continue
		}
		if month != "" && txn.Month() != month {
			continue
		}
		key := strings.ToLower(txn.Category)
		spentByCategory[key] = spentByCategory[key].Add(txn.Amount.Abs())
	}

	overview := domain.BudgetOverview{
		Month:          month,
		Budgets:        make([]domain.BudgetStatus, 0, len(budgets)),
		TotalBudgeted:  decimal.Zero,
		TotalSpent:     decimal.Zero,
		TotalRemaining: decimal.Zero,
	}
	for _, b := range budgets {
		spent := spentByCategory[strings.ToLower(b.Category)]
		remaining := b.Limit.Sub(spent)
		overview.Budgets = append(overview.Budgets, domain.BudgetStatus{
			Budget:      b,
			Spent:       spent,
			Remaining:   remaining,
			PercentUsed: percentUsed(spent, b.Limit),
			OverBudget:  spent.GreaterThan(b.Limit),
		})
		overview.TotalBudgeted = overview.TotalBudgeted.Add(b.Limit)
		overview.TotalSpent = overview.TotalSpent.Add(spent)
	}
	overview.TotalRemaining = overview.TotalBudgeted.Sub(overview.TotalSpent)
	return overview
}

// percentUsed is spent/limit as a percentage rounded to one decimal, capped at 100.
func percentUsed(spent, limit decimal.Decimal) decimal.Decimal {
	if !limit.IsPositive() {
		return decimal.Zero
	}
	pct := spent.Div(limit).Mul(hundred).Round(1)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}
