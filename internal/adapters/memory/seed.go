package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/finance_dashboard/internal/utils"
	"github.com/shopspring/decimal"
)

type seedTxn struct {
	date, description, category, amount, account string
}

// SeedDemoData fills empty stores with the demo accounts, transactions and
// budgets shown on a fresh dashboard.
func SeedDemoData(ctx context.Context, repos portsrepo.RepositoryProvider, now time.Time) error {
	accounts := []struct {
		name    string
		kind    domain.AccountType
		balance string
	}{
		{"Investment Portfolio", domain.Investment, "45000"},
		{"Visa Credit Card", domain.Credit, "-1250"},
		{"High Yield Savings", domain.Savings, "25000"},
		{"Primary Checking", domain.Checking, "8500"},
	}
	for _, a := range accounts {
		acc := domain.Account{
			AccountID:    utils.NewID(utils.AccountIDPrefix),
			Name:         a.name,
			AccountType:  a.kind,
			Balance:      decimal.RequireFromString(a.balance),
			CurrencyCode: domain.BaseCurrencyCode,
			AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		}
		if err := repos.AccountRepo.SaveAccount(ctx, acc); err != nil {
			return fmt.Errorf("seed account %q: %w", a.name, err)
		}
	}

	// Oldest first so the newest ends up at the head of the list.
	txns := []seedTxn{
		{"2024-01-11", "Amazon Purchase", "Shopping", "-89.99", "Credit Card"},
		{"2024-01-12", "Electric Bill", "Utilities", "-120", "Checking"},
		{"2024-01-13", "Starbucks Coffee", "Food & Drink", "-12.50", "Credit Card"},
		{"2024-01-14", "Grocery Store", "Food & Drink", "-150", "Checking"},
		{"2024-01-15", "Salary - Tech Corp", "Salary", "5000", "Checking"},
	}
	for _, t := range txns {
		date, err := time.Parse(domain.DateLayout, t.date)
		if err != nil {
			return fmt.Errorf("seed transaction date %q: %w", t.date, err)
		}
		amount := decimal.RequireFromString(t.amount)
		txn := domain.Transaction{
			TransactionID: utils.NewID(utils.TransactionIDPrefix),
			Date:          date,
			Description:   t.description,
			Category:      t.category,
			Amount:        amount,
			Type:          domain.TypeForAmount(amount),
			Account:       t.account,
			AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		}
		if _, err := repos.TransactionRepo.SaveTransaction(ctx, txn, nil); err != nil {
			return fmt.Errorf("seed transaction %q: %w", t.description, err)
		}
	}

	budgets := []struct {
		category, limit, color string
	}{
		{"Shopping", "500", "#EF4444"},
		{"Entertainment", "300", "#8B5CF6"},
		{"Transportation", "400", "#F59E0B"},
		{"Food & Drink", "600", "#10B981"},
		{"Utilities", "500", "#3B82F6"},
	}
	for _, b := range budgets {
		budget := domain.Budget{
			BudgetID:    utils.NewID(utils.BudgetIDPrefix),
			Category:    b.category,
			Limit:       decimal.RequireFromString(b.limit),
			Color:       b.color,
			AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		}
		if err := repos.BudgetRepo.SaveBudget(ctx, budget); err != nil {
			return fmt.Errorf("seed budget %q: %w", b.category, err)
		}
	}
	return nil
}
