package memory

import (
	"context"
	"strings"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
)

type budgetRepository struct {
	budgets *collection[domain.Budget]
}

// NewBudgetRepository creates an in-memory budget store.
func NewBudgetRepository() portsrepo.BudgetRepositoryFacade {
	budgets := newCollection("budget", func(b domain.Budget) string { return b.BudgetID })
	budgets.conflicts = func(a, b domain.Budget) bool {
		return strings.EqualFold(a.Category, b.Category)
	}
	return &budgetRepository{budgets: budgets}
}

func (r *budgetRepository) FindBudgetByID(_ context.Context, budgetID string) (*domain.Budget, error) {
	return r.budgets.get(budgetID)
}

func (r *budgetRepository) ListBudgets(_ context.Context) ([]domain.Budget, error) {
	return r.budgets.list(), nil
}

func (r *budgetRepository) SaveBudget(_ context.Context, budget domain.Budget) error {
	return r.budgets.prepend(budget)
}

func (r *budgetRepository) UpdateBudget(_ context.Context, budgetID string, mutate func(*domain.Budget) error) (*domain.Budget, error) {
	return r.budgets.modify(budgetID, mutate)
}

func (r *budgetRepository) DeleteBudget(_ context.Context, budgetID string) error {
	return r.budgets.remove(budgetID)
}
