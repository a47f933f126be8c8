package repositories

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// BudgetReader defines read operations for budget data
type BudgetReader interface {
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)
	ListBudgets(ctx context.Context) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budget data
type BudgetWriter interface {
	// SaveBudget stores a new budget. Returns apperrors.ErrDuplicate when another
	// budget already covers the same category, compared case-insensitively.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// UpdateBudget applies mutate to the stored budget atomically, with the same
	// category rule as SaveBudget.
	UpdateBudget(ctx context.Context, budgetID string, mutate func(*domain.Budget) error) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, budgetID string) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
