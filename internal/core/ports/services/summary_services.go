package services

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/SscSPs/finance_dashboard/internal/dto"
)

// SummarySvc computes the dashboard aggregates from current store contents.
// Nothing is cached; every call reads the stores again.
type SummarySvc interface {
	NetWorth(ctx context.Context) (*domain.NetWorth, error)

	// MonthlyCashFlow returns income and expense per month in ascending order,
	// limited to the trailing months when months > 0.
	MonthlyCashFlow(ctx context.Context, months int) ([]domain.MonthlyCashFlow, error)

	// ExpensesByCategory returns expense totals per category, largest first.
	ExpensesByCategory(ctx context.Context) ([]domain.CategoryAmount, error)

	// BudgetProgress reports spending against each budget. An empty month covers all time.
	BudgetProgress(ctx context.Context, month string) (*domain.BudgetOverview, error)

	// Dashboard bundles the aggregates with figures formatted in the selected currency.
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
}
