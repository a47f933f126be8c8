package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

const (
	dashboardCashFlowMonths = 6
	dashboardRecentCount    = 5
)

type summaryService struct {
	BaseService
	accountRepo     portsrepo.AccountReader
	transactionRepo portsrepo.TransactionReader
	budgetRepo      portsrepo.BudgetReader
	currency        portssvc.CurrencySvcFacade
	now             func() time.Time
}

// SummaryServiceOption is a functional option for configuring the summary service
type SummaryServiceOption func(*summaryService)

// WithSummaryClock overrides the clock that decides the current month.
func WithSummaryClock(now func() time.Time) SummaryServiceOption {
	return func(s *summaryService) {
		s.now = now
	}
}

// NewSummaryService creates the read-only aggregate service.
func NewSummaryService(repos portsrepo.RepositoryProvider, currency portssvc.CurrencySvcFacade, options ...SummaryServiceOption) portssvc.SummarySvc {
	svc := &summaryService{
		accountRepo:     repos.AccountRepo,
		transactionRepo: repos.TransactionRepo,
		budgetRepo:      repos.BudgetRepo,
		currency:        currency,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *summaryService) NetWorth(ctx context.Context) (*domain.NetWorth, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for net worth")
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	nw := accounting.CalculateNetWorth(accounts)
	return &nw, nil
}

func (s *summaryService) MonthlyCashFlow(ctx context.Context, months int) ([]domain.MonthlyCashFlow, error) {
	txns, err := s.loadTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return accounting.CalculateMonthlyCashFlow(txns, months), nil
}

func (s *summaryService) ExpensesByCategory(ctx context.Context) ([]domain.CategoryAmount, error) {
	txns, err := s.loadTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return accounting.CalculateExpensesByCategory(txns), nil
}

func (s *summaryService) BudgetProgress(ctx context.Context, month string) (*domain.BudgetOverview, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load budgets for progress")
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}
	txns, err := s.loadTransactions(ctx)
	if err != nil {
		return nil, err
	}
	overview := accounting.CalculateBudgetProgress(budgets, txns, month)
	return &overview, nil
}

func (s *summaryService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for dashboard")
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	txns, err := s.loadTransactions(ctx)
	if err != nil {
		return nil, err
	}
	budgets, err := s.budgetRepo.ListBudgets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load budgets for dashboard")
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	now := s.now()
	month := now.Format(domain.MonthLayout)
	nw := accounting.CalculateNetWorth(accounts)
	income, expense := accounting.MonthTotals(txns, month)

	recent := txns
	if len(recent) > dashboardRecentCount {
		recent = recent[:dashboardRecentCount]
	}

	return &dto.DashboardResponse{
		CurrencyCode:       s.currency.SelectedCurrency().CurrencyCode,
		Month:              month,
		NetWorth:           s.money(nw.NetWorth),
		TotalAssets:        s.money(nw.TotalAssets),
		TotalLiabilities:   s.money(nw.TotalLiabilities),
		MonthlyIncome:      s.money(income),
		MonthlyExpense:     s.money(expense),
		YTDProfit:          s.money(accounting.YearToDateProfit(txns, now)),
		CashFlow:           s.cashFlowViews(accounting.CalculateMonthlyCashFlow(txns, dashboardCashFlowMonths)),
		ExpensesByCategory: s.categoryViews(accounting.CalculateExpensesByCategory(txns)),
		Budgets:            s.budgetViews(accounting.CalculateBudgetProgress(budgets, txns, month)),
		RecentTransactions: recent,
	}, nil
}

func (s *summaryService) cashFlowViews(flows []domain.MonthlyCashFlow) []dto.CashFlowView {
	out := make([]dto.CashFlowView, 0, len(flows))
	for _, f := range flows {
		out = append(out, dto.CashFlowView{
			Month:   f.Month,
			Income:  s.money(f.Income),
			Expense: s.money(f.Expense),
			Net:     s.money(f.Net),
		})
	}
	return out
}

func (s *summaryService) categoryViews(buckets []domain.CategoryAmount) []dto.CategoryView {
	out := make([]dto.CategoryView, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.CategoryView{Category: b.Category, Amount: s.money(b.Amount)})
	}
	return out
}

func (s *summaryService) budgetViews(overview domain.BudgetOverview) dto.BudgetOverviewView {
	view := dto.BudgetOverviewView{
		Month:          overview.Month,
		Budgets:        make([]dto.BudgetStatusView, 0, len(overview.Budgets)),
		TotalBudgeted:  s.money(overview.TotalBudgeted),
		TotalSpent:     s.money(overview.TotalSpent),
		TotalRemaining: s.money(overview.TotalRemaining),
	}
	for _, b := range overview.Budgets {
		view.Budgets = append(view.Budgets, dto.BudgetStatusView{
			BudgetID:    b.BudgetID,
			Category:    b.Category,
			Color:       b.Color,
			Limit:       s.money(b.Limit),
			Spent:       s.money(b.Spent),
			Remaining:   s.money(b.Remaining),
			PercentUsed: b.PercentUsed,
			OverBudget:  b.OverBudget,
		})
	}
	return view
}

func (s *summaryService) money(amount decimal.Decimal) dto.MoneyView {
	return dto.MoneyView{
		Amount:    amount,
		Converted: s.currency.Convert(amount, domain.BaseCurrencyCode).Round(2),
		Formatted: s.currency.Format(amount),
	}
}

func (s *summaryService) loadTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for summary")
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return txns, nil
}
