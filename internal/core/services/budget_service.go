package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/utils"
)

// DefaultBudgetColor is used when a budget is created without a color.
const DefaultBudgetColor = "#8884d8"

type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
	now        func() time.Time
}

// NewBudgetService creates the budget service.
func NewBudgetService(repo portsrepo.BudgetRepositoryFacade) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo: repo,
		now:        time.Now,
	}
}

func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if !req.Limit.IsPositive() {
		return nil, fmt.Errorf("budget limit must be positive: %w", apperrors.ErrValidation)
	}
	category, err := budgetCategory(req.Category)
	if err != nil {
		return nil, err
	}

	color := req.Color
	if color == "" {
		color = DefaultBudgetColor
	}

	now := s.now()
	budget := domain.Budget{
		BudgetID: utils.NewID(utils.BudgetIDPrefix),
		Category: category,
		Limit:    req.Limit,
		Color:    color,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Budget category already taken", slog.String("category", category))
			return nil, fmt.Errorf("a budget for %q already exists: %w", category, err)
		}
		s.LogError(ctx, err, "Failed to save budget", slog.String("budget_id", budget.BudgetID))
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	s.LogInfo(ctx, "Budget created successfully", slog.String("budget_id", budget.BudgetID), slog.String("category", category))
	return &budget, nil
}

func (s *budgetService) GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find budget", slog.String("budget_id", budgetID))
		}
		return nil, err
	}
	return budget, nil
}

func (s *budgetService) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets")
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if budgets == nil {
		return []domain.Budget{}, nil
	}
	return budgets, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	var category string
	if req.Category != nil {
		var err error
		if category, err = budgetCategory(*req.Category); err != nil {
			return nil, err
		}
	}
	if req.Limit != nil && !req.Limit.IsPositive() {
		return nil, fmt.Errorf("budget limit must be positive: %w", apperrors.ErrValidation)
	}

	now := s.now()
	budget, err := s.budgetRepo.UpdateBudget(ctx, budgetID, func(budget *domain.Budget) error {
		if req.Category != nil {
			budget.Category = category
		}
		if req.Limit != nil {
			budget.Limit = *req.Limit
		}
		if req.Color != nil {
			budget.Color = *req.Color
		}
		budget.LastUpdatedAt = now
		return nil
	})
	switch {
	case errors.Is(err, apperrors.ErrDuplicate):
		s.LogWarn(ctx, "Budget category already taken", slog.String("category", category))
		return nil, fmt.Errorf("a budget for %q already exists: %w", category, err)
	case errors.Is(err, apperrors.ErrNotFound):
		return nil, err
	case err != nil:
		s.LogError(ctx, err, "Failed to update budget", slog.String("budget_id", budgetID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget updated successfully", slog.String("budget_id", budgetID))
	return budget, nil
}

// RemoveBudget deletes the budget if it exists. Removing an unknown id is a no-op.
func (s *budgetService) RemoveBudget(ctx context.Context, budgetID string) error {
	err := s.budgetRepo.DeleteBudget(ctx, budgetID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to delete budget", slog.String("budget_id", budgetID))
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	s.LogInfo(ctx, "Budget removed successfully", slog.String("budget_id", budgetID))
	return nil
}

// budgetCategory trims a category name and rejects blank ones.
func budgetCategory(raw string) (string, error) {
	category := strings.TrimSpace(raw)
	if category == "" {
		return "", fmt.Errorf("budget category must not be blank: %w", apperrors.ErrValidation)
	}
	return category, nil
}
