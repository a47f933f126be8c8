package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/utils"
	"github.com/shopspring/decimal"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyReader

	mu       sync.RWMutex
	selected domain.Currency
}

// NewCurrencyService creates the currency service with defaultCode selected.
// An unknown defaultCode falls back to the base currency.
func NewCurrencyService(currencyRepo portsrepo.CurrencyReader, defaultCode string) portssvc.CurrencySvcFacade {
	selected, ok := domain.LookupCurrency(defaultCode)
	if !ok {
		selected, _ = domain.LookupCurrency(domain.BaseCurrencyCode)
	}
	return &currencyService{
		currencyRepo: currencyRepo,
		selected:     selected,
	}
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *currencyService) SelectedCurrency() domain.Currency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

func (s *currencyService) SetSelectedCurrency(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		s.LogWarn(ctx, "Rejected unknown currency selection", slog.String("currency_code", currencyCode))
		return nil, fmt.Errorf("unsupported currency %q: %w", currencyCode, apperrors.ErrValidation)
	}

	s.mu.Lock()
	s.selected = *currency
	s.mu.Unlock()

	s.LogInfo(ctx, "Selected currency changed", slog.String("currency_code", currency.CurrencyCode))
	return currency, nil
}

// Convert computes (amount / fromRate) * toRate against the selected currency.
func (s *currencyService) Convert(amount decimal.Decimal, fromCode string) decimal.Decimal {
	return convert(amount, fromCode, s.SelectedCurrency())
}

func (s *currencyService) Format(amount decimal.Decimal) string {
	selected := s.SelectedCurrency()
	return utils.FormatMoney(selected.Symbol, convert(amount, domain.BaseCurrencyCode, selected))
}

func convert(amount decimal.Decimal, fromCode string, to domain.Currency) decimal.Decimal {
	if fromCode == "" {
		fromCode = domain.BaseCurrencyCode
	}
	fromRate := decimal.NewFromInt(1)
	if from, ok := domain.LookupCurrency(fromCode); ok {
		fromRate = from.Rate
	}
	return amount.DivRound(fromRate, 16).Mul(to.Rate)
}
