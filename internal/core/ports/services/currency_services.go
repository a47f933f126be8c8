package services

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// SelectedCurrency returns the active display currency.
	SelectedCurrency() domain.Currency
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// SetSelectedCurrency replaces the active display currency.
	SetSelectedCurrency(ctx context.Context, currencyCode string) (*domain.Currency, error)
}

// CurrencyFormatterSvc converts and renders amounts recorded in the base currency.
type CurrencyFormatterSvc interface {
	// Convert re-expresses amount from fromCode into the selected currency.
	// An unknown fromCode is treated as rate 1.
	Convert(amount decimal.Decimal, fromCode string) decimal.Decimal

	// Format converts a base-currency amount and renders it with the selected symbol.
	Format(amount decimal.Decimal) string
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
	CurrencyFormatterSvc
}
