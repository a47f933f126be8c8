package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
)

type currencyRepository struct {
	currencies []domain.Currency
}

// NewCurrencyRepository serves the static currency table.
func NewCurrencyRepository() portsrepo.CurrencyReader {
	table := make([]domain.Currency, len(domain.Currencies))
	copy(table, domain.Currencies)
	return &currencyRepository{currencies: table}
}

func (r *currencyRepository) FindCurrencyByCode(_ context.Context, currencyCode string) (*domain.Currency, error) {
	for _, c := range r.currencies {
		if c.CurrencyCode == currencyCode {
			found := c
			return &found, nil
		}
	}
	return nil, fmt.Errorf("currency %s: %w", currencyCode, apperrors.ErrNotFound)
}

func (r *currencyRepository) ListCurrencies(_ context.Context) ([]domain.Currency, error) {
	out := make([]domain.Currency, len(r.currencies))
	copy(out, r.currencies)
	return out, nil
}
