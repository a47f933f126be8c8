package dto

import (
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetSelectedCurrencyRequest selects the display currency.
type SetSelectedCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,currencycode"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	Rate         decimal.Decimal `json:"rate"`
	Selected     bool            `json:"selected"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency, selectedCode string) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: curr.CurrencyCode,
		Symbol:       curr.Symbol,
		Name:         curr.Name,
		Rate:         curr.Rate,
		Selected:     curr.CurrencyCode == selectedCode,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency, selectedCode string) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr, selectedCode)
	}
	return res
}

// ConvertParams are the query parameters of the convert endpoint.
// Amount is parsed by the handler so that decimal precision is kept.
type ConvertParams struct {
	Amount string `form:"amount" binding:"required"`
	From   string `form:"from"` // defaults to USD
}

// ConvertResponse is the result of converting an amount into the selected currency.
type ConvertResponse struct {
	Amount decimal.Decimal `json:"amount"`
	From   string          `json:"from"`
	To     string          `json:"to"`
	Result decimal.Decimal `json:"result"`
}

// FormatParams are the query parameters of the format endpoint.
type FormatParams struct {
	Amount string `form:"amount" binding:"required"`
}

// FormatResponse holds a USD amount rendered in the selected currency.
type FormatResponse struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Formatted    string          `json:"formatted"`
}
