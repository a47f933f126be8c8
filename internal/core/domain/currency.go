package domain

import "github.com/shopspring/decimal"

// BaseCurrencyCode is the currency all raw amounts are recorded in.
const BaseCurrencyCode = "USD"

// Currency represents a supported display currency.
type Currency struct {
	CurrencyCode string          `json:"currencyCode"` // e.g., "USD"
	Symbol       string          `json:"symbol"`       // e.g., "$"
	Name         string          `json:"name"`         // e.g., "US Dollar"
	Rate         decimal.Decimal `json:"rate"`         // units per 1 USD
}

// Currencies is the static rate table. Rates are not refreshed.
var Currencies = []Currency{
	{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Rate: decimal.NewFromInt(1)},
	{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Rate: decimal.RequireFromString("0.85")},
	{CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee", Rate: decimal.RequireFromString("83.12")},
}

// LookupCurrency returns the table entry for code.
func LookupCurrency(code string) (Currency, bool) {
	for _, c := range Currencies {
		if c.CurrencyCode == code {
			return c, true
		}
	}
	return Currency{}, false
}

// ToBase converts amount recorded in code into the base currency. Unknown
// codes are treated as already in the base currency.
func ToBase(amount decimal.Decimal, code string) decimal.Decimal {
	c, ok := LookupCurrency(code)
	if !ok || !c.Rate.IsPositive() {
		return amount
	}
	return amount.DivRound(c.Rate, 16)
}
