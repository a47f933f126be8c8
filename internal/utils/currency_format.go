package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders amount with the given symbol, en-US digit grouping and
// exactly two fraction digits. The sign is dropped.
// Example: FormatMoney("€", -1234.5) returns "€1,234.50".
func FormatMoney(symbol string, amount decimal.Decimal) string {
	rounded := amount.Abs().Round(2)
	return symbol + moneyPrinter.Sprintf("%.2f", rounded.InexactFloat64())
}
