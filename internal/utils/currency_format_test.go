package utils_test

import (
	"testing"

	"github.com/SscSPs/finance_dashboard/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		amount string
		want   string
	}{
		{name: "whole amount", symbol: "$", amount: "100", want: "$100.00"},
		{name: "grouping", symbol: "$", amount: "1234567.891", want: "$1,234,567.89"},
		{name: "negative drops sign", symbol: "€", amount: "-85", want: "€85.00"},
		{name: "rounds half up", symbol: "₹", amount: "0.005", want: "₹0.01"},
		{name: "zero", symbol: "$", amount: "0", want: "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.FormatMoney(tt.symbol, decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewID(t *testing.T) {
	a := utils.NewID(utils.InvoiceIDPrefix)
	b := utils.NewID(utils.InvoiceIDPrefix)
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^INV-[0-9a-f-]{36}$`, a)
}
