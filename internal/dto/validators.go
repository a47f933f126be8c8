package dto

import (
	"fmt"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding tags used by the request DTOs
// on gin's default validator. It must run before routes serve requests.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("currencycode", isKnownCurrencyCode)
}

// isKnownCurrencyCode accepts codes present in the static currency table.
func isKnownCurrencyCode(fl validator.FieldLevel) bool {
	_, ok := domain.LookupCurrency(fl.Field().String())
	return ok
}
