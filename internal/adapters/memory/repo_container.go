package memory

import (
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
)

// NewRepositoryProvider wires a fresh set of in-memory stores. State lives for
// the lifetime of the process.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     NewAccountRepository(),
		TransactionRepo: NewTransactionRepository(),
		InvoiceRepo:     NewInvoiceRepository(),
		ReportRepo:      NewReportRepository(),
		BudgetRepo:      NewBudgetRepository(),
		CurrencyRepo:    NewCurrencyRepository(),
	}
}
