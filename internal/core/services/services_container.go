package services

import (
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency first; the summary service formats through it
	container.Currency = NewCurrencyService(repos.CurrencyRepo, cfg.DefaultCurrency)

	container.Account = NewAccountService(
		repos.AccountRepo,
		WithTransactionUnlinker(repos.TransactionRepo),
	)
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		WithAccountReader(repos.AccountRepo),
	)
	container.Invoice = NewInvoiceService(
		repos.InvoiceRepo,
		WithStrictTransitions(cfg.InvoiceStrictTransitions),
	)
	container.Report = NewReportService(repos.ReportRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo)
	container.Summary = NewSummaryService(repos, container.Currency)

	container.Assistant = NewAssistantService(AssistantConfig{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
		Timeout: cfg.AssistantTimeout,
	})

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade    = (*currencyService)(nil)
	_ portssvc.AccountSvcFacade     = (*accountService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.InvoiceSvcFacade     = (*invoiceService)(nil)
	_ portssvc.ReportSvcFacade      = (*reportService)(nil)
	_ portssvc.BudgetSvcFacade      = (*budgetService)(nil)
	_ portssvc.SummarySvc           = (*summaryService)(nil)
	_ portssvc.AssistantSvc         = (*assistantService)(nil)
)
