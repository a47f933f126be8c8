package repositories

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns all transactions, most recently created first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction stores txn after running prepare, if given, under the store's
	// write lock. An error from prepare aborts the insert.
	SaveTransaction(ctx context.Context, txn domain.Transaction, prepare func(*domain.Transaction) error) (*domain.Transaction, error)

	// UpdateTransaction applies mutate to the stored transaction under the same lock
	// ClearAccountReference takes, so an unlink cannot be overwritten by a stale copy.
	UpdateTransaction(ctx context.Context, transactionID string, mutate func(*domain.Transaction) error) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error

	// ClearAccountReference unsets AccountID on every transaction linked to accountID
	// and returns how many were changed.
	ClearAccountReference(ctx context.Context, accountID string) (int, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
