package memory

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
)

type transactionRepository struct {
	txns *collection[domain.Transaction]
}

// NewTransactionRepository creates an in-memory transaction store.
func NewTransactionRepository() portsrepo.TransactionRepositoryFacade {
	return &transactionRepository{
		txns: newCollection("transaction", func(t domain.Transaction) string { return t.TransactionID }),
	}
}

func (r *transactionRepository) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	return r.txns.get(transactionID)
}

func (r *transactionRepository) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	return r.txns.list(), nil
}

func (r *transactionRepository) SaveTransaction(_ context.Context, txn domain.Transaction, prepare func(*domain.Transaction) error) (*domain.Transaction, error) {
	return r.txns.insert(txn, prepare)
}

func (r *transactionRepository) UpdateTransaction(_ context.Context, transactionID string, mutate func(*domain.Transaction) error) (*domain.Transaction, error) {
	return r.txns.modify(transactionID, mutate)
}

func (r *transactionRepository) DeleteTransaction(_ context.Context, transactionID string) error {
	return r.txns.remove(transactionID)
}

func (r *transactionRepository) ClearAccountReference(_ context.Context, accountID string) (int, error) {
	if accountID == "" {
		return 0, nil
	}
	return r.txns.update(func(t *domain.Transaction) bool {
		if t.AccountID != accountID {
			return false
		}
		t.AccountID = ""
		return true
	}), nil
}
