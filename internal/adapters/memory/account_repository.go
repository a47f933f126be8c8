package memory

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
)

type accountRepository struct {
	accounts *collection[domain.Account]
}

// NewAccountRepository creates an in-memory account store.
func NewAccountRepository() portsrepo.AccountRepositoryFacade {
	return &accountRepository{
		accounts: newCollection("account", func(a domain.Account) string { return a.AccountID }),
	}
}

func (r *accountRepository) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	return r.accounts.get(accountID)
}

func (r *accountRepository) ListAccounts(_ context.Context) ([]domain.Account, error) {
	return r.accounts.list(), nil
}

func (r *accountRepository) SaveAccount(_ context.Context, account domain.Account) error {
	return r.accounts.prepend(account)
}

func (r *accountRepository) UpdateAccount(_ context.Context, accountID string, mutate func(*domain.Account) error) (*domain.Account, error) {
	return r.accounts.modify(accountID, mutate)
}

func (r *accountRepository) DeleteAccount(_ context.Context, accountID string) error {
	return r.accounts.remove(accountID)
}
