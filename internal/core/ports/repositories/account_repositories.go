package repositories

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts returns all accounts, most recently created first.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount stores a new account at the head of the collection.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount applies mutate to the stored account atomically and returns the
	// result. An error from mutate leaves the account unchanged.
	UpdateAccount(ctx context.Context, accountID string, mutate func(*domain.Account) error) (*domain.Account, error)

	// DeleteAccount removes an account. Returns apperrors.ErrNotFound if absent.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
