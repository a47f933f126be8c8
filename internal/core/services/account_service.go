package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/utils"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionWriter
	now             func() time.Time
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithTransactionUnlinker lets account removal clear AccountID on linked transactions.
func WithTransactionUnlinker(repo portsrepo.TransactionWriter) AccountServiceOption {
	return func(s *accountService) {
		s.transactionRepo = repo
	}
}

// WithAccountClock overrides the time source used for audit fields.
func WithAccountClock(now func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.now = now
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
		now:         time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("unknown account type %q: %w", req.AccountType, apperrors.ErrValidation)
	}

	currencyCode := strings.ToUpper(req.CurrencyCode)
	if currencyCode == "" {
		currencyCode = domain.BaseCurrencyCode
	}

	now := s.now()
	account := domain.Account{
		AccountID:    utils.NewID(utils.AccountIDPrefix),
		Name:         req.Name,
		AccountType:  req.AccountType,
		Balance:      req.Balance,
		CurrencyCode: currencyCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		// Not found is an expected outcome
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}

	s.LogDebug(ctx, "Accounts listed successfully", slog.Int("count", len(accounts)))
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	now := s.now()
	account, err := s.accountRepo.UpdateAccount(ctx, accountID, func(account *domain.Account) error {
		if req.Name != nil {
			account.Name = *req.Name
		}
		if req.Balance != nil {
			account.Balance = *req.Balance
		}
		if req.CurrencyCode != nil {
			account.CurrencyCode = strings.ToUpper(*req.CurrencyCode)
		}
		account.LastUpdatedAt = now
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully", slog.String("account_id", accountID))
	return account, nil
}

// RemoveAccount deletes the account if it exists. Removing an unknown id is a no-op.
func (s *accountService) RemoveAccount(ctx context.Context, accountID string) error {
	err := s.accountRepo.DeleteAccount(ctx, accountID)
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "Account already absent", slog.String("account_id", accountID))
		return nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to delete account: %w", err)
	}

	if s.transactionRepo != nil {
		unlinked, err := s.transactionRepo.ClearAccountReference(ctx, accountID)
		if err != nil {
			s.LogError(ctx, err, "Failed to unlink transactions from removed account", slog.String("account_id", accountID))
			return fmt.Errorf("failed to unlink transactions: %w", err)
		}
		if unlinked > 0 {
			s.LogInfo(ctx, "Unlinked transactions from removed account",
				slog.String("account_id", accountID),
				slog.Int("count", unlinked))
		}
	}

	s.LogInfo(ctx, "Account removed successfully", slog.String("account_id", accountID))
	return nil
}
