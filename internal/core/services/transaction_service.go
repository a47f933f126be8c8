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
	"github.com/SscSPs/finance_dashboard/internal/utils/pagination"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountReader
	now             func() time.Time
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithAccountReader enables checking AccountID references on write.
func WithAccountReader(repo portsrepo.AccountReader) TransactionServiceOption {
	return func(s *transactionService) {
		s.accountRepo = repo
	}
}

// WithTransactionClock overrides the time source used for audit fields.
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		transactionRepo: repo,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *transactionService) SuggestCategory(description string) string {
	return SuggestCategory(description)
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount == nil {
		return nil, fmt.Errorf("amount is required: %w", apperrors.ErrValidation)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = SuggestCategory(req.Description)
	}

	now := s.now()
	amount := *req.Amount
	txn, err := s.transactionRepo.SaveTransaction(ctx, domain.Transaction{
		TransactionID: utils.NewID(utils.TransactionIDPrefix),
		Date:          date,
		Description:   req.Description,
		Category:      category,
		Amount:        amount,
		Type:          domain.TypeForAmount(amount),
		Account:       req.Account,
		AccountID:     req.AccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}, func(txn *domain.Transaction) error {
		return s.linkAccount(ctx, txn, req.Account == "")
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save transaction")
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("category", txn.Category))
	return txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	all, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(params.Search))
	filtered := make([]domain.Transaction, 0, len(all))
	for _, txn := range all {
		if params.Category != "" && !strings.EqualFold(txn.Category, params.Category) {
			continue
		}
		if params.Type != "" && txn.Type != params.Type {
			continue
		}
		if params.Month != "" && txn.Month() != params.Month {
			continue
		}
		if params.Account != "" && txn.Account != params.Account && txn.AccountID != params.Account {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(txn.Description), search) {
			continue
		}
		filtered = append(filtered, txn)
	}

	page, next, err := pagination.Page(filtered, params.Limit, params.NextToken, transactionCursor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	s.LogDebug(ctx, "Transactions listed successfully", slog.Int("count", len(page)), slog.Int("matched", len(filtered)), slog.Int("total", len(all)))
	return &dto.ListTransactionsResponse{Transactions: page, NextToken: next}, nil
}

func transactionCursor(txn domain.Transaction) (time.Time, string) {
	return txn.CreatedAt, txn.TransactionID
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	var date time.Time
	if req.Date != nil {
		var err error
		if date, err = parseDate(*req.Date); err != nil {
			return nil, err
		}
	}

	now := s.now()
	txn, err := s.transactionRepo.UpdateTransaction(ctx, transactionID, func(txn *domain.Transaction) error {
		if req.Date != nil {
			txn.Date = date
		}
		if req.Description != nil {
			txn.Description = *req.Description
		}
		if req.Category != nil {
			txn.Category = *req.Category
		}
		if req.Account != nil {
			txn.Account = *req.Account
		}
		if req.AccountID != nil && *req.AccountID != txn.AccountID {
			txn.AccountID = *req.AccountID
			if err := s.linkAccount(ctx, txn, req.Account == nil); err != nil {
				return err
			}
		}
		if req.Amount != nil {
			txn.Amount = *req.Amount
			txn.Type = domain.TypeForAmount(txn.Amount)
		}
		txn.LastUpdatedAt = now
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated successfully", slog.String("transaction_id", transactionID))
	return txn, nil
}

// RemoveTransaction deletes the transaction if it exists. Removing an unknown id is a no-op.
func (s *transactionService) RemoveTransaction(ctx context.Context, transactionID string) error {
	err := s.transactionRepo.DeleteTransaction(ctx, transactionID)
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "Transaction already absent", slog.String("transaction_id", transactionID))
		return nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction removed successfully", slog.String("transaction_id", transactionID))
	return nil
}

// linkAccount checks txn.AccountID against the account store and, when
// takeName is set, copies the account's name into txn.Account. It runs under
// the transaction store's write lock so a concurrent account removal either
// happens first and fails the check, or unlinks txn afterwards.
func (s *transactionService) linkAccount(ctx context.Context, txn *domain.Transaction, takeName bool) error {
	if txn.AccountID == "" || s.accountRepo == nil {
		return nil
	}
	account, err := s.accountRepo.FindAccountByID(ctx, txn.AccountID)
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogWarn(ctx, "Transaction references unknown account", slog.String("account_id", txn.AccountID))
		return fmt.Errorf("account %s does not exist: %w", txn.AccountID, apperrors.ErrValidation)
	}
	if err != nil {
		return fmt.Errorf("failed to look up account: %w", err)
	}
	if takeName {
		txn.Account = account.Name
	}
	return nil
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, apperrors.ErrValidation)
	}
	return date, nil
}
