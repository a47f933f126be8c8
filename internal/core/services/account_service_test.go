package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/core/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// UpdateAccount applies mutate to a copy of the account the expectation returns.
func (m *MockAccountRepository) UpdateAccount(ctx context.Context, accountID string, mutate func(*domain.Account) error) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	account := *args.Get(0).(*domain.Account)
	if err := mutate(&account); err != nil {
		return nil, err
	}
	return &account, args.Error(1)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// MockTransactionWriter records unlink calls made on account removal.
type MockTransactionWriter struct {
	mock.Mock
}

func (m *MockTransactionWriter) SaveTransaction(ctx context.Context, txn domain.Transaction, _ func(*domain.Transaction) error) (*domain.Transaction, error) {
	return &txn, m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionWriter) UpdateTransaction(ctx context.Context, transactionID string, _ func(*domain.Transaction) error) (*domain.Transaction, error) {
	return nil, m.Called(ctx, transactionID).Error(0)
}

func (m *MockTransactionWriter) DeleteTransaction(ctx context.Context, transactionID string) error {
	return m.Called(ctx, transactionID).Error(0)
}

func (m *MockTransactionWriter) ClearAccountReference(ctx context.Context, accountID string) (int, error) {
	args := m.Called(ctx, accountID)
	return args.Int(0), args.Error(1)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockAccountRepository
	mockTxnRepo *MockTransactionWriter
	fixedNow    time.Time
	service     portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.mockTxnRepo = new(MockTransactionWriter)
	suite.fixedNow = time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)
	suite.service = services.NewAccountService(
		suite.mockRepo,
		services.WithTransactionUnlinker(suite.mockTxnRepo),
		services.WithAccountClock(func() time.Time { return suite.fixedNow }),
	)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Primary Checking",
		AccountType: domain.Checking,
		Balance:     decimal.RequireFromString("5420.50"),
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == req.Name && a.CurrencyCode == "USD" && a.Balance.Equal(req.Balance)
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Regexp(`^ACC-`, account.AccountID)
	suite.Equal(domain.Checking, account.AccountType)
	suite.Equal(suite.fixedNow, account.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UniqueIDs() {
	ctx := context.Background()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		account, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{Name: "A", AccountType: domain.Savings})
		suite.Require().NoError(err)
		suite.False(seen[account.AccountID], "duplicate id %s", account.AccountID)
		seen[account.AccountID] = true
	}
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	_, err := suite.service.CreateAccount(context.Background(), dto.CreateAccountRequest{Name: "Loan", AccountType: "loan"})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(assert.AnError).Once()

	account, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{Name: "X", AccountType: domain.Checking})

	suite.Nil(account)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_MergesProvidedFields() {
	ctx := context.Background()
	existing := &domain.Account{
		AccountID:    "ACC-1",
		Name:         "Old",
		AccountType:  domain.Credit,
		Balance:      decimal.RequireFromString("-100"),
		CurrencyCode: "USD",
	}
	suite.mockRepo.On("UpdateAccount", ctx, "ACC-1").Return(existing, nil).Once()

	balance := decimal.RequireFromString("-250")
	updated, err := suite.service.UpdateAccount(ctx, "ACC-1", dto.UpdateAccountRequest{Balance: &balance})

	suite.Require().NoError(err)
	suite.Equal("Old", updated.Name)
	suite.Equal(domain.Credit, updated.AccountType)
	suite.True(updated.Balance.Equal(balance))
	suite.Equal(suite.fixedNow, updated.LastUpdatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("UpdateAccount", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	name := "New"
	_, err := suite.service.UpdateAccount(ctx, "missing", dto.UpdateAccountRequest{Name: &name})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestRemoveAccount_UnlinksTransactions() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteAccount", ctx, "ACC-1").Return(nil).Once()
	suite.mockTxnRepo.On("ClearAccountReference", ctx, "ACC-1").Return(2, nil).Once()

	suite.NoError(suite.service.RemoveAccount(ctx, "ACC-1"))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestRemoveAccount_AbsentIsNoOp() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteAccount", ctx, "nope").Return(apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.RemoveAccount(ctx, "nope"))
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ClearAccountReference", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestListAccounts_NilBecomesEmpty() {
	ctx := context.Background()
	suite.mockRepo.On("ListAccounts", ctx).Return(nil, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx)

	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
