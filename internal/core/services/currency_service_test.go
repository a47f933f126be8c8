package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/finance_dashboard/internal/adapters/memory"
	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo, "USD")
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Success() {
	ctx := context.Background()
	expected := &domain.Currency{CurrencyCode: "EUR"}
	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(expected, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "EUR")

	suite.Require().NoError(err)
	suite.Equal(expected, currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "NTF").Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "NTF")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Empty() {
	ctx := context.Background()
	var none []domain.Currency
	suite.mockRepo.On("ListCurrencies", ctx).Return(none, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Empty(currencies)
	suite.NotNil(currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, assert.AnError).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().Error(err)
	suite.Nil(currencies)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *CurrencyServiceTestSuite) TestSetSelectedCurrency_Success() {
	ctx := context.Background()
	eur, _ := domain.LookupCurrency("EUR")
	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(&eur, nil).Once()

	selected, err := suite.service.SetSelectedCurrency(ctx, "EUR")

	suite.Require().NoError(err)
	suite.Equal("EUR", selected.CurrencyCode)
	suite.Equal("EUR", suite.service.SelectedCurrency().CurrencyCode)
}

func (suite *CurrencyServiceTestSuite) TestSetSelectedCurrency_Unknown() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "JPY").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SetSelectedCurrency(ctx, "JPY")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("USD", suite.service.SelectedCurrency().CurrencyCode, "selection unchanged")
}

func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}

// --- Conversion and formatting against the static table ---

func newCurrencyService(t *testing.T, selected string) portssvc.CurrencySvcFacade {
	t.Helper()
	return services.NewCurrencyService(memory.NewCurrencyRepository(), selected)
}

func TestNewCurrencyService_UnknownDefaultFallsBackToUSD(t *testing.T) {
	svc := newCurrencyService(t, "GBP")
	assert.Equal(t, "USD", svc.SelectedCurrency().CurrencyCode)
}

func TestConvert_KnownRates(t *testing.T) {
	tests := []struct {
		selected string
		amount   string
		from     string
		want     string
	}{
		{selected: "EUR", amount: "100", from: "USD", want: "85"},
		{selected: "INR", amount: "100", from: "USD", want: "8312"},
		{selected: "USD", amount: "85", from: "EUR", want: "100"},
		{selected: "USD", amount: "100", from: "", want: "100"},
		{selected: "EUR", amount: "100", from: "GBP", want: "85"}, // unknown source treated as rate 1
	}

	for _, tt := range tests {
		t.Run(tt.selected+"<-"+tt.from, func(t *testing.T) {
			svc := newCurrencyService(t, tt.selected)
			got := svc.Convert(decimal.RequireFromString(tt.amount), tt.from)
			assert.True(t, got.Round(2).Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestConvert_RoundTripsForEveryCurrency(t *testing.T) {
	ctx := context.Background()
	amounts := []string{"0", "0.01", "12.34", "1000", "-250.75", "98765.43"}

	for _, c := range domain.Currencies {
		t.Run(c.CurrencyCode, func(t *testing.T) {
			svc := newCurrencyService(t, "USD")
			for _, a := range amounts {
				original := decimal.RequireFromString(a)

				_, err := svc.SetSelectedCurrency(ctx, c.CurrencyCode)
				assert.NoError(t, err)
				converted := svc.Convert(original, domain.BaseCurrencyCode)

				_, err = svc.SetSelectedCurrency(ctx, domain.BaseCurrencyCode)
				assert.NoError(t, err)
				back := svc.Convert(converted, c.CurrencyCode)

				assert.True(t, back.Round(2).Equal(original), "%s via %s came back as %s", a, c.CurrencyCode, back)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		selected string
		amount   string
		want     string
	}{
		{selected: "EUR", amount: "100", want: "€85.00"},
		{selected: "USD", amount: "-1250.30", want: "$1,250.30"},
		{selected: "INR", amount: "10", want: "₹831.20"},
		{selected: "USD", amount: "0", want: "$0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.selected+" "+tt.amount, func(t *testing.T) {
			svc := newCurrencyService(t, tt.selected)
			assert.Equal(t, tt.want, svc.Format(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestFormat_NeverNegative(t *testing.T) {
	for _, c := range domain.Currencies {
		svc := newCurrencyService(t, c.CurrencyCode)
		for _, a := range []string{"-0.01", "-1", "-99999.999", "-5420.50"} {
			out := svc.Format(decimal.RequireFromString(a))
			assert.NotContains(t, out, "-", "%s in %s", a, c.CurrencyCode)
			assert.Regexp(t, `\.\d{2}$`, out)
		}
	}
}
