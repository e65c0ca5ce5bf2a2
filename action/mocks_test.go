package action

import (
	"context"
	"time"

	"bankbot-actions/model"
	"bankbot-actions/service"

	"github.com/stretchr/testify/mock"
)

// mockCardService is a mock for service.ICardService.
type mockCardService struct{ mock.Mock }

func (m *mockCardService) ListCreditCards(ctx context.Context, sessionID string) ([]string, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockCardService) GetCreditCard(sessionID, name string) (*model.CreditCard, error) {
	args := m.Called(sessionID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CreditCard), args.Error(1)
}

func (m *mockCardService) CreditCardBalance(sessionID, name, balanceType string) (float64, error) {
	args := m.Called(sessionID, name, balanceType)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockCardService) ListBalanceTypes() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *mockCardService) PayOffCreditCard(ctx context.Context, sessionID, name string, amount float64) error {
	args := m.Called(ctx, sessionID, name, amount)
	return args.Error(0)
}

// mockProfileService is a mock for service.IProfileService.
type mockProfileService struct{ mock.Mock }

func (m *mockProfileService) ResolveAccount(sessionID string) (*model.Account, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockProfileService) AccountBalance(sessionID string) (float64, error) {
	args := m.Called(sessionID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockProfileService) Currency(sessionID string) (string, error) {
	args := m.Called(sessionID)
	return args.String(0), args.Error(1)
}

func (m *mockProfileService) SearchTransactions(sessionID string, search service.TransactionSearch) ([]*model.Transaction, error) {
	args := m.Called(sessionID, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Transaction), args.Error(1)
}

func (m *mockProfileService) KnownRecipients(sessionID string) ([]string, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockProfileService) RecipientByName(sessionID, nickname string) (*model.Account, error) {
	args := m.Called(sessionID, nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockProfileService) ListVendors() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockProfileService) AddVendor(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *mockProfileService) RecordOfflineTransaction(sessionID, toAccountName string, at time.Time, amount float64) error {
	args := m.Called(sessionID, toAccountName, at, amount)
	return args.Error(0)
}

// mockCurrencyService is a mock for service.ICurrencyService.
type mockCurrencyService struct{ mock.Mock }

func (m *mockCurrencyService) SupportedCurrencies() []service.SupportedCurrency {
	args := m.Called()
	return args.Get(0).([]service.SupportedCurrency)
}

func (m *mockCurrencyService) IsSupportedCode(code string) bool {
	args := m.Called(code)
	return args.Bool(0)
}

func (m *mockCurrencyService) ListCurrencyAccounts(sessionID string) ([]model.CurrencyAccountInfo, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CurrencyAccountInfo), args.Error(1)
}

func (m *mockCurrencyService) CreateCurrencyAccount(sessionID, cardName, currency string) error {
	args := m.Called(sessionID, cardName, currency)
	return args.Error(0)
}

// mockSeedService is a mock for service.ISeedService.
type mockSeedService struct{ mock.Mock }

func (m *mockSeedService) PopulateProfile(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}
