package service

import (
	"testing"

	"bankbot-actions/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func allGeneralAccountNames() []string {
	var names []string
	for _, group := range generalAccounts {
		names = append(names, group...)
	}
	return names
}

func TestSeedService_PopulateProfile_ExistingSessionIsNoOp(t *testing.T) {
	mockAccounts := new(mockAccountRepo)
	mockCards := new(mockCardRepo)
	mockTxns := new(mockTransactionRepo)
	mockRecipients := new(mockRecipientRepo)
	mockCurrencies := new(mockCurrencyRepo)
	seedService := NewSeedService(mockAccounts, mockCards, mockTxns, mockRecipients, mockCurrencies)

	mockAccounts.On("ListExistingHolderNames", mock.AnythingOfType("[]string")).
		Return(allGeneralAccountNames(), nil).Once()
	mockAccounts.On("SessionExists", "conv-1").Return(true, nil).Once()

	err := seedService.PopulateProfile("conv-1")

	assert.NoError(t, err)
	mockAccounts.AssertNotCalled(t, "Create", mock.Anything)
	mockTxns.AssertNotCalled(t, "InsertBatch", mock.Anything)
	mockCards.AssertNotCalled(t, "Create", mock.Anything)
	mockAccounts.AssertExpectations(t)
}

func TestSeedService_PopulateProfile_NewSession(t *testing.T) {
	mockAccounts := new(mockAccountRepo)
	mockCards := new(mockCardRepo)
	mockTxns := new(mockTransactionRepo)
	mockRecipients := new(mockRecipientRepo)
	mockCurrencies := new(mockCurrencyRepo)
	seedService := NewSeedService(mockAccounts, mockCards, mockTxns, mockRecipients, mockCurrencies)

	recipients := []*model.Account{
		{ID: 10, SessionID: "recipient_0", AccountHolderName: "katy parrow"},
		{ID: 11, SessionID: "recipient_1", AccountHolderName: "evan oslo"},
		{ID: 12, SessionID: "recipient_2", AccountHolderName: "william baker"},
	}
	vendors := []*model.Account{
		{ID: 20, SessionID: "vendor_0", AccountHolderName: "target", IsVendor: true},
	}
	depositors := []*model.Account{
		{ID: 30, SessionID: "depositor_0", AccountHolderName: "interest"},
		{ID: 31, SessionID: "depositor_1", AccountHolderName: "employer"},
	}

	mockAccounts.On("ListExistingHolderNames", mock.AnythingOfType("[]string")).
		Return(allGeneralAccountNames(), nil).Once()
	mockAccounts.On("SessionExists", "conv-1").Return(false, nil).Once()
	mockAccounts.On("Create", mock.MatchedBy(func(account *model.Account) bool {
		return account.SessionID == "conv-1" && account.Currency == "USD"
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*model.Account).ID = 1
	}).Return(nil).Once()

	mockAccounts.On("ListBySessionPrefix", "recipient_").Return(recipients, nil).Once()
	mockRecipients.On("Create", mock.MatchedBy(func(rel *model.RecipientRelationship) bool {
		return rel.AccountID == 1 && rel.RecipientAccountID >= 10
	})).Return(nil).Times(3)

	mockAccounts.On("ListBySessionPrefix", "vendor_").Return(vendors, nil).Once()
	mockAccounts.On("ListBySessionPrefix", "depositor_").Return(depositors, nil).Once()
	mockTxns.On("InsertBatch", mock.MatchedBy(func(batch []*model.Transaction) bool {
		// Every generated row must involve the session's account number.
		number := model.BankAccountNumber(1).String()
		for _, tr := range batch {
			if tr.FromAccountNumber != number && tr.ToAccountNumber != number {
				return false
			}
		}
		return len(batch) > 0
	})).Return(nil).Once()

	mockCards.On("Create", mock.MatchedBy(func(card *model.CreditCard) bool {
		return card.AccountID == 1 && card.CurrentBalance >= 200 && card.MinimumBalance >= 20
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*model.CreditCard).ID = 4
	}).Return(nil).Times(len(demoCreditCardNames))
	mockCurrencies.On("Create", mock.MatchedBy(func(sub *model.CurrencyAccount) bool {
		return sub.CardID == 4 && sub.Currency == "USD" && sub.Balance == 0
	})).Return(nil).Times(len(demoCreditCardNames))

	err := seedService.PopulateProfile("conv-1")

	assert.NoError(t, err)
	mockAccounts.AssertExpectations(t)
	mockRecipients.AssertExpectations(t)
	mockTxns.AssertExpectations(t)
	mockCards.AssertExpectations(t)
	mockCurrencies.AssertExpectations(t)
}

func TestSeedService_PopulateProfile_MissingGeneralAccounts(t *testing.T) {
	mockAccounts := new(mockAccountRepo)
	mockCards := new(mockCardRepo)
	mockTxns := new(mockTransactionRepo)
	mockRecipients := new(mockRecipientRepo)
	mockCurrencies := new(mockCurrencyRepo)
	seedService := NewSeedService(mockAccounts, mockCards, mockTxns, mockRecipients, mockCurrencies)

	// No general accounts exist yet; all of them get inserted.
	mockAccounts.On("ListExistingHolderNames", mock.AnythingOfType("[]string")).
		Return([]string{}, nil).Once()
	mockAccounts.On("Create", mock.MatchedBy(func(account *model.Account) bool {
		return account.AccountHolderName != "" && account.SessionID != "conv-1"
	})).Return(nil).Times(len(allGeneralAccountNames()))
	mockAccounts.On("SessionExists", "conv-1").Return(true, nil).Once()

	err := seedService.PopulateProfile("conv-1")

	assert.NoError(t, err)
	mockAccounts.AssertExpectations(t)
}

func TestRandAmount(t *testing.T) {
	for i := 0; i < 100; i++ {
		amount := randAmount(5, 50)
		assert.GreaterOrEqual(t, amount, 5.0)
		assert.LessOrEqual(t, amount, 50.0)
		// Rounded to cents.
		assert.InDelta(t, amount, float64(int(amount*100+0.5))/100, 1e-9)
	}
}
