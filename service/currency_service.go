package service

import (
	"errors"
	"strings"

	"bankbot-actions/model"
	"bankbot-actions/repository"
)

var ErrCurrencyExists = errors.New("currency account already exists for this card")

// SupportedCurrency is one entry of the fixed foreign-currency catalogue.
type SupportedCurrency struct {
	Name    string
	Display string
}

var supportedCurrencies = []SupportedCurrency{
	{Name: "Yuan", Display: "CNY(¥)"},
	{Name: "Pound", Display: "GBP(£)"},
	{Name: "Euro", Display: "EUR(€)"},
	{Name: "US dollar", Display: "USD($)"},
}

var supportedCurrencyCodes = map[string]bool{
	"cny": true,
	"gbp": true,
	"eur": true,
	"usd": true,
}

// ICurrencyService exposes the currency sub-account operations used by
// the action handlers.
type ICurrencyService interface {
	SupportedCurrencies() []SupportedCurrency
	IsSupportedCode(code string) bool
	ListCurrencyAccounts(sessionID string) ([]model.CurrencyAccountInfo, error)
	CreateCurrencyAccount(sessionID, cardName, currency string) error
}

type CurrencyService struct {
	accounts   repository.IAccountRepository
	cards      repository.ICreditCardRepository
	currencies repository.ICurrencyAccountRepository
}

func NewCurrencyService(
	accounts repository.IAccountRepository,
	cards repository.ICreditCardRepository,
	currencies repository.ICurrencyAccountRepository,
) *CurrencyService {
	return &CurrencyService{
		accounts:   accounts,
		cards:      cards,
		currencies: currencies,
	}
}

// SupportedCurrencies returns the fixed catalogue of foreign currencies.
func (s *CurrencyService) SupportedCurrencies() []SupportedCurrency {
	return supportedCurrencies
}

// IsSupportedCode reports whether a currency code is in the supported set.
func (s *CurrencyService) IsSupportedCode(code string) bool {
	return supportedCurrencyCodes[strings.ToLower(code)]
}

// ListCurrencyAccounts lists (card name, currency, balance) for every
// currency sub-account of a session's cards.
func (s *CurrencyService) ListCurrencyAccounts(sessionID string) ([]model.CurrencyAccountInfo, error) {
	account, err := s.accounts.GetOrCreateBySessionID(sessionID)
	if err != nil {
		return nil, err
	}
	cards, err := s.cards.ListByAccountID(account.ID)
	if err != nil {
		return nil, err
	}

	var infos []model.CurrencyAccountInfo
	for _, card := range cards {
		subAccounts, err := s.currencies.ListByCardID(card.ID)
		if err != nil {
			return nil, err
		}
		for _, sub := range subAccounts {
			infos = append(infos, model.CurrencyAccountInfo{
				CardName: card.CreditCardName,
				Currency: sub.Currency,
				Balance:  sub.Balance,
			})
		}
	}
	return infos, nil
}

// CreateCurrencyAccount inserts a zero-balance sub-account in the
// requested currency under the named card. Duplicate currencies per card
// are rejected.
func (s *CurrencyService) CreateCurrencyAccount(sessionID, cardName, currency string) error {
	account, err := s.accounts.GetOrCreateBySessionID(sessionID)
	if err != nil {
		return err
	}
	card, err := s.cards.GetByName(account.ID, cardName)
	if err == repository.ErrNotFound {
		return ErrCardNotFound
	}
	if err != nil {
		return err
	}

	exists, err := s.currencies.ExistsForCard(card.ID, currency)
	if err != nil {
		return err
	}
	if exists {
		return ErrCurrencyExists
	}

	return s.currencies.Create(&model.CurrencyAccount{
		CardID:   card.ID,
		Currency: strings.ToUpper(currency),
	})
}
