package action

import (
	"context"
	"fmt"
	"strings"

	"bankbot-actions/model"
	"bankbot-actions/service"
)

// ShowCurrencyAccounts lists the currency sub-accounts of the sender's
// credit cards with their balances.
type ShowCurrencyAccounts struct {
	currencies service.ICurrencyService
}

func NewShowCurrencyAccounts(currencies service.ICurrencyService) *ShowCurrencyAccounts {
	return &ShowCurrencyAccounts{currencies: currencies}
}

func (a *ShowCurrencyAccounts) Name() string {
	return "action_show_currency_accounts"
}

func (a *ShowCurrencyAccounts) Run(ctx context.Context, dispatcher *CollectingDispatcher, tracker *model.Tracker, domain map[string]any) ([]model.Event, error) {
	accounts, err := a.currencies.ListCurrencyAccounts(tracker.SenderID)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(accounts))
	for _, account := range accounts {
		lines = append(lines, fmt.Sprintf("Card:%s, currency: %s, balance: %v", account.CardName, account.Currency, account.Balance))
	}
	dispatcher.UtterResponse("utter_curr_accounts", map[string]any{
		"formatted_accounts": "\n" + strings.Join(lines, "\n"),
	})

	return formContinuation(tracker), nil
}

// ShowCurrencies lists the supported foreign currencies.
type ShowCurrencies struct {
	currencies service.ICurrencyService
}

func NewShowCurrencies(currencies service.ICurrencyService) *ShowCurrencies {
	return &ShowCurrencies{currencies: currencies}
}

func (a *ShowCurrencies) Name() string {
	return "action_show_currencies"
}

func (a *ShowCurrencies) Run(ctx context.Context, dispatcher *CollectingDispatcher, tracker *model.Tracker, domain map[string]any) ([]model.Event, error) {
	supported := a.currencies.SupportedCurrencies()

	lines := make([]string, 0, len(supported))
	for _, currency := range supported {
		lines = append(lines, fmt.Sprintf("%s - %s", currency.Name, currency.Display))
	}
	dispatcher.UtterResponse("utter_currencies", map[string]any{
		"formatted_accounts": "\n" + strings.Join(lines, "\n"),
	})

	return formContinuation(tracker), nil
}
