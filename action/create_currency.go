package action

import (
	"context"
	"fmt"

	"bankbot-actions/model"
	"bankbot-actions/service"
)

// CreateCurrencyAccount creates a currency sub-account under the credit
// card named in the "credit_card" slot, in the currency of the
// "currency" slot.
type CreateCurrencyAccount struct {
	currencies service.ICurrencyService
}

func NewCreateCurrencyAccount(currencies service.ICurrencyService) *CreateCurrencyAccount {
	return &CreateCurrencyAccount{currencies: currencies}
}

func (a *CreateCurrencyAccount) Name() string {
	return "action_create_curr_acc"
}

func (a *CreateCurrencyAccount) Run(ctx context.Context, dispatcher *CollectingDispatcher, tracker *model.Tracker, domain map[string]any) ([]model.Event, error) {
	cardName := tracker.SlotString("credit_card")
	currency := tracker.SlotString("currency")

	err := a.currencies.CreateCurrencyAccount(tracker.SenderID, cardName, currency)
	switch err {
	case nil:
		dispatcher.UtterMessage(fmt.Sprintf("%s for %s is added", currency, cardName))
	case service.ErrCardNotFound:
		dispatcher.UtterResponse("utter_no_creditcard", nil)
	case service.ErrCurrencyExists:
		dispatcher.UtterResponse("utter_curr_exist", nil)
	default:
		return nil, err
	}

	return formContinuation(tracker), nil
}
