package action

import (
	"context"
	"testing"

	"bankbot-actions/model"
	"bankbot-actions/service"

	"github.com/stretchr/testify/assert"
)

func TestShowAccounts_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("lists cards title-cased", func(t *testing.T) {
		mockCards := new(mockCardService)
		showAccounts := NewShowAccounts(mockCards)
		dispatcher := NewCollectingDispatcher()
		tracker := &model.Tracker{SenderID: "conv-1"}

		mockCards.On("ListCreditCards", ctx, "conv-1").
			Return([]string{"iron bank", "credit all"}, nil).Once()

		events, err := showAccounts.Run(ctx, dispatcher, tracker, nil)

		assert.NoError(t, err)
		assert.Empty(t, events)
		assert.Len(t, dispatcher.Messages, 1)
		assert.Equal(t, "utter_accounts", dispatcher.Messages[0]["response"])
		assert.Equal(t, "\n- Iron Bank\n- Credit All", dispatcher.Messages[0]["formatted_accounts"])
		mockCards.AssertExpectations(t)
	})

	t.Run("resumes an interrupted form", func(t *testing.T) {
		mockCards := new(mockCardService)
		showAccounts := NewShowAccounts(mockCards)
		dispatcher := NewCollectingDispatcher()
		tracker := &model.Tracker{
			SenderID:   "conv-1",
			ActiveLoop: model.ActiveLoop{Name: "pay_cc_form"},
		}

		mockCards.On("ListCreditCards", ctx, "conv-1").Return([]string{"iron bank"}, nil).Once()

		events, err := showAccounts.Run(ctx, dispatcher, tracker, nil)

		assert.NoError(t, err)
		assert.Equal(t, []model.Event{
			model.UserUtteranceReverted(),
			model.SlotSet(ContinueFormSlot, nil),
			model.FollowupAction("pay_cc_form"),
		}, events)
	})
}

func TestShowCurrencyAccounts_Run(t *testing.T) {
	mockCurrencies := new(mockCurrencyService)
	showCurrencyAccounts := NewShowCurrencyAccounts(mockCurrencies)
	dispatcher := NewCollectingDispatcher()
	tracker := &model.Tracker{SenderID: "conv-1"}

	mockCurrencies.On("ListCurrencyAccounts", "conv-1").Return([]model.CurrencyAccountInfo{
		{CardName: "iron bank", Currency: "USD", Balance: 0},
		{CardName: "iron bank", Currency: "EUR", Balance: 12.5},
	}, nil).Once()

	events, err := showCurrencyAccounts.Run(context.Background(), dispatcher, tracker, nil)

	assert.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, "utter_curr_accounts", dispatcher.Messages[0]["response"])
	assert.Equal(t,
		"\nCard:iron bank, currency: USD, balance: 0\nCard:iron bank, currency: EUR, balance: 12.5",
		dispatcher.Messages[0]["formatted_accounts"])
	mockCurrencies.AssertExpectations(t)
}

func TestShowCurrencies_Run(t *testing.T) {
	mockCurrencies := new(mockCurrencyService)
	showCurrencies := NewShowCurrencies(mockCurrencies)
	dispatcher := NewCollectingDispatcher()

	mockCurrencies.On("SupportedCurrencies").Return([]service.SupportedCurrency{
		{Name: "Euro", Display: "EUR(€)"},
		{Name: "US dollar", Display: "USD($)"},
	}).Once()

	events, err := showCurrencies.Run(context.Background(), dispatcher, &model.Tracker{SenderID: "conv-1"}, nil)

	assert.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, "\nEuro - EUR(€)\nUS dollar - USD($)", dispatcher.Messages[0]["formatted_accounts"])
}
