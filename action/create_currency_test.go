package action

import (
	"context"
	"testing"

	"bankbot-actions/model"
	"bankbot-actions/service"

	"github.com/stretchr/testify/assert"
)

func TestCreateCurrencyAccount_Run(t *testing.T) {
	ctx := context.Background()
	tracker := func() *model.Tracker {
		return &model.Tracker{
			SenderID: "conv-1",
			Slots:    map[string]any{"credit_card": "iron bank", "currency": "EUR"},
		}
	}

	t.Run("success", func(t *testing.T) {
		mockCurrencies := new(mockCurrencyService)
		createAccount := NewCreateCurrencyAccount(mockCurrencies)
		dispatcher := NewCollectingDispatcher()

		mockCurrencies.On("CreateCurrencyAccount", "conv-1", "iron bank", "EUR").Return(nil).Once()

		events, err := createAccount.Run(ctx, dispatcher, tracker(), nil)

		assert.NoError(t, err)
		assert.Empty(t, events)
		assert.Equal(t, model.BotMessage{"text": "EUR for iron bank is added"}, dispatcher.Messages[0])
		mockCurrencies.AssertExpectations(t)
	})

	t.Run("unknown card", func(t *testing.T) {
		mockCurrencies := new(mockCurrencyService)
		createAccount := NewCreateCurrencyAccount(mockCurrencies)
		dispatcher := NewCollectingDispatcher()

		mockCurrencies.On("CreateCurrencyAccount", "conv-1", "iron bank", "EUR").
			Return(service.ErrCardNotFound).Once()

		_, err := createAccount.Run(ctx, dispatcher, tracker(), nil)

		assert.NoError(t, err)
		assert.Equal(t, "utter_no_creditcard", dispatcher.Messages[0]["response"])
	})

	t.Run("duplicate currency", func(t *testing.T) {
		mockCurrencies := new(mockCurrencyService)
		createAccount := NewCreateCurrencyAccount(mockCurrencies)
		dispatcher := NewCollectingDispatcher()

		mockCurrencies.On("CreateCurrencyAccount", "conv-1", "iron bank", "EUR").
			Return(service.ErrCurrencyExists).Once()

		_, err := createAccount.Run(ctx, dispatcher, tracker(), nil)

		assert.NoError(t, err)
		assert.Equal(t, "utter_curr_exist", dispatcher.Messages[0]["response"])
	})

	t.Run("resumes an interrupted form", func(t *testing.T) {
		mockCurrencies := new(mockCurrencyService)
		createAccount := NewCreateCurrencyAccount(mockCurrencies)
		dispatcher := NewCollectingDispatcher()

		tr := tracker()
		tr.ActiveLoop = model.ActiveLoop{Name: "curr_create_form"}

		mockCurrencies.On("CreateCurrencyAccount", "conv-1", "iron bank", "EUR").Return(nil).Once()

		events, err := createAccount.Run(ctx, dispatcher, tr, nil)

		assert.NoError(t, err)
		assert.Len(t, events, 3)
		assert.Equal(t, model.FollowupAction("curr_create_form"), events[2])
	})
}

func TestSessionStart_Run(t *testing.T) {
	mockSeed := new(mockSeedService)
	sessionStart := NewSessionStart(mockSeed)
	dispatcher := NewCollectingDispatcher()
	tracker := &model.Tracker{SenderID: "conv-1"}

	mockSeed.On("PopulateProfile", "conv-1").Return(nil).Once()

	events, err := sessionStart.Run(context.Background(), dispatcher, tracker, nil)

	assert.NoError(t, err)
	assert.Equal(t, []model.Event{
		model.SessionStarted(),
		model.ActionExecuted("action_listen"),
	}, events)
	assert.Empty(t, dispatcher.Messages)
	mockSeed.AssertExpectations(t)
}
