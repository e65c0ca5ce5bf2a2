package action

import (
	"context"
	"testing"

	"bankbot-actions/model"
	"bankbot-actions/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestShowBalance_Run(t *testing.T) {
	mockProfile := new(mockProfileService)
	showBalance := NewShowBalance(mockProfile)
	dispatcher := NewCollectingDispatcher()
	tracker := &model.Tracker{SenderID: "conv-1"}

	mockProfile.On("AccountBalance", "conv-1").Return(1749.5, nil).Once()
	mockProfile.On("Currency", "conv-1").Return("USD", nil).Once()

	events, err := showBalance.Run(context.Background(), dispatcher, tracker, nil)

	assert.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, model.BotMessage{
		"response":             "utter_account_balance",
		"init_account_balance": "1749.50",
		"currency":             "USD",
	}, dispatcher.Messages[0])
	mockProfile.AssertExpectations(t)
}

func TestShowRecipients_Run(t *testing.T) {
	mockProfile := new(mockProfileService)
	showRecipients := NewShowRecipients(mockProfile)
	dispatcher := NewCollectingDispatcher()
	tracker := &model.Tracker{SenderID: "conv-1"}

	mockProfile.On("KnownRecipients", "conv-1").
		Return([]string{"evan oslo", "katy parrow"}, nil).Once()

	events, err := showRecipients.Run(context.Background(), dispatcher, tracker, nil)

	assert.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, "utter_recipients", dispatcher.Messages[0]["response"])
	assert.Equal(t, "\n- Evan Oslo\n- Katy Parrow", dispatcher.Messages[0]["formatted_recipients"])
	mockProfile.AssertExpectations(t)
}

func TestShowTransactions_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("summarizes spending", func(t *testing.T) {
		mockProfile := new(mockProfileService)
		showTransactions := NewShowTransactions(mockProfile)
		dispatcher := NewCollectingDispatcher()
		tracker := &model.Tracker{SenderID: "conv-1"}

		mockProfile.On("SearchTransactions", "conv-1", service.TransactionSearch{}).
			Return([]*model.Transaction{{Amount: 25.5}, {Amount: 10}}, nil).Once()

		events, err := showTransactions.Run(ctx, dispatcher, tracker, nil)

		assert.NoError(t, err)
		assert.Empty(t, events)
		assert.Equal(t, model.BotMessage{
			"response":     "utter_searching_spend_transactions",
			"numtransacts": 2,
			"total":        "35.50",
		}, dispatcher.Messages[0])
		mockProfile.AssertExpectations(t)
	})

	t.Run("deposit and vendor slots select the mode", func(t *testing.T) {
		mockProfile := new(mockProfileService)
		showTransactions := NewShowTransactions(mockProfile)
		dispatcher := NewCollectingDispatcher()
		tracker := &model.Tracker{
			SenderID: "conv-1",
			Slots:    map[string]any{"deposit": true, "vendor_name": "starbucks"},
		}

		mockProfile.On("SearchTransactions", "conv-1", service.TransactionSearch{
			Deposit: true,
			Vendor:  "starbucks",
		}).Return([]*model.Transaction{}, nil).Once()

		_, err := showTransactions.Run(ctx, dispatcher, tracker, nil)

		assert.NoError(t, err)
		mockProfile.AssertExpectations(t)
	})

	t.Run("duckling interval bounds the search", func(t *testing.T) {
		mockProfile := new(mockProfileService)
		showTransactions := NewShowTransactions(mockProfile)
		dispatcher := NewCollectingDispatcher()
		tracker := &model.Tracker{
			SenderID: "conv-1",
			LatestMessage: model.Message{Entities: []model.Entity{{
				Entity: "time",
				Value: map[string]any{
					"from": map[string]any{"value": "2021-06-01T00:00:00Z"},
					"to":   map[string]any{"value": "2021-06-30T00:00:00Z"},
				},
			}}},
		}

		mockProfile.On("SearchTransactions", "conv-1", mock.MatchedBy(func(search service.TransactionSearch) bool {
			return search.StartTime != nil && search.StartTime.Day() == 1 &&
				search.EndTime != nil && search.EndTime.Day() == 30
		})).Return([]*model.Transaction{}, nil).Once()

		_, err := showTransactions.Run(ctx, dispatcher, tracker, nil)

		assert.NoError(t, err)
		mockProfile.AssertExpectations(t)
	})

	t.Run("unknown vendor utters a clarification", func(t *testing.T) {
		mockProfile := new(mockProfileService)
		showTransactions := NewShowTransactions(mockProfile)
		dispatcher := NewCollectingDispatcher()
		tracker := &model.Tracker{
			SenderID: "conv-1",
			Slots:    map[string]any{"vendor_name": "walmart"},
		}

		mockProfile.On("SearchTransactions", "conv-1", mock.Anything).
			Return(nil, service.ErrUnknownVendor).Once()

		events, err := showTransactions.Run(ctx, dispatcher, tracker, nil)

		assert.NoError(t, err)
		assert.Empty(t, events)
		assert.Equal(t, "utter_no_vendor", dispatcher.Messages[0]["response"])
	})
}
