package action

import (
	"context"
	"fmt"
	"strings"

	"bankbot-actions/model"
	"bankbot-actions/parsing"
	"bankbot-actions/service"
)

// ShowBalance tells the sender their ledger-derived account balance.
type ShowBalance struct {
	profile service.IProfileService
}

func NewShowBalance(profile service.IProfileService) *ShowBalance {
	return &ShowBalance{profile: profile}
}

func (a *ShowBalance) Name() string {
	return "action_show_balance"
}

func (a *ShowBalance) Run(ctx context.Context, dispatcher *CollectingDispatcher, tracker *model.Tracker, domain map[string]any) ([]model.Event, error) {
	balance, err := a.profile.AccountBalance(tracker.SenderID)
	if err != nil {
		return nil, err
	}
	currency, err := a.profile.Currency(tracker.SenderID)
	if err != nil {
		return nil, err
	}

	dispatcher.UtterResponse("utter_account_balance", map[string]any{
		"init_account_balance": fmt.Sprintf("%.2f", balance),
		"currency":             currency,
	})

	return formContinuation(tracker), nil
}

// ShowRecipients lists the recipient nicknames known to the sender.
type ShowRecipients struct {
	profile service.IProfileService
}

func NewShowRecipients(profile service.IProfileService) *ShowRecipients {
	return &ShowRecipients{profile: profile}
}

func (a *ShowRecipients) Name() string {
	return "action_show_recipients"
}

func (a *ShowRecipients) Run(ctx context.Context, dispatcher *CollectingDispatcher, tracker *model.Tracker, domain map[string]any) ([]model.Event, error) {
	recipients, err := a.profile.KnownRecipients(tracker.SenderID)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(recipients))
	for _, recipient := range recipients {
		lines = append(lines, fmt.Sprintf("- %s", titleCase(recipient)))
	}
	dispatcher.UtterResponse("utter_recipients", map[string]any{
		"formatted_recipients": "\n" + strings.Join(lines, "\n"),
	})

	return formContinuation(tracker), nil
}

// ShowTransactions summarizes the sender's transactions. The search mode
// comes from the slots: a "vendor_name" slot filters spending to that
// vendor, a truthy "deposit" slot switches to earnings, and duckling
// time entities bound the range.
type ShowTransactions struct {
	profile service.IProfileService
}

func NewShowTransactions(profile service.IProfileService) *ShowTransactions {
	return &ShowTransactions{profile: profile}
}

func (a *ShowTransactions) Name() string {
	return "action_show_transactions"
}

func (a *ShowTransactions) Run(ctx context.Context, dispatcher *CollectingDispatcher, tracker *model.Tracker, domain map[string]any) ([]model.Event, error) {
	search := service.TransactionSearch{
		Deposit: tracker.SlotBool("deposit"),
		Vendor:  tracker.SlotString("vendor_name"),
	}
	if start, end, ok := parsing.TimeInterval(tracker.LatestEntity("time")); ok {
		if !start.IsZero() {
			search.StartTime = &start
		}
		if !end.IsZero() {
			search.EndTime = &end
		}
	} else if at, ok := parsing.Time(tracker.LatestEntity("time")); ok {
		search.StartTime = &at
	}

	transactions, err := a.profile.SearchTransactions(tracker.SenderID, search)
	if err == service.ErrUnknownVendor {
		dispatcher.UtterResponse("utter_no_vendor", nil)
		return formContinuation(tracker), nil
	}
	if err != nil {
		return nil, err
	}

	var total float64
	for _, transaction := range transactions {
		total += transaction.Amount
	}
	dispatcher.UtterResponse("utter_searching_spend_transactions", map[string]any{
		"numtransacts": len(transactions),
		"total":        fmt.Sprintf("%.2f", total),
	})

	return formContinuation(tracker), nil
}
