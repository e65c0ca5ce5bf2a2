package action

import (
	"context"
	"fmt"
	"strings"

	"bankbot-actions/model"
	"bankbot-actions/service"
)

// ShowAccounts lists the credit card accounts of the sender.
type ShowAccounts struct {
	cards service.ICardService
}

func NewShowAccounts(cards service.ICardService) *ShowAccounts {
	return &ShowAccounts{cards: cards}
}

func (a *ShowAccounts) Name() string {
	return "action_show_accounts"
}

func (a *ShowAccounts) Run(ctx context.Context, dispatcher *CollectingDispatcher, tracker *model.Tracker, domain map[string]any) ([]model.Event, error) {
	names, err := a.cards.ListCreditCards(ctx, tracker.SenderID)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("- %s", titleCase(name)))
	}
	dispatcher.UtterResponse("utter_accounts", map[string]any{
		"formatted_accounts": "\n" + strings.Join(lines, "\n"),
	})

	return formContinuation(tracker), nil
}

// titleCase upper-cases the first letter of each word, matching how
// card names are shown to the user.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
