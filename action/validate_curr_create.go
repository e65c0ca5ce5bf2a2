package action

import (
	"context"
	"strings"

	"bankbot-actions/model"
	"bankbot-actions/parsing"
	"bankbot-actions/service"
)

// ValidateCurrCreateForm validates the slots of the currency account
// creation form: the card must belong to the sender, and the currency
// must parse, be supported, and not already exist on that card.
type ValidateCurrCreateForm struct {
	cards      service.ICardService
	currencies service.ICurrencyService
}

func NewValidateCurrCreateForm(cards service.ICardService, currencies service.ICurrencyService) *ValidateCurrCreateForm {
	return &ValidateCurrCreateForm{cards: cards, currencies: currencies}
}

func (a *ValidateCurrCreateForm) Name() string {
	return "validate_curr_create_form"
}

func (a *ValidateCurrCreateForm) Run(ctx context.Context, dispatcher *CollectingDispatcher, tracker *model.Tracker, domain map[string]any) ([]model.Event, error) {
	validators := map[string]slotValidator{
		"credit_card": a.validateCreditCard(ctx),
		"currency":    a.validateCurrency,
	}
	return validateSlots(dispatcher, tracker, []string{"credit_card", "currency"}, validators), nil
}

func (a *ValidateCurrCreateForm) validateCreditCard(ctx context.Context) slotValidator {
	return func(dispatcher *CollectingDispatcher, tracker *model.Tracker) []model.Event {
		return validateCreditCardSlot(ctx, a.cards, dispatcher, tracker)
	}
}

// validateCreditCardSlot accepts a card name iff the sender owns a card
// of that name, normalizing it to title case. Shared between the forms
// that collect a card.
func validateCreditCardSlot(ctx context.Context, cards service.ICardService, dispatcher *CollectingDispatcher, tracker *model.Tracker) []model.Event {
	value := tracker.SlotString("credit_card")

	names, err := cards.ListCreditCards(ctx, tracker.SenderID)
	if err == nil && value != "" {
		for _, name := range names {
			if name == strings.ToLower(value) {
				return []model.Event{model.SlotSet("credit_card", titleCase(value))}
			}
		}
	}

	dispatcher.UtterResponse("utter_no_creditcard", nil)
	return []model.Event{model.SlotSet("credit_card", nil)}
}

// validateCurrency runs the currency checks in order: unparseable
// entities are rejected silently, unsupported codes and duplicates with
// a clarifying utterance.
func (a *ValidateCurrCreateForm) validateCurrency(dispatcher *CollectingDispatcher, tracker *model.Tracker) []model.Event {
	reject := []model.Event{model.SlotSet("currency", nil)}

	parsed, ok := parsing.Currency(tracker.LatestEntity("currency"))
	if !ok {
		return reject
	}
	if !a.currencies.IsSupportedCode(parsed.Currency) {
		dispatcher.UtterMessage("I can't understand currency you entered")
		return reject
	}

	code := strings.ToUpper(parsed.Currency)
	cardName := tracker.SlotString("credit_card")
	existing, err := a.currencies.ListCurrencyAccounts(tracker.SenderID)
	if err != nil {
		dispatcher.UtterResponse("utter_no_creditcard", nil)
		return reject
	}
	for _, account := range existing {
		if strings.EqualFold(account.CardName, cardName) && account.Currency == code {
			dispatcher.UtterResponse("utter_curr_exist", nil)
			return reject
		}
	}

	return []model.Event{model.SlotSet("currency", code)}
}
