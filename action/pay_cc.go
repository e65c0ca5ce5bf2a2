package action

import (
	"context"

	"bankbot-actions/model"
	"bankbot-actions/parsing"
	"bankbot-actions/service"
)

// payCCFormSlots are the slots the payment form collects; they are reset
// once the form concludes.
var payCCFormSlots = []string{ContinueFormSlot, "zz_confirm_form", "credit_card", "amount-of-money"}

// PayCC pays the amount collected by the payment form toward the chosen
// credit card, once the user has confirmed.
type PayCC struct {
	cards service.ICardService
}

func NewPayCC(cards service.ICardService) *PayCC {
	return &PayCC{cards: cards}
}

func (a *PayCC) Name() string {
	return "action_pay_cc"
}

func (a *PayCC) Run(ctx context.Context, dispatcher *CollectingDispatcher, tracker *model.Tracker, domain map[string]any) ([]model.Event, error) {
	events := make([]model.Event, 0, len(payCCFormSlots))
	for _, slot := range payCCFormSlots {
		events = append(events, model.SlotSet(slot, nil))
	}

	if tracker.SlotString("zz_confirm_form") != "yes" {
		dispatcher.UtterResponse("utter_cc_pay_cancelled", nil)
		return events, nil
	}

	cardName := tracker.SlotString("credit_card")
	amount, ok := tracker.SlotFloat("amount-of-money")
	if !ok {
		dispatcher.UtterResponse("utter_no_payment_amount", nil)
		return events, nil
	}

	err := a.cards.PayOffCreditCard(ctx, tracker.SenderID, cardName, amount)
	if err == service.ErrCardNotFound {
		dispatcher.UtterResponse("utter_no_creditcard", nil)
		return events, nil
	}
	if err != nil {
		return nil, err
	}

	dispatcher.UtterResponse("utter_cc_pay_scheduled", map[string]any{
		"credit_card": titleCase(cardName),
		"amount":      amount,
	})
	return events, nil
}

// ValidatePayCCForm validates the slots of the credit card payment form.
type ValidatePayCCForm struct {
	cards   service.ICardService
	profile service.IProfileService
}

func NewValidatePayCCForm(cards service.ICardService, profile service.IProfileService) *ValidatePayCCForm {
	return &ValidatePayCCForm{cards: cards, profile: profile}
}

func (a *ValidatePayCCForm) Name() string {
	return "validate_pay_cc_form"
}

func (a *ValidatePayCCForm) Run(ctx context.Context, dispatcher *CollectingDispatcher, tracker *model.Tracker, domain map[string]any) ([]model.Event, error) {
	validators := map[string]slotValidator{
		"credit_card": func(dispatcher *CollectingDispatcher, tracker *model.Tracker) []model.Event {
			return validateCreditCardSlot(ctx, a.cards, dispatcher, tracker)
		},
		"amount-of-money": a.validateAmount,
		"zz_confirm_form": a.validateConfirm,
	}
	order := []string{"credit_card", "amount-of-money", "zz_confirm_form"}
	return validateSlots(dispatcher, tracker, order, validators), nil
}

// validateAmount accepts a payment amount iff a duckling amount entity
// parses and the sender's account balance covers it.
func (a *ValidatePayCCForm) validateAmount(dispatcher *CollectingDispatcher, tracker *model.Tracker) []model.Event {
	reject := []model.Event{model.SlotSet("amount-of-money", nil)}

	entity := tracker.LatestEntity("amount-of-money")
	if entity == nil {
		entity = tracker.LatestEntity("number")
	}
	parsed, ok := parsing.Currency(entity)
	if !ok {
		dispatcher.UtterResponse("utter_no_payment_amount", nil)
		return reject
	}

	balance, err := a.profile.AccountBalance(tracker.SenderID)
	if err != nil || balance < parsed.Amount {
		dispatcher.UtterResponse("utter_insufficient_funds", nil)
		return reject
	}

	return []model.Event{
		model.SlotSet("amount-of-money", parsed.Amount),
		model.SlotSet("currency", parsed.Currency),
	}
}

func (a *ValidatePayCCForm) validateConfirm(dispatcher *CollectingDispatcher, tracker *model.Tracker) []model.Event {
	value := tracker.SlotString("zz_confirm_form")
	if value == "yes" || value == "no" {
		return []model.Event{model.SlotSet("zz_confirm_form", value)}
	}
	return []model.Event{model.SlotSet("zz_confirm_form", nil)}
}
