package action

import "bankbot-actions/model"

// ContinueFormSlot is the sentinel slot the forms use to re-prompt the
// user after an interruption.
const ContinueFormSlot = "AA_CONTINUE_FORM"

// formContinuation returns the event sequence that lets an off-topic
// action run in the middle of a form without losing the form's place:
// discard the just-processed user utterance, clear the re-prompt
// sentinel slot, and re-invoke the active form as the next action. The
// order matters; the dialogue engine applies the events as given.
func formContinuation(tracker *model.Tracker) []model.Event {
	activeForm := tracker.ActiveFormName()
	if activeForm == "" {
		return nil
	}
	return []model.Event{
		model.UserUtteranceReverted(),
		model.SlotSet(ContinueFormSlot, nil),
		model.FollowupAction(activeForm),
	}
}

// slotValidator validates one proposed slot value and returns the
// resulting events: an accepting SlotSet (possibly normalized) or a
// rejecting SlotSet with a nil value, usually paired with a clarifying
// utterance through the dispatcher.
type slotValidator func(dispatcher *CollectingDispatcher, tracker *model.Tracker) []model.Event

// validateSlots runs the validators whose slots carry a value in the
// tracker, in the given order, and concatenates their events.
func validateSlots(dispatcher *CollectingDispatcher, tracker *model.Tracker, order []string, validators map[string]slotValidator) []model.Event {
	events := []model.Event{}
	for _, slot := range order {
		if tracker.GetSlot(slot) == nil {
			continue
		}
		if validate, ok := validators[slot]; ok {
			events = append(events, validate(dispatcher, tracker)...)
		}
	}
	return events
}
