package model

// Event is a single state-update event consumed by the dialogue engine.
// Events are free-form JSON objects discriminated by the "event" key.
type Event map[string]any

// SlotSet sets (or clears, with a nil value) a named slot.
func SlotSet(name string, value any) Event {
	return Event{"event": "slot", "name": name, "value": value}
}

// UserUtteranceReverted discards the last user utterance from the
// conversation history.
func UserUtteranceReverted() Event {
	return Event{"event": "rewind"}
}

// FollowupAction makes the named action the next one to run.
func FollowupAction(name string) Event {
	return Event{"event": "followup", "name": name}
}

// ActionExecuted records that an action ran.
func ActionExecuted(name string) Event {
	return Event{"event": "action", "name": name}
}

// SessionStarted marks the beginning of a new conversation session.
func SessionStarted() Event {
	return Event{"event": "session_started"}
}

// Restarted resets the conversation.
func Restarted() Event {
	return Event{"event": "restart"}
}
