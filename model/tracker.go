package model

// WebhookRequest is the payload the dialogue engine POSTs once per
// conversation turn.
type WebhookRequest struct {
	NextAction string         `json:"next_action" validate:"required"`
	SenderID   string         `json:"sender_id"`
	Tracker    Tracker        `json:"tracker"`
	Domain     map[string]any `json:"domain"`
	Version    string         `json:"version"`
}

// WebhookResponse carries the state-update events and the collected bot
// messages back to the dialogue engine.
type WebhookResponse struct {
	Events    []Event      `json:"events"`
	Responses []BotMessage `json:"responses"`
}

// BotMessage is a single dispatcher message: either a named response
// template plus interpolation parameters, or a literal text message.
type BotMessage map[string]any

// Tracker is the conversation-state snapshot provided by the dialogue
// engine: slots, latest parsed message, and the active form, if any.
type Tracker struct {
	SenderID      string           `json:"sender_id"`
	Slots         map[string]any   `json:"slots"`
	LatestMessage Message          `json:"latest_message"`
	ActiveLoop    ActiveLoop       `json:"active_loop"`
	ActiveForm    ActiveLoop       `json:"active_form"`
	Events        []map[string]any `json:"events"`
}

// ActiveLoop names the multi-turn form currently collecting slots.
type ActiveLoop struct {
	Name string `json:"name"`
}

// Message is the latest user message with its parsed entities.
type Message struct {
	Text     string   `json:"text"`
	Intent   Intent   `json:"intent"`
	Entities []Entity `json:"entities"`
}

type Intent struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// Entity is a single extracted entity. Duckling-style extractors put the
// normalized value details into AdditionalInfo.
type Entity struct {
	Entity         string         `json:"entity"`
	Value          any            `json:"value"`
	AdditionalInfo map[string]any `json:"additional_info"`
}

// GetSlot returns the raw value of a slot, or nil when unset.
func (t *Tracker) GetSlot(name string) any {
	if t.Slots == nil {
		return nil
	}
	return t.Slots[name]
}

// SlotString returns a slot value as a string, or "" when the slot is
// unset or not a string.
func (t *Tracker) SlotString(name string) string {
	s, _ := t.GetSlot(name).(string)
	return s
}

// SlotFloat returns a slot value as a float64. JSON numbers decode to
// float64, so this covers numeric slots.
func (t *Tracker) SlotFloat(name string) (float64, bool) {
	f, ok := t.GetSlot(name).(float64)
	return f, ok
}

// SlotBool reports whether a slot holds a true value.
func (t *Tracker) SlotBool(name string) bool {
	b, _ := t.GetSlot(name).(bool)
	return b
}

// ActiveFormName returns the name of the active form, or "" when no form
// is running. Older engine versions send the form under "active_form".
func (t *Tracker) ActiveFormName() string {
	if t.ActiveLoop.Name != "" {
		return t.ActiveLoop.Name
	}
	return t.ActiveForm.Name
}

// LatestEntity returns the last entity of the given type from the latest
// message, or nil when none was extracted.
func (t *Tracker) LatestEntity(name string) *Entity {
	for i := len(t.LatestMessage.Entities) - 1; i >= 0; i-- {
		if t.LatestMessage.Entities[i].Entity == name {
			return &t.LatestMessage.Entities[i]
		}
	}
	return nil
}
