package action

import "bankbot-actions/model"

// CollectingDispatcher collects the messages an action wants shown to
// the user; they are returned to the dialogue engine with the webhook
// response.
type CollectingDispatcher struct {
	Messages []model.BotMessage
}

func NewCollectingDispatcher() *CollectingDispatcher {
	return &CollectingDispatcher{}
}

// UtterResponse queues a named response template with interpolation
// parameters.
func (d *CollectingDispatcher) UtterResponse(response string, params map[string]any) {
	message := model.BotMessage{"response": response}
	for key, value := range params {
		message[key] = value
	}
	d.Messages = append(d.Messages, message)
}

// UtterMessage queues a literal text message.
func (d *CollectingDispatcher) UtterMessage(text string) {
	d.Messages = append(d.Messages, model.BotMessage{"text": text})
}
