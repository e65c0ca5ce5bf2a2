package action

import (
	"context"

	"bankbot-actions/model"
	"bankbot-actions/service"
)

// SessionStart populates the demo profile for the sender's session and
// hands control back to the dialogue engine. The population is
// idempotent, so reconnecting sessions are safe.
type SessionStart struct {
	seed service.ISeedService
}

func NewSessionStart(seed service.ISeedService) *SessionStart {
	return &SessionStart{seed: seed}
}

func (a *SessionStart) Name() string {
	return "action_session_start"
}

func (a *SessionStart) Run(ctx context.Context, dispatcher *CollectingDispatcher, tracker *model.Tracker, domain map[string]any) ([]model.Event, error) {
	if err := a.seed.PopulateProfile(tracker.SenderID); err != nil {
		return nil, err
	}

	return []model.Event{
		model.SessionStarted(),
		model.ActionExecuted("action_listen"),
	}, nil
}
