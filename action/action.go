// Package action implements the custom actions the dialogue engine can
// invoke, one per user-facing capability. Actions are stateless: each
// run reads the tracker snapshot, may call into the profile services,
// and returns utterances through the dispatcher plus an ordered list of
// state-update events.
package action

import (
	"context"
	"sort"

	"bankbot-actions/model"
)

// Action is a single invokable custom action.
type Action interface {
	// Name is the unique identifier the dialogue engine uses to
	// address the action.
	Name() string
	Run(ctx context.Context, dispatcher *CollectingDispatcher, tracker *model.Tracker, domain map[string]any) ([]model.Event, error)
}

// Registry holds the registered actions by name.
type Registry struct {
	actions map[string]Action
}

func NewRegistry(actions ...Action) *Registry {
	r := &Registry{actions: make(map[string]Action, len(actions))}
	for _, a := range actions {
		r.actions[a.Name()] = a
	}
	return r
}

// Get looks up an action by name.
func (r *Registry) Get(name string) (Action, bool) {
	a, ok := r.actions[name]
	return a, ok
}

// Names lists the registered action names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
