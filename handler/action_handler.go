package handler

import (
	"encoding/json"
	"net/http"

	"bankbot-actions/action"
	"bankbot-actions/common"
	"bankbot-actions/logger"
	"bankbot-actions/model"

	"github.com/sirupsen/logrus"
)

// ActionHandler serves the action-server webhook the dialogue engine
// calls once per conversation turn.
type ActionHandler struct {
	registry *action.Registry
}

func NewActionHandler(registry *action.Registry) *ActionHandler {
	return &ActionHandler{registry: registry}
}

// Webhook runs the requested custom action and returns the collected
// events and bot messages.
func (h *ActionHandler) Webhook(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.WebhookRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	tracker := req.Tracker
	if tracker.SenderID == "" {
		tracker.SenderID = req.SenderID
	}

	log := logger.Log.WithFields(logrus.Fields{
		"action":    req.NextAction,
		"sender_id": tracker.SenderID,
	})
	log.Info("Action request received")

	act, ok := h.registry.Get(req.NextAction)
	if !ok {
		return common.NewAppError(http.StatusNotFound, "No registered action found for name '"+req.NextAction+"'", nil)
	}

	dispatcher := action.NewCollectingDispatcher()
	events, err := act.Run(r.Context(), dispatcher, &tracker, req.Domain)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Action '"+req.NextAction+"' failed", err)
	}
	if events == nil {
		events = []model.Event{}
	}
	responses := dispatcher.Messages
	if responses == nil {
		responses = []model.BotMessage{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(model.WebhookResponse{Events: events, Responses: responses})
	return nil
}

// ListActions lists the registered action names. The dialogue engine
// probes this during warm-up to validate its domain.
func (h *ActionHandler) ListActions(w http.ResponseWriter, r *http.Request) *common.AppError {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(h.registry.Names())
	return nil
}
