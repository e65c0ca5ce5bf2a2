package router

import (
	"net/http"

	"bankbot-actions/handler"
)

func NewRouter(actionHandler *handler.ActionHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /actions", handler.ErrorHandlingMiddleware(actionHandler.ListActions))
	mux.Handle("POST /webhook", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(actionHandler.Webhook)))

	return mux
}
