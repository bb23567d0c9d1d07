package handler

import (
	"net/http"

	"github.com/msomdec/social-media-api/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, accounts *service.AccountService, messages *service.MessageService, limiter *service.LoginLimiter) {
	accountHandler := NewAccountHandler(accounts)
	messageHandler := NewMessageHandler(messages)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /register", accountHandler.HandleRegister)
	mux.Handle("POST /login", RateLimit(limiter, http.HandlerFunc(accountHandler.HandleLogin)))

	mux.HandleFunc("POST /messages", messageHandler.HandleCreate)
	mux.HandleFunc("GET /messages", messageHandler.HandleList)
	mux.HandleFunc("GET /messages/{message_id}", messageHandler.HandleGet)
	mux.HandleFunc("DELETE /messages/{message_id}", messageHandler.HandleDelete)
	mux.HandleFunc("PATCH /messages/{message_id}", messageHandler.HandleUpdate)
	mux.HandleFunc("GET /accounts/{account_id}/messages", messageHandler.HandleListByAccount)
}
