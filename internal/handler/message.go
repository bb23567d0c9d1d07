package handler

import (
	"net/http"

	"github.com/msomdec/social-media-api/internal/domain"
	"github.com/msomdec/social-media-api/internal/service"
)

// MessageHandler handles message HTTP requests.
type MessageHandler struct {
	messages *service.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messages *service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// HandleCreate posts a message on behalf of the account named in posted_by.
// POST /messages
func (h *MessageHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req MessageDTO
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	msg, err := h.messages.Post(r.Context(), req.toDomain())
	if err != nil {
		writeServiceError(w, r, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, toMessageDTO(msg))
}

// HandleList returns every message.
// GET /messages
func (h *MessageHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.messages.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toMessageDTOs(msgs))
}

// HandleGet returns one message, or 200 with an empty body when it does not exist.
// GET /messages/{message_id}
func (h *MessageHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "message_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid message id.")
		return
	}

	msg, found, err := h.messages.Lookup(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, http.StatusInternalServerError)
		return
	}
	if !found {
		w.WriteHeader(http.StatusOK)
		return
	}
	writeJSON(w, http.StatusOK, toMessageDTO(msg))
}

// HandleDelete removes a message and echoes it back. Deleting a missing
// message is not an error and yields 200 with an empty body.
// DELETE /messages/{message_id}
func (h *MessageHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "message_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid message id.")
		return
	}

	msg, found, err := h.messages.Lookup(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, http.StatusInternalServerError)
		return
	}
	if !found {
		w.WriteHeader(http.StatusOK)
		return
	}

	deleted, err := h.messages.Delete(r.Context(), *msg)
	if err != nil {
		writeServiceError(w, r, err, http.StatusInternalServerError)
		return
	}
	if !deleted {
		w.WriteHeader(http.StatusOK)
		return
	}
	writeJSON(w, http.StatusOK, toMessageDTO(msg))
}

// HandleUpdate replaces the text of a message.
// PATCH /messages/{message_id}
// Request: {"message_text":"..."}
func (h *MessageHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "message_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid message id.")
		return
	}

	var req MessageDTO
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	msg, err := h.messages.Update(r.Context(), domain.Message{ID: id, Text: req.Text})
	if err != nil {
		writeServiceError(w, r, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, toMessageDTO(msg))
}

// HandleListByAccount returns the messages posted by one account.
// GET /accounts/{account_id}/messages
func (h *MessageHandler) HandleListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "account_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid account id.")
		return
	}

	msgs, err := h.messages.GetByAccountID(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toMessageDTOs(msgs))
}
