package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studydesk/studydesk/internal/api/response"
	"github.com/studydesk/studydesk/internal/domain"
	"github.com/studydesk/studydesk/internal/service"
)

// MessageHandler handles message endpoints
type MessageHandler struct {
	messages *service.MessageService
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messages *service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

type postMessageRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

// Post handles POST /api/sessions/{sessionID}/messages
func (h *MessageHandler) Post(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, "content must not be empty")
		return
	}

	messages, err := h.messages.Post(r.Context(), sessionID, req.Content)
	if err != nil {
		serviceError(w, err)
		return
	}

	views := make([]domain.MessageView, 0, len(messages))
	for i := range messages {
		views = append(views, messages[i].View())
	}
	response.Created(w, map[string]any{"messages": views})
}

// List handles GET /api/sessions/{sessionID}/messages
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	limit := queryLimit(r, service.DefaultMessageLimit)

	messages, err := h.messages.List(r.Context(), sessionID, limit)
	if err != nil {
		serviceError(w, err)
		return
	}

	views := make([]domain.MessageView, 0, len(messages))
	for i := range messages {
		views = append(views, messages[i].View())
	}
	response.OK(w, views)
}
