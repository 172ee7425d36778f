package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/studydesk/studydesk/internal/api/response"
	"github.com/studydesk/studydesk/internal/domain"
	"github.com/studydesk/studydesk/internal/service"
)

var validate = validator.New()

// SessionHandler handles study session endpoints
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type createSessionRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
}

// Create handles POST /api/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, "title must be between 1 and 200 characters")
		return
	}

	session, err := h.sessions.Create(r.Context(), req.Title)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.Created(w, map[string]string{
		"id":    session.ID.Hex(),
		"title": session.Title,
	})
}

// List handles GET /api/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := queryLimit(r, service.DefaultSessionLimit)

	sessions, err := h.sessions.List(r.Context(), limit)
	if err != nil {
		serviceError(w, err)
		return
	}

	views := make([]domain.SessionView, 0, len(sessions))
	for i := range sessions {
		views = append(views, sessions[i].View())
	}
	response.OK(w, views)
}

// queryLimit reads the limit query parameter, falling back to def when it
// is absent or not an integer. Range clamping happens in the services.
func queryLimit(r *http.Request, def int) int {
	l := r.URL.Query().Get("limit")
	if l == "" {
		return def
	}
	v, err := strconv.Atoi(l)
	if err != nil {
		return def
	}
	return v
}

// serviceError maps service failures onto wire responses.
func serviceError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		response.BadRequest(w, verr.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		response.Unavailable(w, "database not configured")
	default:
		response.InternalError(w, "internal server error")
	}
}
