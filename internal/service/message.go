package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/studydesk/studydesk/internal/domain"
)

const (
	// DefaultMessageLimit applies when a listing request names no limit.
	DefaultMessageLimit = 100
	maxMessageLimit     = 500
)

// GenerateFunc produces the assistant reply text for a user message.
type GenerateFunc func(topic string) string

// MessageService handles the message exchange within a session
type MessageService struct {
	messages domain.MessageRepository
	sessions domain.SessionRepository
	generate GenerateFunc
}

// NewMessageService creates a new message service. Nil repositories mean
// the store was never configured.
func NewMessageService(messages domain.MessageRepository, sessions domain.SessionRepository, generate GenerateFunc) *MessageService {
	return &MessageService{
		messages: messages,
		sessions: sessions,
		generate: generate,
	}
}

// Post stores the user message and its generated assistant reply as two
// independent inserts. There is no transaction across them: a crash after
// the first insert leaves an unanswered user message behind. The session
// reference is not validated; posting against an unknown session succeeds.
func (s *MessageService) Post(ctx context.Context, sessionID, content string) ([]domain.Message, error) {
	if s.messages == nil || s.sessions == nil {
		return nil, domain.ErrStoreUnavailable
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, &domain.ValidationError{
			Field:   "content",
			Message: "content must not be empty",
		}
	}

	now := time.Now().UTC()
	userMsg := domain.Message{
		SessionID: sessionID,
		Role:      domain.RoleUser,
		Content:   trimmed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.messages.Create(ctx, &userMsg); err != nil {
		return nil, fmt.Errorf("failed to create user message: %w", err)
	}

	// The generator receives the content as it arrived, not the trimmed
	// copy that was stored.
	assistantText := s.generate(content)

	now = time.Now().UTC()
	assistantMsg := domain.Message{
		SessionID: sessionID,
		Role:      domain.RoleAssistant,
		Content:   assistantText,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.messages.Create(ctx, &assistantMsg); err != nil {
		return nil, fmt.Errorf("failed to create assistant message: %w", err)
	}

	// Best-effort touch of the session's updated_at. Malformed ids,
	// missing sessions and store errors are all logged and discarded;
	// the posted messages stand regardless.
	if err := s.sessions.Touch(ctx, sessionID, time.Now().UTC()); err != nil {
		log.Debug().Err(err).Str("session_id", sessionID).Msg("session touch skipped")
	}

	return []domain.Message{userMsg, assistantMsg}, nil
}

// List returns messages for a session ordered by created_at ascending.
// The limit is clamped to [1, 500].
func (s *MessageService) List(ctx context.Context, sessionID string, limit int) ([]domain.Message, error) {
	if s.messages == nil {
		return nil, domain.ErrStoreUnavailable
	}

	messages, err := s.messages.ListBySession(ctx, sessionID, clampLimit(limit, maxMessageLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
