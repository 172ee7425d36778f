package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/studydesk/studydesk/internal/domain"
)

const (
	maxTitleLen = 200

	// DefaultSessionLimit applies when a listing request names no limit.
	DefaultSessionLimit = 20
	maxSessionLimit     = 100
)

// SessionService handles study session operations
type SessionService struct {
	sessions domain.SessionRepository
}

// NewSessionService creates a new session service. A nil repository means
// the store was never configured; every operation then fails fast with
// domain.ErrStoreUnavailable.
func NewSessionService(sessions domain.SessionRepository) *SessionService {
	return &SessionService{sessions: sessions}
}

// Create validates the title, stamps timestamps and stores the session.
func (s *SessionService) Create(ctx context.Context, title string) (*domain.StudySession, error) {
	if s.sessions == nil {
		return nil, domain.ErrStoreUnavailable
	}

	title = strings.TrimSpace(title)
	if n := utf8.RuneCountInString(title); n < 1 || n > maxTitleLen {
		return nil, &domain.ValidationError{
			Field:   "title",
			Message: "title must be between 1 and 200 characters",
		}
	}

	now := time.Now().UTC()
	session := &domain.StudySession{
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// List returns sessions ordered by updated_at descending. The limit is
// clamped to [1, 100].
func (s *SessionService) List(ctx context.Context, limit int) ([]domain.StudySession, error) {
	if s.sessions == nil {
		return nil, domain.ErrStoreUnavailable
	}

	sessions, err := s.sessions.List(ctx, clampLimit(limit, maxSessionLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

func clampLimit(limit, max int) int {
	if limit < 1 {
		return 1
	}
	if limit > max {
		return max
	}
	return limit
}
