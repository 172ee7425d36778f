package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudySession is a named container for a sequence of messages.
type StudySession struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// SessionView is the wire representation of a StudySession. The raw
// ObjectID never leaves the process; it is rendered as a hex string.
type SessionView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// View converts a stored session into its wire representation.
func (s *StudySession) View() SessionView {
	return SessionView{
		ID:        s.ID.Hex(),
		Title:     s.Title,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// SessionRepository defines the interface for session storage
type SessionRepository interface {
	Create(ctx context.Context, session *StudySession) error
	List(ctx context.Context, limit int) ([]StudySession, error)
	// Touch sets the session's updated_at. The id is the wire-format hex
	// string; an id that is not a valid store identifier is an error.
	Touch(ctx context.Context, id string, at time.Time) error
}
