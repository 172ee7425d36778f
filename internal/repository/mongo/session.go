package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/studydesk/studydesk/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sessionCollection = "studysession"

// SessionRepository implements domain.SessionRepository
type SessionRepository struct {
	coll *mongo.Collection
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{coll: db.Collection(sessionCollection)}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.StudySession) error {
	res, err := r.coll.InsertOne(ctx, session)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		session.ID = oid
	}
	return nil
}

// List returns up to limit sessions, most recently active first.
func (r *SessionRepository) List(ctx context.Context, limit int) ([]domain.StudySession, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer cur.Close(ctx)

	var sessions []domain.StudySession
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}

// Touch sets the session's updated_at. A matched count of zero is not an
// error; a session that was never created simply goes untouched.
func (r *SessionRepository) Touch(ctx context.Context, id string, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid session id %q: %w", id, err)
	}

	_, err = r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"updated_at": at}})
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}
