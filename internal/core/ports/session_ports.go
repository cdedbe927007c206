package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/voteservice/internal/core/domain"
)

type SessionRepository interface {
	Save(ctx context.Context, session *domain.Session) error
	// GetLatestByTopic returns (nil, nil) when the topic voting never had a session.
	GetLatestByTopic(ctx context.Context, topicVotingID uuid.UUID) (*domain.Session, error)
	ListClosedUnpublished(ctx context.Context, now time.Time) ([]*domain.Session, error)
	MarkResultPublished(ctx context.Context, sessionID uuid.UUID, at time.Time) error
}

type OpenSessionInput struct {
	TopicVotingID uuid.UUID
	Duration      time.Duration
}

type SessionService interface {
	Open(ctx context.Context, input OpenSessionInput) (*domain.Session, error)
	IsOpen(ctx context.Context, topic *domain.TopicVoting) (bool, error)
}
