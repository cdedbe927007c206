package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/voteservice/internal/core/domain"
)

type TopicVotingRepository interface {
	Save(ctx context.Context, topic *domain.TopicVoting) error
	// GetByID returns (nil, nil) when no topic voting has the given id.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TopicVoting, error)
	List(ctx context.Context, limit, offset int) ([]*domain.TopicVoting, error)
}

type CreateTopicVotingInput struct {
	Description string
}

type TopicVotingService interface {
	Create(ctx context.Context, input CreateTopicVotingInput) (*domain.TopicVoting, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.TopicVoting, error)
	List(ctx context.Context, page int) ([]*domain.TopicVoting, error)
}
