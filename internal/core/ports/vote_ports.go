package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/voteservice/internal/core/domain"
)

type VoteRepository interface {
	// Save inserts vote and fills in its ID and CreatedAt.
	Save(ctx context.Context, vote *domain.Vote) error
	CountByTopicAndChoice(ctx context.Context, topicVotingID uuid.UUID, choice bool) (int64, error)
}

type VoteInput struct {
	TopicVotingID uuid.UUID
	Document      string
	Choice        bool
}

type VoteService interface {
	CastVote(ctx context.Context, input VoteInput) (*domain.Vote, error)
	GetResult(ctx context.Context, topicVotingID uuid.UUID) (*domain.VoteResult, error)
}
