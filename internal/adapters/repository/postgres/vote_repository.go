package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/voteservice/internal/core/domain"
	"github.com/vncsmyrnk/voteservice/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

func (r *voteRepository) Save(ctx context.Context, vote *domain.Vote) error {
	query := `
		INSERT INTO votes (topic_voting_id, document, vote)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, vote.TopicVotingID, vote.Document, vote.Choice).Scan(&vote.ID, &vote.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}

func (r *voteRepository) CountByTopicAndChoice(ctx context.Context, topicVotingID uuid.UUID, choice bool) (int64, error) {
	query := `SELECT COUNT(*) FROM votes WHERE topic_voting_id = $1 AND vote = $2`
	var count int64
	if err := r.db.QueryRowContext(ctx, query, topicVotingID, choice).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}
