package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/voteservice/internal/core/domain"
	"github.com/vncsmyrnk/voteservice/internal/core/ports"
)

type topicVotingRepository struct {
	db *sql.DB
}

func NewTopicVotingRepository(db *sql.DB) ports.TopicVotingRepository {
	return &topicVotingRepository{
		db: db,
	}
}

func (r *topicVotingRepository) Save(ctx context.Context, topic *domain.TopicVoting) error {
	query := `
		INSERT INTO topic_votings (id, description, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, topic.ID, topic.Description, topic.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert topic voting: %w", err)
	}
	return nil
}

func (r *topicVotingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TopicVoting, error) {
	query := `
		SELECT id, description, created_at
		FROM topic_votings
		WHERE id = $1
	`

	var topic domain.TopicVoting
	err := r.db.QueryRowContext(ctx, query, id).Scan(&topic.ID, &topic.Description, &topic.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get topic voting: %w", err)
	}

	return &topic, nil
}

func (r *topicVotingRepository) List(ctx context.Context, limit, offset int) ([]*domain.TopicVoting, error) {
	query := `
		SELECT id, description, created_at
		FROM topic_votings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list topic votings: %w", err)
	}
	defer rows.Close()

	topics := []*domain.TopicVoting{}
	for rows.Next() {
		var topic domain.TopicVoting
		if err := rows.Scan(&topic.ID, &topic.Description, &topic.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan topic voting: %w", err)
		}
		topics = append(topics, &topic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating topic votings: %w", err)
	}
	return topics, nil
}
