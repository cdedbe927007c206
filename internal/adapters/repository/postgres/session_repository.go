package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/voteservice/internal/core/domain"
	"github.com/vncsmyrnk/voteservice/internal/core/ports"
)

type sessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) ports.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

func (r *sessionRepository) Save(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO sessions (id, topic_voting_id, opened_at, closes_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query, session.ID, session.TopicVotingID, session.OpenedAt, session.ClosesAt)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (r *sessionRepository) GetLatestByTopic(ctx context.Context, topicVotingID uuid.UUID) (*domain.Session, error) {
	query := `
		SELECT id, topic_voting_id, opened_at, closes_at, result_published_at
		FROM sessions
		WHERE topic_voting_id = $1
		ORDER BY opened_at DESC
		LIMIT 1
	`

	var session domain.Session
	err := r.db.QueryRowContext(ctx, query, topicVotingID).Scan(
		&session.ID, &session.TopicVotingID, &session.OpenedAt, &session.ClosesAt, &session.ResultPublishedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &session, nil
}

func (r *sessionRepository) ListClosedUnpublished(ctx context.Context, now time.Time) ([]*domain.Session, error) {
	query := `
		SELECT id, topic_voting_id, opened_at, closes_at, result_published_at
		FROM sessions
		WHERE closes_at <= $1 AND result_published_at IS NULL
		ORDER BY closes_at
	`
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list closed sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		var session domain.Session
		if err := rows.Scan(&session.ID, &session.TopicVotingID, &session.OpenedAt, &session.ClosesAt, &session.ResultPublishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, &session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sessions: %w", err)
	}
	return sessions, nil
}

func (r *sessionRepository) MarkResultPublished(ctx context.Context, sessionID uuid.UUID, at time.Time) error {
	query := `UPDATE sessions SET result_published_at = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, sessionID, at)
	if err != nil {
		return fmt.Errorf("failed to mark session %s as published: %w", sessionID, err)
	}
	return nil
}
