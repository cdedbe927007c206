package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/voteservice/internal/core/domain"
	"github.com/vncsmyrnk/voteservice/internal/core/ports"
)

type sessionService struct {
	topicService ports.TopicVotingService
	repo         ports.SessionRepository
	now          func() time.Time
}

func NewSessionService(topicService ports.TopicVotingService, repo ports.SessionRepository) ports.SessionService {
	return &sessionService{
		topicService: topicService,
		repo:         repo,
		now:          time.Now,
	}
}

func (s *sessionService) Open(ctx context.Context, input ports.OpenSessionInput) (*domain.Session, error) {
	if input.Duration < 0 || input.Duration > domain.MaxSessionDuration {
		return nil, domain.ErrInvalidDuration
	}
	duration := input.Duration
	if duration == 0 {
		duration = domain.DefaultSessionDuration
	}

	topic, err := s.topicService.FindByID(ctx, input.TopicVotingID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, domain.ErrTopicVotingNotFound
	}

	now := s.now()
	latest, err := s.repo.GetLatestByTopic(ctx, topic.ID)
	if err != nil {
		return nil, err
	}
	if latest != nil && latest.IsOpen(now) {
		return nil, domain.ErrSessionAlreadyOpen
	}

	session := &domain.Session{
		ID:            uuid.New(),
		TopicVotingID: topic.ID,
		OpenedAt:      now,
		ClosesAt:      now.Add(duration),
	}
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// IsOpen reports whether the most recent session of topic is open. A topic
// voting that never had a session is closed.
func (s *sessionService) IsOpen(ctx context.Context, topic *domain.TopicVoting) (bool, error) {
	latest, err := s.repo.GetLatestByTopic(ctx, topic.ID)
	if err != nil {
		return false, err
	}
	if latest == nil {
		return false, nil
	}
	return latest.IsOpen(s.now()), nil
}
