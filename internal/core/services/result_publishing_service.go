package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/voteservice/internal/core/domain"
	"github.com/vncsmyrnk/voteservice/internal/core/ports"
	"go.uber.org/zap"
)

type resultPublishingService struct {
	topicService ports.TopicVotingService
	sessionRepo  ports.SessionRepository
	voteRepo     ports.VoteRepository
	publisher    ports.ResultPublisher
	logger       *zap.Logger
	now          func() time.Time
}

func NewResultPublishingService(
	topicService ports.TopicVotingService,
	sessionRepo ports.SessionRepository,
	voteRepo ports.VoteRepository,
	publisher ports.ResultPublisher,
	logger *zap.Logger,
) ports.ResultPublishingService {
	return &resultPublishingService{
		topicService: topicService,
		sessionRepo:  sessionRepo,
		voteRepo:     voteRepo,
		publisher:    publisher,
		logger:       logger,
		now:          time.Now,
	}
}

// PublishClosedSessions publishes the tally of every topic voting with a
// session that closed and was not published yet. Tallies are cumulative over
// the topic voting, so a topic with several pending sessions is published once
// and all of its sessions are marked. Topics are handled concurrently; the
// first failure is returned once all of them finish.
func (s *resultPublishingService) PublishClosedSessions(ctx context.Context) error {
	now := s.now()
	sessions, err := s.sessionRepo.ListClosedUnpublished(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to fetch closed sessions: %w", err)
	}

	var topicIDs []uuid.UUID
	byTopic := make(map[uuid.UUID][]*domain.Session)
	for _, session := range sessions {
		if _, ok := byTopic[session.TopicVotingID]; !ok {
			topicIDs = append(topicIDs, session.TopicVotingID)
		}
		byTopic[session.TopicVotingID] = append(byTopic[session.TopicVotingID], session)
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(topicIDs))

	for _, topicID := range topicIDs {
		wg.Add(1)
		go func(topicID uuid.UUID, sessions []*domain.Session) {
			defer wg.Done()
			if err := s.publish(ctx, topicID, sessions, now); err != nil {
				errChan <- fmt.Errorf("failed to publish topic voting %s: %w", topicID, err)
			}
		}(topicID, byTopic[topicID])
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *resultPublishingService) publish(ctx context.Context, topicID uuid.UUID, sessions []*domain.Session, now time.Time) error {
	topic, err := s.topicService.FindByID(ctx, topicID)
	if err != nil {
		return err
	}
	if topic == nil {
		return domain.ErrTopicVotingNotFound
	}

	result, err := s.tally(ctx, topic)
	if err != nil {
		return err
	}

	if err := s.publisher.Publish(ctx, result); err != nil {
		return err
	}

	for _, session := range sessions {
		if err := s.sessionRepo.MarkResultPublished(ctx, session.ID, now); err != nil {
			return err
		}
	}

	s.logger.Info("published voting result",
		zap.Stringer("topic_voting_id", topic.ID),
		zap.Int("sessions", len(sessions)),
		zap.Int64("count_yes", result.CountYes),
		zap.Int64("count_no", result.CountNo),
	)
	return nil
}

func (s *resultPublishingService) tally(ctx context.Context, topic *domain.TopicVoting) (*domain.VoteResult, error) {
	counts := make(map[bool]int64, 2)
	for _, choice := range []bool{true, false} {
		count, err := s.voteRepo.CountByTopicAndChoice(ctx, topic.ID, choice)
		if err != nil {
			return nil, err
		}
		counts[choice] = count
	}
	return domain.NewVoteResult(topic, counts[true], counts[false]), nil
}
