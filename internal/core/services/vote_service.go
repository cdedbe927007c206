package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/voteservice/internal/core/domain"
	"github.com/vncsmyrnk/voteservice/internal/core/ports"
)

type voteService struct {
	topicService    ports.TopicVotingService
	sessionService  ports.SessionService
	documentChecker ports.DocumentValidator
	voteRepo        ports.VoteRepository
}

func NewVoteService(
	topicService ports.TopicVotingService,
	sessionService ports.SessionService,
	documentChecker ports.DocumentValidator,
	voteRepo ports.VoteRepository,
) ports.VoteService {
	return &voteService{
		topicService:    topicService,
		sessionService:  sessionService,
		documentChecker: documentChecker,
		voteRepo:        voteRepo,
	}
}

// CastVote checks, in order, the document, the topic voting and the session
// before storing the ballot. Repeated votes from the same document are
// stored as independent ballots.
func (s *voteService) CastVote(ctx context.Context, input ports.VoteInput) (*domain.Vote, error) {
	able, err := s.documentChecker.Validate(ctx, input.Document)
	if err != nil {
		return nil, fmt.Errorf("failed to validate document: %w", err)
	}
	if !able {
		return nil, domain.ErrUnableToVote
	}

	topic, err := s.openTopic(ctx, input.TopicVotingID, domain.ErrSessionClosed)
	if err != nil {
		return nil, err
	}

	vote := domain.NewVote(topic, input.Document, input.Choice)
	if err := s.voteRepo.Save(ctx, vote); err != nil {
		return nil, err
	}

	return vote, nil
}

// GetResult tallies the votes of a topic voting. Results are only served
// while the session is open, the same condition CastVote requires.
func (s *voteService) GetResult(ctx context.Context, topicVotingID uuid.UUID) (*domain.VoteResult, error) {
	topic, err := s.openTopic(ctx, topicVotingID, domain.ErrSessionNotClosed)
	if err != nil {
		return nil, err
	}

	countYes, err := s.voteRepo.CountByTopicAndChoice(ctx, topic.ID, true)
	if err != nil {
		return nil, err
	}
	countNo, err := s.voteRepo.CountByTopicAndChoice(ctx, topic.ID, false)
	if err != nil {
		return nil, err
	}

	return domain.NewVoteResult(topic, countYes, countNo), nil
}

// openTopic resolves the topic voting and fails with notOpenErr when its
// session is not open.
func (s *voteService) openTopic(ctx context.Context, id uuid.UUID, notOpenErr error) (*domain.TopicVoting, error) {
	topic, err := s.topicService.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, domain.ErrTopicVotingNotFound
	}

	open, err := s.sessionService.IsOpen(ctx, topic)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, notOpenErr
	}

	return topic, nil
}
