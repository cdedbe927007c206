package http

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vncsmyrnk/voteservice/internal/core/domain"
	"github.com/vncsmyrnk/voteservice/internal/core/ports"
)

type mockTopicVotingService struct {
	mock.Mock
}

func (m *mockTopicVotingService) Create(ctx context.Context, input ports.CreateTopicVotingInput) (*domain.TopicVoting, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TopicVoting), args.Error(1)
}

func (m *mockTopicVotingService) FindByID(ctx context.Context, id uuid.UUID) (*domain.TopicVoting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TopicVoting), args.Error(1)
}

func (m *mockTopicVotingService) List(ctx context.Context, page int) ([]*domain.TopicVoting, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TopicVoting), args.Error(1)
}

type mockSessionService struct {
	mock.Mock
}

func (m *mockSessionService) Open(ctx context.Context, input ports.OpenSessionInput) (*domain.Session, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *mockSessionService) IsOpen(ctx context.Context, topic *domain.TopicVoting) (bool, error) {
	args := m.Called(ctx, topic)
	return args.Bool(0), args.Error(1)
}

type mockVoteService struct {
	mock.Mock
}

func (m *mockVoteService) CastVote(ctx context.Context, input ports.VoteInput) (*domain.Vote, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vote), args.Error(1)
}

func (m *mockVoteService) GetResult(ctx context.Context, topicVotingID uuid.UUID) (*domain.VoteResult, error) {
	args := m.Called(ctx, topicVotingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VoteResult), args.Error(1)
}
