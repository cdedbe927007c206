package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vncsmyrnk/voteservice/internal/core/domain"
	"github.com/vncsmyrnk/voteservice/internal/core/ports"
)

type mockTopicVotingRepository struct {
	mock.Mock
}

func (m *mockTopicVotingRepository) Save(ctx context.Context, topic *domain.TopicVoting) error {
	args := m.Called(ctx, topic)
	return args.Error(0)
}

func (m *mockTopicVotingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TopicVoting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TopicVoting), args.Error(1)
}

func (m *mockTopicVotingRepository) List(ctx context.Context, limit, offset int) ([]*domain.TopicVoting, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TopicVoting), args.Error(1)
}

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

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Save(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionRepository) GetLatestByTopic(ctx context.Context, topicVotingID uuid.UUID) (*domain.Session, error) {
	args := m.Called(ctx, topicVotingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *mockSessionRepository) ListClosedUnpublished(ctx context.Context, now time.Time) ([]*domain.Session, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Session), args.Error(1)
}

func (m *mockSessionRepository) MarkResultPublished(ctx context.Context, sessionID uuid.UUID, at time.Time) error {
	args := m.Called(ctx, sessionID, at)
	return args.Error(0)
}

type mockDocumentValidator struct {
	mock.Mock
}

func (m *mockDocumentValidator) Validate(ctx context.Context, document string) (bool, error) {
	args := m.Called(ctx, document)
	return args.Bool(0), args.Error(1)
}

type mockVoteRepository struct {
	mock.Mock
}

func (m *mockVoteRepository) Save(ctx context.Context, vote *domain.Vote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *mockVoteRepository) CountByTopicAndChoice(ctx context.Context, topicVotingID uuid.UUID, choice bool) (int64, error) {
	args := m.Called(ctx, topicVotingID, choice)
	return args.Get(0).(int64), args.Error(1)
}

type mockResultPublisher struct {
	mock.Mock
}

func (m *mockResultPublisher) Publish(ctx context.Context, result *domain.VoteResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *mockResultPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
