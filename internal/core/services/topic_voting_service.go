package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/voteservice/internal/core/domain"
	"github.com/vncsmyrnk/voteservice/internal/core/ports"
)

const topicVotingPageSize = 10

type topicVotingService struct {
	repo ports.TopicVotingRepository
}

func NewTopicVotingService(repo ports.TopicVotingRepository) ports.TopicVotingService {
	return &topicVotingService{
		repo: repo,
	}
}

func (s *topicVotingService) Create(ctx context.Context, input ports.CreateTopicVotingInput) (*domain.TopicVoting, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domain.ErrInvalidDescription
	}

	topic := &domain.TopicVoting{
		ID:          uuid.New(),
		Description: description,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Save(ctx, topic); err != nil {
		return nil, err
	}

	return topic, nil
}

func (s *topicVotingService) FindByID(ctx context.Context, id uuid.UUID) (*domain.TopicVoting, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *topicVotingService) List(ctx context.Context, page int) ([]*domain.TopicVoting, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * topicVotingPageSize

	return s.repo.List(ctx, topicVotingPageSize, offset)
}
