package ports

import (
	"context"

	"github.com/vncsmyrnk/voteservice/internal/core/domain"
)

type ResultPublisher interface {
	Publish(ctx context.Context, result *domain.VoteResult) error
	Close() error
}

type ResultPublishingService interface {
	PublishClosedSessions(ctx context.Context) error
}
