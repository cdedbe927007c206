package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/vncsmyrnk/voteservice/internal/core/domain"
	"github.com/vncsmyrnk/voteservice/internal/core/ports"
)

type resultPublisher struct {
	writer *kafka.Writer
}

// NewResultPublisher writes voting results to topic. Messages are keyed by
// topic voting id, so results of the same topic voting land on one partition.
func NewResultPublisher(brokers []string, topic string) ports.ResultPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
		MaxAttempts:  5,
		Compression:  kafka.Snappy,
	}

	return &resultPublisher{writer: w}
}

func (p *resultPublisher) Publish(ctx context.Context, result *domain.VoteResult) error {
	msg, err := resultMessage(result)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write result to kafka: %w", err)
	}
	return nil
}

func (p *resultPublisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}
	return nil
}

func resultMessage(result *domain.VoteResult) (kafka.Message, error) {
	value, err := json.Marshal(result)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal result: %w", err)
	}

	return kafka.Message{
		Key:   []byte(result.TopicVotingID.String()),
		Value: value,
	}, nil
}
