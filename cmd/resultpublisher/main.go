package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/vncsmyrnk/voteservice/internal/adapters/event/kafka"
	"github.com/vncsmyrnk/voteservice/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/voteservice/internal/config"
	"github.com/vncsmyrnk/voteservice/internal/core/services"
	"github.com/vncsmyrnk/voteservice/internal/logger"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalln("loading the configuration failed: ", err)
	}

	zlog, err := logger.New(cfg.LogFormat)
	if err != nil {
		log.Fatalln("setting up the logger failed: ", err)
	}

	if envErr != nil {
		zlog.Info("no .env file found")
	}

	err = run(cfg, zlog)
	if err != nil {
		zlog.Error("error publishing results", zap.Error(err))
	} else {
		zlog.Info("result publishing completed successfully")
	}
	_ = zlog.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, zlog *zap.Logger) (err error) {
	// Use a timeout for the job execution to prevent it from hanging indefinitely
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.PostgresURL())
	if err != nil {
		return fmt.Errorf("failed to connect to the database: %w", err)
	}

	publisher := kafka.NewResultPublisher(cfg.KafkaBrokers, cfg.KafkaResultTopic)
	defer func() {
		err = multierr.Append(err, multierr.Append(publisher.Close(), db.Close()))
	}()

	// Initialize Services
	topicService := services.NewTopicVotingService(postgres.NewTopicVotingRepository(db))
	publishingService := services.NewResultPublishingService(
		topicService,
		postgres.NewSessionRepository(db),
		postgres.NewVoteRepository(db),
		publisher,
		zlog,
	)

	zlog.Info("starting result publishing job", zap.String("topic", cfg.KafkaResultTopic))

	return publishingService.PublishClosedSessions(ctx)
}
