package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vncsmyrnk/voteservice/internal/adapters/document/userinfo"
	"github.com/vncsmyrnk/voteservice/internal/adapters/handler/http"
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
		zlog.Error("server stopped with errors", zap.Error(err))
	}
	_ = zlog.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, zlog *zap.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.PostgresURL())
	if err != nil {
		return fmt.Errorf("failed to connect to the database: %w", err)
	}
	defer func() {
		err = multierr.Append(err, db.Close())
	}()

	// Initialize Repositories
	topicRepo := postgres.NewTopicVotingRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	voteRepo := postgres.NewVoteRepository(db)

	documentValidator := userinfo.NewClient(zlog.Named("userinfo"), cfg.DocumentValidatorURL, userinfo.Options{
		Retries: cfg.DocumentValidatorRetries,
		Timeout: cfg.DocumentValidatorTimeout,
	})

	// Initialize Services
	topicService := services.NewTopicVotingService(topicRepo)
	sessionService := services.NewSessionService(topicService, sessionRepo)
	voteService := services.NewVoteService(topicService, sessionService, documentValidator, voteRepo)

	handler := http.NewHandler(
		http.NewTopicVotingHandler(topicService),
		http.NewSessionHandler(sessionService),
		http.NewVoteHandler(voteService),
		cfg.AllowedOrigins,
	)
	server := &stdhttp.Server{Addr: cfg.HTTPAddr, Handler: handler}

	serveErr := make(chan error, 1)
	go func() {
		zlog.Info("server listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		zlog.Info("gracefully shutting down")
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
