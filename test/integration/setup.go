package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/vncsmyrnk/voteservice/internal/adapters/document/userinfo"
	handler "github.com/vncsmyrnk/voteservice/internal/adapters/handler/http"
	repo "github.com/vncsmyrnk/voteservice/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/voteservice/internal/core/ports"
	"github.com/vncsmyrnk/voteservice/internal/core/services"
)

// Documents starting with this prefix are reported as unable to vote by the
// fake user info service.
const unableDocumentPrefix = "000"

type TestApp struct {
	DB           *sql.DB
	Server       *httptest.Server
	Client       *http.Client
	Validator    *httptest.Server
	TopicRepo    ports.TopicVotingRepository
	SessionRepo  ports.SessionRepository
	VoteRepo     ports.VoteRepository
	TopicService ports.TopicVotingService
	DBContainer  testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func newUserInfoServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		document := strings.TrimPrefix(r.URL.Path, "/users/")
		w.Header().Set("Content-Type", "application/json")
		if strings.HasPrefix(document, unableDocumentPrefix) {
			w.Write([]byte(`{"status":"UNABLE_TO_VOTE"}`))
			return
		}
		w.Write([]byte(`{"status":"ABLE_TO_VOTE"}`))
	}))
}

func setupTestApp(t *testing.T) *TestApp {
	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := repo.Open(ctx, dbURL)
	require.NoError(t, err)

	err = repo.Migrate(db)
	require.NoError(t, err)

	topicRepo := repo.NewTopicVotingRepository(db)
	sessionRepo := repo.NewSessionRepository(db)
	voteRepo := repo.NewVoteRepository(db)

	validatorServer := newUserInfoServer()
	validator := userinfo.NewClient(zap.NewNop(), validatorServer.URL, userinfo.Options{Timeout: time.Second})

	topicSvc := services.NewTopicVotingService(topicRepo)
	sessionSvc := services.NewSessionService(topicSvc, sessionRepo)
	voteSvc := services.NewVoteService(topicSvc, sessionSvc, validator, voteRepo)

	router := handler.NewHandler(
		handler.NewTopicVotingHandler(topicSvc),
		handler.NewSessionHandler(sessionSvc),
		handler.NewVoteHandler(voteSvc),
		[]string{"*"},
	)

	server := httptest.NewServer(router)

	return &TestApp{
		DB:           db,
		Server:       server,
		Client:       server.Client(),
		Validator:    validatorServer,
		TopicRepo:    topicRepo,
		SessionRepo:  sessionRepo,
		VoteRepo:     voteRepo,
		TopicService: topicSvc,
		DBContainer:  dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.Validator.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}
