package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vncsmyrnk/voteservice/internal/config"
)

func TestRun_ReturnsErrorWhenDatabaseIsUnreachable(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "127.0.0.1")
	t.Setenv("POSTGRES_PORT", "1")
	t.Setenv("POSTGRES_USER", "vote")
	t.Setenv("POSTGRES_DB", "votes")

	cfg, err := config.Load()
	require.NoError(t, err)

	err = run(cfg, zap.NewNop())

	assert.ErrorContains(t, err, "failed to connect to the database")
}
