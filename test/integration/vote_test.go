package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/voteservice/internal/core/domain"
)

// TestVoteFlow tests the lifecycle: Create Topic -> Vote Without Session -> Open Session -> Vote -> Result
func TestVoteFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	// Step 1: Create a topic voting
	topic := app.createTopicVoting(t, "Vote of president")
	assert.NotEqual(t, uuid.Nil, topic.ID)

	// Step 2: No session was opened yet
	assert.Equal(t, http.StatusConflict, app.castVote(t, topic, "12345678909", true))

	// Step 3: Open the session and vote
	app.openSession(t, topic, 5)

	assert.Equal(t, http.StatusCreated, app.castVote(t, topic, "12345678909", true))
	assert.Equal(t, http.StatusCreated, app.castVote(t, topic, "98765432100", true))
	assert.Equal(t, http.StatusCreated, app.castVote(t, topic, "11122233344", false))

	// Same document votes again, both ballots are kept
	assert.Equal(t, http.StatusCreated, app.castVote(t, topic, "11122233344", false))

	// Ineligible document
	assert.Equal(t, http.StatusForbidden, app.castVote(t, topic, "00011122233", true))

	var stored int
	err := app.DB.QueryRow("SELECT COUNT(*) FROM votes WHERE topic_voting_id = $1", topic.ID).Scan(&stored)
	require.NoError(t, err)
	assert.Equal(t, 4, stored)

	// Step 4: Result, read twice with no vote in between
	for i := 0; i < 2; i++ {
		resp, err := app.Client.Get(fmt.Sprintf("%s/api/topics/%s/result", app.Server.URL, topic.ID))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result domain.VoteResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		resp.Body.Close()

		assert.Equal(t, topic.ID, result.TopicVotingID)
		assert.Equal(t, "Vote of president", result.Description)
		assert.Equal(t, int64(2), result.CountYes)
		assert.Equal(t, int64(2), result.CountNo)
	}
}

func TestVoteOnUnknownTopicVoting(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	unknown := domain.TopicVoting{ID: uuid.New()}
	assert.Equal(t, http.StatusNotFound, app.castVote(t, unknown, "12345678909", true))

	resp, err := app.Client.Get(fmt.Sprintf("%s/api/topics/%s/result", app.Server.URL, unknown.ID))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestResultWithoutSession(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	topic := app.createTopicVoting(t, "Budget approval")

	resp, err := app.Client.Get(fmt.Sprintf("%s/api/topics/%s/result", app.Server.URL, topic.ID))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestOpenSessionTwice(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	topic := app.createTopicVoting(t, "Budget approval")
	app.openSession(t, topic, 0)

	resp := app.postJSON(t, fmt.Sprintf("/api/topics/%s/sessions", topic.ID), map[string]interface{}{})
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
