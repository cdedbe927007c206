package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/voteservice/internal/core/domain"
)

func (app *TestApp) postJSON(t *testing.T, path string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := app.Client.Post(app.Server.URL+path, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func (app *TestApp) createTopicVoting(t *testing.T, description string) domain.TopicVoting {
	t.Helper()

	resp := app.postJSON(t, "/api/topics", map[string]interface{}{"description": description})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var topic domain.TopicVoting
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&topic))
	return topic
}

func (app *TestApp) openSession(t *testing.T, topic domain.TopicVoting, minutes int) {
	t.Helper()

	resp := app.postJSON(t, fmt.Sprintf("/api/topics/%s/sessions", topic.ID), map[string]interface{}{"duration_minutes": minutes})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func (app *TestApp) castVote(t *testing.T, topic domain.TopicVoting, document string, vote bool) int {
	t.Helper()

	resp := app.postJSON(t, fmt.Sprintf("/api/topics/%s/votes", topic.ID), map[string]interface{}{
		"document": document,
		"vote":     vote,
	})
	resp.Body.Close()
	return resp.StatusCode
}
