package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/vncsmyrnk/voteservice/internal/core/domain"
	"github.com/vncsmyrnk/voteservice/internal/core/ports"
)

type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{
		service: service,
	}
}

// An empty body opens a session with the default duration.
type openSessionRequest struct {
	DurationMinutes int `json:"duration_minutes"`
}

// OpenSession godoc
// @Summary      Opens a voting session
// @Description  Opens the voting window of a topic voting. The duration defaults to 1 minute and may not exceed 30 days.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id       path  string              true   "Topic voting ID"
// @Param        request  body  openSessionRequest  false  "Session duration"
// @Success      201  {object}  domain.Session
// @Failure      400
// @Failure      404
// @Failure      409
// @Router       /topics/{id}/sessions [post]
func (h *SessionHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	id, err := topicVotingID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req openSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Checked before converting, large minute counts overflow time.Duration.
	if req.DurationMinutes < 0 || int64(req.DurationMinutes) > int64(domain.MaxSessionDuration/time.Minute) {
		writeError(w, domain.ErrInvalidDuration)
		return
	}

	session, err := h.service.Open(r.Context(), ports.OpenSessionInput{
		TopicVotingID: id,
		Duration:      time.Duration(req.DurationMinutes) * time.Minute,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}
