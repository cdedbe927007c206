package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/voteservice/internal/core/domain"
	"github.com/vncsmyrnk/voteservice/internal/core/ports"
)

type TopicVotingHandler struct {
	service ports.TopicVotingService
}

func NewTopicVotingHandler(service ports.TopicVotingService) *TopicVotingHandler {
	return &TopicVotingHandler{
		service: service,
	}
}

type createTopicVotingRequest struct {
	Description string `json:"description"`
}

// CreateTopicVoting godoc
// @Summary      Creates a topic voting
// @Description  Creates a topic voting with the given description. Votes are accepted only after a session is opened.
// @Tags         topics
// @Accept       json
// @Produce      json
// @Param        request  body  createTopicVotingRequest  true  "Topic voting"
// @Success      201  {object}  domain.TopicVoting
// @Failure      400
// @Router       /topics [post]
func (h *TopicVotingHandler) CreateTopicVoting(w http.ResponseWriter, r *http.Request) {
	var req createTopicVotingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	topic, err := h.service.Create(r.Context(), ports.CreateTopicVotingInput{Description: req.Description})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, topic)
}

// GetTopicVoting godoc
// @Summary      Gets a topic voting
// @Tags         topics
// @Produce      json
// @Param        id  path  string  true  "Topic voting ID"
// @Success      200  {object}  domain.TopicVoting
// @Failure      400
// @Failure      404
// @Router       /topics/{id} [get]
func (h *TopicVotingHandler) GetTopicVoting(w http.ResponseWriter, r *http.Request) {
	id, err := topicVotingID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	topic, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if topic == nil {
		writeError(w, domain.ErrTopicVotingNotFound)
		return
	}

	writeJSON(w, http.StatusOK, topic)
}

// ListTopicVotings godoc
// @Summary      Lists topic votings
// @Description  Lists topic votings, newest first, 10 per page
// @Tags         topics
// @Produce      json
// @Param        page  query  int  false  "Page number, starting at 1"
// @Success      200  {array}  domain.TopicVoting
// @Failure      400
// @Router       /topics [get]
func (h *TopicVotingHandler) ListTopicVotings(w http.ResponseWriter, r *http.Request) {
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid page", http.StatusBadRequest)
			return
		}
		page = parsed
	}

	topics, err := h.service.List(r.Context(), page)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, topics)
}

func topicVotingID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.ErrInvalidTopicVotingID
	}
	return id, nil
}
