package http

import (
	"encoding/json"
	"net/http"

	"github.com/vncsmyrnk/voteservice/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type voteRequest struct {
	Document string `json:"document"`
	Vote     *bool  `json:"vote"`
}

type voteResponse struct {
	Vote bool `json:"vote"`
}

// CastVote godoc
// @Summary      Casts a vote
// @Description  Records a yes/no vote for the document holder. The document must be able to vote and the session must be open.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        id       path  string       true  "Topic voting ID"
// @Param        request  body  voteRequest  true  "Vote"
// @Success      201  {object}  voteResponse
// @Failure      400
// @Failure      403
// @Failure      404
// @Failure      409
// @Router       /topics/{id}/votes [post]
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	id, err := topicVotingID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Document == "" || req.Vote == nil {
		http.Error(w, "document and vote are required", http.StatusBadRequest)
		return
	}

	vote, err := h.service.CastVote(r.Context(), ports.VoteInput{
		TopicVotingID: id,
		Document:      req.Document,
		Choice:        *req.Vote,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, voteResponse{Vote: vote.Choice})
}

// GetResult godoc
// @Summary      Gets the voting result
// @Description  Counts the yes and no votes of a topic voting. Results are served while its session is open.
// @Tags         votes
// @Produce      json
// @Param        id  path  string  true  "Topic voting ID"
// @Success      200  {object}  domain.VoteResult
// @Failure      400
// @Failure      404
// @Failure      409
// @Router       /topics/{id}/result [get]
func (h *VoteHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	id, err := topicVotingID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.service.GetResult(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
