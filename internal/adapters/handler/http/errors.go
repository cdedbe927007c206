package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vncsmyrnk/voteservice/internal/core/domain"
)

func writeError(w http.ResponseWriter, err error) {
	var voteErr *domain.VoteError
	if errors.As(err, &voteErr) {
		http.Error(w, voteErr.Error(), voteErrorStatus(voteErr.Kind))
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidTopicVotingID),
		errors.Is(err, domain.ErrInvalidDescription),
		errors.Is(err, domain.ErrInvalidDuration):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrSessionAlreadyOpen):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func voteErrorStatus(kind domain.VoteErrorKind) int {
	switch kind {
	case domain.KindIneligible:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindSessionClosed, domain.KindSessionNotClosed:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
