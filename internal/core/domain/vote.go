package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is a single yes/no ballot. Document is opaque to this service; its
// eligibility is decided by an external validator.
type Vote struct {
	ID            uuid.UUID `json:"id"`
	TopicVotingID uuid.UUID `json:"topic_voting_id"`
	Document      string    `json:"document"`
	Choice        bool      `json:"vote"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewVote builds the ballot to be stored for topic. ID and CreatedAt are
// assigned by the repository.
func NewVote(topic *TopicVoting, document string, choice bool) *Vote {
	return &Vote{
		TopicVotingID: topic.ID,
		Document:      document,
		Choice:        choice,
	}
}
