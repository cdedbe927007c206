package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultSessionDuration = time.Minute
	MaxSessionDuration     = 30 * 24 * time.Hour
)

// Session is the voting window of a topic.
type Session struct {
	ID                uuid.UUID  `json:"id"`
	TopicVotingID     uuid.UUID  `json:"topic_voting_id"`
	OpenedAt          time.Time  `json:"opened_at"`
	ClosesAt          time.Time  `json:"closes_at"`
	ResultPublishedAt *time.Time `json:"result_published_at,omitempty"`
}

// IsOpen reports whether now falls inside [OpenedAt, ClosesAt).
func (s *Session) IsOpen(now time.Time) bool {
	return !now.Before(s.OpenedAt) && now.Before(s.ClosesAt)
}
