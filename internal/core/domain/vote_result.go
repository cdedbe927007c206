package domain

import "github.com/google/uuid"

type VoteResult struct {
	TopicVotingID uuid.UUID `json:"topic_voting_id"`
	Description   string    `json:"topic_voting"`
	CountYes      int64     `json:"count_yes"`
	CountNo       int64     `json:"count_no"`
}

func NewVoteResult(topic *TopicVoting, countYes, countNo int64) *VoteResult {
	return &VoteResult{
		TopicVotingID: topic.ID,
		Description:   topic.Description,
		CountYes:      countYes,
		CountNo:       countNo,
	}
}
