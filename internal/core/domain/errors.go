package domain

import "errors"

// VoteErrorKind enumerates the ways the vote workflow rejects a request.
type VoteErrorKind int

const (
	KindIneligible VoteErrorKind = iota + 1
	KindNotFound
	KindSessionClosed
	KindSessionNotClosed
)

const (
	MsgUnableToVote         = "unable to vote"
	MsgTopicVotingNotExists = "the topic voting does not exist"
	MsgSessionIsClosed      = "the session is closed"
	MsgSessionIsNotClosed   = "the session is not closed"
	msgUnknownVoteErrorKind = "unknown vote error"
)

func (k VoteErrorKind) Message() string {
	switch k {
	case KindIneligible:
		return MsgUnableToVote
	case KindNotFound:
		return MsgTopicVotingNotExists
	case KindSessionClosed:
		return MsgSessionIsClosed
	case KindSessionNotClosed:
		return MsgSessionIsNotClosed
	}
	return msgUnknownVoteErrorKind
}

// VoteError is returned by the vote workflow when a precondition fails.
// Two VoteErrors match under errors.Is when their kinds are equal.
type VoteError struct {
	Kind VoteErrorKind
}

func (e *VoteError) Error() string {
	return e.Kind.Message()
}

func (e *VoteError) Is(target error) bool {
	t, ok := target.(*VoteError)
	return ok && t.Kind == e.Kind
}

var (
	ErrUnableToVote        = &VoteError{Kind: KindIneligible}
	ErrTopicVotingNotFound = &VoteError{Kind: KindNotFound}
	ErrSessionClosed       = &VoteError{Kind: KindSessionClosed}
	ErrSessionNotClosed    = &VoteError{Kind: KindSessionNotClosed}
)

var (
	ErrInvalidTopicVotingID = errors.New("invalid topic voting id")
	ErrInvalidDescription   = errors.New("description is required")
	ErrInvalidDuration      = errors.New("session duration must be between 0 and 30 days")
	ErrSessionAlreadyOpen   = errors.New("the topic voting already has an open session")
)
