package models

import "paperhub/internal/vote"

// UserVote is the viewer's vote as reported by the API; nil means no vote.
type UserVote struct {
	ID       int       `json:"id"`
	VoteType vote.Type `json:"vote_type"`
}

// voteType reads a possibly missing user vote as vote.None.
func voteType(v *UserVote) vote.Type {
	if v == nil {
		return vote.None
	}
	return v.VoteType.Normalize()
}
