package models

import (
	"time"

	"paperhub/internal/vote"
)

// Thread is a discussion thread under a document.
type Thread struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Text         string     `json:"text"`
	CreatedBy    *CreatedBy `json:"created_by"`
	CreatedDate  time.Time  `json:"created_date"`
	CommentCount int        `json:"comment_count"`
	Score        int        `json:"score"`
	UserVote     *UserVote  `json:"user_vote"`
}

func (t Thread) VoteState() vote.State {
	return vote.State{Type: voteType(t.UserVote), Score: t.Score}
}

// Comment is a comment on a thread. Replies are comments one level down and
// never carry replies of their own.
type Comment struct {
	ID          int        `json:"id"`
	Text        string     `json:"text"`
	CreatedBy   *CreatedBy `json:"created_by"`
	CreatedDate time.Time  `json:"created_date"`
	Score       int        `json:"score"`
	UserVote    *UserVote  `json:"user_vote"`
	Replies     []Comment  `json:"replies"`
	ReplyCount  int        `json:"reply_count"`
}

func (c Comment) VoteState() vote.State {
	return vote.State{Type: voteType(c.UserVote), Score: c.Score}
}

// Page is the paginated envelope list endpoints answer with.
type Page[T any] struct {
	Count    int    `json:"count"`
	Next     string `json:"next"`
	Previous string `json:"previous"`
	Results  []T    `json:"results"`
}
