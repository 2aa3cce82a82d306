package models

import (
	"time"

	"paperhub/internal/vote"
)

// Document is a top-level paper, hypothesis or post.
type Document struct {
	ID              int        `json:"id"`
	Title           string     `json:"title"`
	DocumentType    string     `json:"document_type"` // paper, hypothesis, post
	CreatedBy       *CreatedBy `json:"created_by"`
	CreatedDate     time.Time  `json:"created_date"`
	DatePublished   string     `json:"date_published"`
	Journal         string     `json:"journal"`
	DOI             string     `json:"doi"`
	Authors         []Author   `json:"authors"`
	Hubs            []Hub      `json:"hubs"`
	DiscussionCount int        `json:"discussion_count"`
	Score           int        `json:"score"`
	UserVote        *UserVote  `json:"user_vote"`
}

func (d Document) VoteState() vote.State {
	return vote.State{Type: voteType(d.UserVote), Score: d.Score}
}

// ClaimableAuthors lists authors whose profile nobody has claimed yet.
func (d Document) ClaimableAuthors() []Author {
	var out []Author
	for _, a := range d.Authors {
		if !a.IsClaimed {
			out = append(out, a)
		}
	}
	return out
}
