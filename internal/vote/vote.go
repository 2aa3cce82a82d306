// Package vote holds the per-entity vote state used by the discussion views:
// the state container, the reconciliation arithmetic applied after a vote
// mutation resolves, and the tracker that resyncs local state whenever the
// authoritative vote type changes.
package vote

import (
	"fmt"
	"strings"
)

// Type is the viewer's vote on one entity. The numeric values match the
// remote API's encoding.
type Type int

const (
	None     Type = 0
	Upvote   Type = 1
	Downvote Type = 2
)

// Valid reports whether t is one of None, Upvote or Downvote.
func (t Type) Valid() bool {
	return t == None || t == Upvote || t == Downvote
}

// Normalize maps unknown values to None. Malformed authoritative data is
// treated as "not voted".
func (t Type) Normalize() Type {
	if !t.Valid() {
		return None
	}
	return t
}

func (t Type) String() string {
	switch t {
	case Upvote:
		return "upvote"
	case Downvote:
		return "downvote"
	case None:
		return "none"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType accepts the forms used in routes and form fields:
// "up"/"upvote"/"1", "down"/"downvote"/"2", and ""/"none"/"0".
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "upvote", "1":
		return Upvote, nil
	case "down", "downvote", "2":
		return Downvote, nil
	case "", "none", "0":
		return None, nil
	}
	return None, fmt.Errorf("unknown vote type %q", s)
}

// Increment is the score delta of a fresh vote of type t on its own.
func (t Type) Increment() int {
	switch t {
	case Upvote:
		return 1
	case Downvote:
		return -1
	}
	return 0
}

// State is what a vote widget renders.
type State struct {
	Type  Type `json:"vote_type"`
	Score int  `json:"score"`
}

// Result is what the vote mutation client hands back. Increment is the
// delta of the new vote alone, never the net change against a prior vote.
type Result struct {
	Success   bool
	Type      Type
	Increment int
}

// Outcome describes what applying a Result did to local state.
type Outcome int

const (
	Applied Outcome = iota
	AlreadyVoted
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case AlreadyVoted:
		return "already_voted"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}
