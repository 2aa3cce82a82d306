package api

import (
	"errors"
	"fmt"
)

var ErrIncompleteTarget = errors.New("api: incomplete vote target")

// Target addresses one votable entity. The deepest non-zero id wins:
// a ReplyID needs its CommentID, a CommentID needs its ThreadID, and
// everything lives under a PaperID.
type Target struct {
	PaperID   int
	ThreadID  int
	CommentID int
	ReplyID   int
}

func (t Target) Path() (string, error) {
	if t.PaperID == 0 {
		return "", ErrIncompleteTarget
	}
	path := fmt.Sprintf("/api/paper/%d", t.PaperID)
	if t.ThreadID == 0 {
		if t.CommentID != 0 || t.ReplyID != 0 {
			return "", ErrIncompleteTarget
		}
		return path, nil
	}
	path += fmt.Sprintf("/discussion/%d", t.ThreadID)
	if t.CommentID == 0 {
		if t.ReplyID != 0 {
			return "", ErrIncompleteTarget
		}
		return path, nil
	}
	path += fmt.Sprintf("/comment/%d", t.CommentID)
	if t.ReplyID != 0 {
		path += fmt.Sprintf("/reply/%d", t.ReplyID)
	}
	return path, nil
}

// Key is a stable identifier for view-state caching.
func (t Target) Key() string {
	return fmt.Sprintf("p%d:t%d:c%d:r%d", t.PaperID, t.ThreadID, t.CommentID, t.ReplyID)
}

// Parent returns the comment a reply hangs off. For anything else it
// returns t unchanged.
func (t Target) Parent() Target {
	if t.ReplyID == 0 {
		return t
	}
	t.ReplyID = 0
	return t
}
