// Package widget binds vote widgets to the views that render them. It runs
// the vote sequence (mutate, await, reconcile, save) and rebinds widgets
// whenever fresh authoritative props arrive.
package widget

import (
	"fmt"

	"paperhub/internal/api"
	"paperhub/internal/vote"
)

// Role says which kind of view a widget belongs to.
type Role int

const (
	Document Role = iota
	Thread
	Comment
	Reply
)

func (r Role) String() string {
	switch r {
	case Document:
		return "document"
	case Thread:
		return "thread"
	case Comment:
		return "comment"
	case Reply:
		return "reply"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

func ParseRole(s string) (Role, error) {
	switch s {
	case "document", "paper":
		return Document, nil
	case "thread":
		return Thread, nil
	case "comment":
		return Comment, nil
	case "reply":
		return Reply, nil
	}
	return 0, fmt.Errorf("unknown widget role %q", s)
}

// Capabilities are the extra actions a role's view offers.
type Capabilities struct {
	CanReply bool
	CanEdit  bool
}

func (r Role) Capabilities() Capabilities {
	switch r {
	case Comment:
		return Capabilities{CanReply: true, CanEdit: true}
	case Reply:
		return Capabilities{CanEdit: true}
	}
	return Capabilities{}
}

// Spec identifies one widget.
type Spec struct {
	Role   Role
	Target api.Target
}

func (s Spec) Key() string {
	return s.Role.String() + ":" + s.Target.Key()
}

// parent is the comment spec a reply hangs off.
func (s Spec) parent() Spec {
	return Spec{Role: Comment, Target: s.Target.Parent()}
}

// Validate checks that the target depth matches the role.
func (s Spec) Validate() error {
	t := s.Target
	ok := false
	switch s.Role {
	case Document:
		ok = t.PaperID != 0 && t.ThreadID == 0 && t.CommentID == 0 && t.ReplyID == 0
	case Thread:
		ok = t.ThreadID != 0 && t.CommentID == 0 && t.ReplyID == 0
	case Comment:
		ok = t.CommentID != 0 && t.ReplyID == 0
	case Reply:
		ok = t.ReplyID != 0
	}
	if !ok {
		return fmt.Errorf("%w for %s widget", api.ErrIncompleteTarget, s.Role)
	}
	_, err := t.Path()
	return err
}

// View is what templates render for one widget.
type View struct {
	Spec
	Capabilities
	Score      int
	Selected   vote.Type
	Sync       vote.SyncState
	Generation uint64
}

func (v View) Upvoted() bool   { return v.Selected == vote.Upvote }
func (v View) Downvoted() bool { return v.Selected == vote.Downvote }

func newView(spec Spec, e *vote.Entity) View {
	st := e.State()
	return View{
		Spec:         spec,
		Capabilities: spec.Role.Capabilities(),
		Score:        st.Score,
		Selected:     st.Type,
		Sync:         e.Sync(),
		Generation:   e.Generation(),
	}
}
