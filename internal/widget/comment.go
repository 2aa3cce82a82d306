package widget

import (
	"context"

	"paperhub/internal/api"
	"paperhub/internal/models"
)

// CommentView is a bound comment with its bound replies.
type CommentView struct {
	View
	Comment    models.Comment
	Replies    []ReplyView
	ReplyCount int
}

type ReplyView struct {
	View
	Reply models.Comment
}

// BindComment binds a comment and then each reply under the comment's
// current generation. The reply list always comes from the props passed in,
// so a resync of the comment also drops any reply record bound before it.
func (b *Binder) BindComment(ctx context.Context, viewer string, thread api.Target, c models.Comment) (CommentView, error) {
	spec := Spec{Role: Comment, Target: api.Target{PaperID: thread.PaperID, ThreadID: thread.ThreadID, CommentID: c.ID}}
	if err := spec.Validate(); err != nil {
		return CommentView{}, err
	}
	cv := CommentView{
		View:       b.bind(ctx, viewer, spec, c.VoteState(), 0, false),
		Comment:    c,
		Replies:    make([]ReplyView, 0, len(c.Replies)),
		ReplyCount: c.ReplyCount,
	}
	if cv.ReplyCount < len(c.Replies) {
		cv.ReplyCount = len(c.Replies)
	}

	for _, r := range c.Replies {
		rs := Spec{Role: Reply, Target: spec.Target}
		rs.Target.ReplyID = r.ID
		if err := rs.Validate(); err != nil {
			return CommentView{}, err
		}
		cv.Replies = append(cv.Replies, ReplyView{
			View:  b.bind(ctx, viewer, rs, r.VoteState(), cv.Generation, true),
			Reply: r,
		})
	}
	return cv, nil
}

// BindComments binds every comment of a thread in order.
func (b *Binder) BindComments(ctx context.Context, viewer string, thread api.Target, comments []models.Comment) ([]CommentView, error) {
	out := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		cv, err := b.BindComment(ctx, viewer, thread, c)
		if err != nil {
			return nil, err
		}
		out = append(out, cv)
	}
	return out, nil
}

// PrependReply returns c with reply placed first and the reply count bumped.
// c itself is not modified.
func PrependReply(c models.Comment, reply models.Comment) models.Comment {
	replies := make([]models.Comment, 0, len(c.Replies)+1)
	replies = append(replies, reply)
	replies = append(replies, c.Replies...)
	c.Replies = replies
	if c.ReplyCount < len(c.Replies)-1 {
		c.ReplyCount = len(c.Replies) - 1
	}
	c.ReplyCount++
	return c
}
