package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"paperhub/internal/api"
	"paperhub/internal/middleware"
	"paperhub/internal/utils"
	"paperhub/internal/vote"
	"paperhub/internal/widget"
)

type VoteHandler struct {
	backend Backend
	binder  *widget.Binder
}

func NewVoteHandler(backend Backend, binder *widget.Binder) *VoteHandler {
	return &VoteHandler{backend: backend, binder: binder}
}

// Upvote handles POST /vote/:role/up
func (h *VoteHandler) Upvote(c *gin.Context) {
	h.cast(c, vote.Upvote)
}

// Downvote handles POST /vote/:role/down
func (h *VoteHandler) Downvote(c *gin.Context) {
	h.cast(c, vote.Downvote)
}

// cast answers with the re-rendered widget. A failed mutation still answers
// 200 with the unchanged widget.
func (h *VoteHandler) cast(c *gin.Context, intent vote.Type) {
	role, err := widget.ParseRole(c.Param("role"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	spec := widget.Spec{Role: role, Target: api.Target{
		PaperID:   utils.ParseID(c.PostForm("paper_id")),
		ThreadID:  utils.ParseID(c.PostForm("thread_id")),
		CommentID: utils.ParseID(c.PostForm("comment_id")),
		ReplyID:   utils.ParseID(c.PostForm("reply_id")),
	}}

	var view widget.View
	if intent == vote.Upvote {
		view, _, err = h.binder.Upvote(c.Request.Context(), middleware.ViewerID(c), spec, h.props(spec))
	} else {
		view, _, err = h.binder.Downvote(c.Request.Context(), middleware.ViewerID(c), spec, h.props(spec))
	}
	if err != nil {
		fragmentFailed(c, role.String(), err)
		return
	}

	Render(c, http.StatusOK, "fragments/vote.html", gin.H{"Vote": view})
}

// props fetches the authoritative vote state for spec.
func (h *VoteHandler) props(spec widget.Spec) widget.PropsFunc {
	t := spec.Target
	return func(ctx context.Context) (vote.State, error) {
		switch spec.Role {
		case widget.Document:
			doc, err := h.backend.GetDocument(ctx, t.PaperID)
			return doc.VoteState(), err
		case widget.Thread:
			thread, err := h.backend.GetThread(ctx, t.PaperID, t.ThreadID)
			return thread.VoteState(), err
		default:
			comment, err := h.backend.GetComment(ctx, t)
			return comment.VoteState(), err
		}
	}
}
