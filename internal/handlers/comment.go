package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"paperhub/internal/api"
	"paperhub/internal/middleware"
	"paperhub/internal/utils"
	"paperhub/internal/widget"
)

type CommentHandler struct {
	backend Backend
	binder  *widget.Binder
}

func NewCommentHandler(backend Backend, binder *widget.Binder) *CommentHandler {
	return &CommentHandler{backend: backend, binder: binder}
}

func commentTarget(c *gin.Context) api.Target {
	return api.Target{
		PaperID:   utils.ParseID(c.Param("paperId")),
		ThreadID:  utils.ParseID(c.Param("threadId")),
		CommentID: utils.ParseID(c.Param("commentId")),
	}
}

// Reply posts a reply and re-renders the comment with the reply on top.
func (h *CommentHandler) Reply(c *gin.Context) {
	target := commentTarget(c)
	text := strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		c.String(http.StatusBadRequest, "reply text is empty")
		return
	}
	ctx := c.Request.Context()

	reply, err := h.backend.CreateReply(ctx, target, text)
	if err != nil {
		fragmentFailed(c, "reply", err)
		return
	}
	comment, err := h.backend.GetComment(ctx, target)
	if err != nil {
		fragmentFailed(c, "comment", err)
		return
	}
	// The list read right after the write may not include the reply yet
	found := false
	for _, r := range comment.Replies {
		if r.ID == reply.ID {
			found = true
			break
		}
	}
	if !found {
		comment = widget.PrependReply(comment, reply)
	}

	thread := api.Target{PaperID: target.PaperID, ThreadID: target.ThreadID}
	cv, err := h.binder.BindComment(ctx, middleware.ViewerID(c), thread, comment)
	if err != nil {
		fragmentFailed(c, "comment", err)
		return
	}
	Render(c, http.StatusOK, "fragments/comment_item.html", gin.H{"Comment": cv})
}

// Edit replaces the text of a comment, or of one of its replies when the
// form carries reply_id.
func (h *CommentHandler) Edit(c *gin.Context) {
	target := commentTarget(c)
	target.ReplyID = utils.ParseID(c.PostForm("reply_id"))
	text := strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		c.String(http.StatusBadRequest, "comment text is empty")
		return
	}

	updated, err := h.backend.UpdateComment(c.Request.Context(), target, text)
	if err != nil {
		fragmentFailed(c, "comment", err)
		return
	}
	Render(c, http.StatusOK, "fragments/comment_text.html", gin.H{
		"Target":  target,
		"Text":    updated.Text,
		"CanEdit": true,
	})
}
