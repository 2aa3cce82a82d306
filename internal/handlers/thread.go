package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"paperhub/internal/api"
	"paperhub/internal/middleware"
	"paperhub/internal/models"
	"paperhub/internal/utils"
	"paperhub/internal/widget"
)

type ThreadHandler struct {
	backend Backend
	binder  *widget.Binder
}

func NewThreadHandler(backend Backend, binder *widget.Binder) *ThreadHandler {
	return &ThreadHandler{backend: backend, binder: binder}
}

// Show renders a thread with its comments and their replies.
func (h *ThreadHandler) Show(c *gin.Context) {
	target := api.Target{
		PaperID:  utils.ParseID(c.Param("paperId")),
		ThreadID: utils.ParseID(c.Param("threadId")),
	}
	if target.PaperID == 0 || target.ThreadID == 0 {
		RenderError(c, http.StatusBadRequest, "invalid thread id")
		return
	}
	ctx := c.Request.Context()
	viewer := middleware.ViewerID(c)

	var thread models.Thread
	var comments []models.Comment
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		thread, err = h.backend.GetThread(gctx, target.PaperID, target.ThreadID)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = h.backend.ListComments(gctx, target.PaperID, target.ThreadID)
		return err
	})
	if err := g.Wait(); err != nil {
		fetchFailed(c, "thread", err)
		return
	}

	threadVote, err := h.binder.Bind(ctx, viewer, widget.Spec{Role: widget.Thread, Target: target}, thread.VoteState())
	if err != nil {
		fetchFailed(c, "thread", err)
		return
	}
	views, err := h.binder.BindComments(ctx, viewer, target, comments)
	if err != nil {
		fetchFailed(c, "comments", err)
		return
	}

	Render(c, http.StatusOK, "thread/show.html", gin.H{
		"Title":    thread.Title,
		"Target":   target,
		"Thread":   thread,
		"Vote":     threadVote,
		"Comments": views,
	})
}
