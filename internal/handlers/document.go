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

const excerptLength = 280

type DocumentHandler struct {
	backend Backend
	binder  *widget.Binder
}

func NewDocumentHandler(backend Backend, binder *widget.Binder) *DocumentHandler {
	return &DocumentHandler{backend: backend, binder: binder}
}

// ThreadCard is one thread in a document's discussion list.
type ThreadCard struct {
	Thread  models.Thread
	Vote    widget.View
	Excerpt string
}

// Show renders the document header and its thread cards.
func (h *DocumentHandler) Show(c *gin.Context) {
	paperID := utils.ParseID(c.Param("paperId"))
	if paperID == 0 {
		RenderError(c, http.StatusBadRequest, "invalid paper id")
		return
	}
	ctx := c.Request.Context()
	viewer := middleware.ViewerID(c)

	var doc models.Document
	var threads []models.Thread
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doc, err = h.backend.GetDocument(gctx, paperID)
		return err
	})
	g.Go(func() error {
		var err error
		threads, err = h.backend.ListThreads(gctx, paperID)
		return err
	})
	if err := g.Wait(); err != nil {
		fetchFailed(c, "paper", err)
		return
	}

	docVote, err := h.binder.Bind(ctx, viewer, widget.Spec{Role: widget.Document, Target: api.Target{PaperID: paperID}}, doc.VoteState())
	if err != nil {
		fetchFailed(c, "paper", err)
		return
	}

	cards := make([]ThreadCard, 0, len(threads))
	for _, t := range threads {
		spec := widget.Spec{Role: widget.Thread, Target: api.Target{PaperID: paperID, ThreadID: t.ID}}
		v, err := h.binder.Bind(ctx, viewer, spec, t.VoteState())
		if err != nil {
			fetchFailed(c, "thread", err)
			return
		}
		cards = append(cards, ThreadCard{Thread: t, Vote: v, Excerpt: utils.Excerpt(string(utils.RenderMarkdown(t.Text)), excerptLength)})
	}

	Render(c, http.StatusOK, "document/show.html", gin.H{
		"Title":    doc.Title,
		"Document": doc,
		"Vote":     docVote,
		"Threads":  cards,
	})
}
