package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"paperhub/internal/api"
	"paperhub/internal/middleware"
	"paperhub/internal/models"
	"paperhub/internal/widget"
)

// Backend is the part of the remote API the handlers use. *api.Client
// satisfies it.
type Backend interface {
	widget.Mutator
	GetDocument(ctx context.Context, paperID int) (models.Document, error)
	ListThreads(ctx context.Context, paperID int) ([]models.Thread, error)
	GetThread(ctx context.Context, paperID, threadID int) (models.Thread, error)
	ListComments(ctx context.Context, paperID, threadID int) ([]models.Comment, error)
	GetComment(ctx context.Context, t api.Target) (models.Comment, error)
	UpdateComment(ctx context.Context, t api.Target, text string) (models.Comment, error)
	CreateReply(ctx context.Context, t api.Target, text string) (models.Comment, error)
}

// Render helper to inject common variables like the viewer and UI flags
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	obj["Viewer"] = middleware.ViewerID(c)
	if flags, ok := c.Get(middleware.FlagsKey); ok {
		obj["Flags"] = flags
	}
	obj["SiteURL"] = c.GetString(middleware.SiteURLKey)
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// Error helper
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message, "Code": code})
}

// fetchFailed maps an API failure to an error page: 404 stays 404, the rest
// is a bad gateway.
func fetchFailed(c *gin.Context, what string, err error) {
	switch {
	case api.IsNotFound(err):
		RenderError(c, http.StatusNotFound, what+" not found")
	case errors.Is(err, api.ErrIncompleteTarget):
		RenderError(c, http.StatusBadRequest, "invalid "+what)
	default:
		log.Printf("[api] fetch %s: %v", what, err)
		RenderError(c, http.StatusBadGateway, "could not load "+what)
	}
}

// fragmentFailed is fetchFailed for HTMX fragments, which get a bare status.
func fragmentFailed(c *gin.Context, what string, err error) {
	switch {
	case api.IsNotFound(err):
		c.String(http.StatusNotFound, what+" not found")
	case errors.Is(err, api.ErrIncompleteTarget):
		c.String(http.StatusBadRequest, "invalid "+what)
	default:
		log.Printf("[api] %s: %v", what, err)
		c.String(http.StatusBadGateway, "could not load "+what)
	}
}
