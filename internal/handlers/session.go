package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"paperhub/internal/middleware"
)

type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// SetToken stores the viewer's API token in the session; a blank token
// clears it. The page reloads so every widget rebinds as the new viewer.
func (h *SessionHandler) SetToken(c *gin.Context) {
	token := strings.TrimSpace(c.PostForm("token"))
	if err := middleware.SetAPIToken(c, token); err != nil {
		log.Printf("[session] save api token: %v", err)
		c.String(http.StatusInternalServerError, "could not save session")
		return
	}
	c.Header("HX-Refresh", "true")
	c.Status(http.StatusOK)
}
