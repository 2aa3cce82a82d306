package middleware

import (
	"log"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"paperhub/internal/api"
)

const (
	ViewerKey = "viewer"

	sessionViewerID = "viewer_id"
	sessionAPIToken = "api_token"
)

// LoadViewer gives every browser a stable viewer id and puts the viewer's
// API token, if any, on the request context for the API client.
func LoadViewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		viewer, _ := session.Get(sessionViewerID).(string)
		if viewer == "" {
			viewer = uuid.NewString()
			session.Set(sessionViewerID, viewer)
			if err := session.Save(); err != nil {
				log.Printf("[session] save viewer id: %v", err)
			}
		}
		c.Set(ViewerKey, viewer)

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = session.Get(sessionAPIToken).(string)
		}
		if token != "" {
			c.Request = c.Request.WithContext(api.WithToken(c.Request.Context(), token))
		}

		c.Next()
	}
}

// ViewerID returns the id LoadViewer set, or "anonymous" outside it.
func ViewerID(c *gin.Context) string {
	if v := c.GetString(ViewerKey); v != "" {
		return v
	}
	return "anonymous"
}

// SetAPIToken stores the token for later requests of this session.
func SetAPIToken(c *gin.Context, token string) error {
	session := sessions.Default(c)
	if token == "" {
		session.Delete(sessionAPIToken)
	} else {
		session.Set(sessionAPIToken, token)
	}
	return session.Save()
}

func bearerToken(h string) string {
	const prefix = "Bearer "
	if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
		return strings.TrimSpace(h[len(prefix):])
	}
	return ""
}
