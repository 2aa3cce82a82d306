package middleware

import (
	"github.com/gin-gonic/gin"

	"paperhub/internal/killswitch"
)

const (
	FlagsKey   = "flags"
	SiteURLKey = "site_url"
)

// SiteContext exposes the environment's UI switches and the public site URL
// to templates.
func SiteContext(env, siteURL string) gin.HandlerFunc {
	flags := killswitch.For(env)
	return func(c *gin.Context) {
		c.Set(FlagsKey, flags)
		c.Set(SiteURLKey, siteURL)
		c.Next()
	}
}
