package middlewares

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	adminPrefix = "/admin"
	loginPath   = "/admin/login"
)

// SessionGuard gates the admin dashboard pages. Unauthenticated requests to
// any path under /admin (except the login page) are redirected to the login
// page with the original path preserved in the redirectedFrom query
// parameter. An authenticated request to the login page itself is redirected
// to the dashboard. All other paths pass through untouched.
func SessionGuard(resolve IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if path != adminPrefix && !strings.HasPrefix(path, adminPrefix+"/") {
			c.Next()
			return
		}

		_, authenticated := resolve(c)

		if path == loginPath {
			if authenticated {
				c.Redirect(http.StatusFound, adminPrefix)
				c.Abort()
				return
			}
			c.Next()
			return
		}

		if !authenticated {
			c.Redirect(http.StatusFound, loginPath+"?redirectedFrom="+url.QueryEscape(path))
			c.Abort()
			return
		}

		c.Next()
	}
}
