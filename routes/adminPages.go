package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminPageRoutes registers the dashboard shell routes the session guard
// protects. The dashboard itself is a separate frontend; these endpoints
// only exist so the guard has concrete paths to gate.
func AdminPageRoutes(r *gin.Engine) {
	r.GET("/admin", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": "dashboard"})
	})
	r.GET("/admin/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": "login", "redirectedFrom": c.Query("redirectedFrom")})
	})
}
