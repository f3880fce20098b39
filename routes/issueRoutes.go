package routes

import (
	"ainamoi-portal-be/controllers"
	"ainamoi-portal-be/middlewares"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the public submission endpoint and the authenticated
// moderation endpoints. submitLimiter may be nil when Redis is not configured.
func IssueRoutes(r *gin.Engine, resolve middlewares.IdentityResolver, submitLimiter gin.HandlerFunc) {
	public := r.Group("/api/issues")
	{
		if submitLimiter != nil {
			public.POST("", submitLimiter, controllers.SubmitIssue)
		} else {
			public.POST("", controllers.SubmitIssue)
		}
	}

	admin := r.Group("/api/admin/issues", middlewares.AuthMiddleware(resolve))
	{
		admin.GET("", controllers.GetIssues)
		admin.PATCH("/:id/status", controllers.UpdateIssueStatus)
		admin.PATCH("/:id/priority", controllers.UpdateIssuePriority)
	}
}
