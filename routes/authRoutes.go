package routes

import (
	"ainamoi-portal-be/controllers"
	"ainamoi-portal-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the staff authentication routes
func AuthRoutes(r *gin.Engine, resolve middlewares.IdentityResolver) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.RegisterAdmin)
		auth.POST("/login", controllers.LoginAdmin)
		auth.POST("/logout", controllers.LogoutAdmin)
		auth.GET("/me", middlewares.AuthMiddleware(resolve), controllers.GetMe)
	}
}
