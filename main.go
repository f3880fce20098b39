package main

import (
	"net/http"
	"os"

	"ainamoi-portal-be/config"
	"ainamoi-portal-be/controllers"
	"ainamoi-portal-be/middlewares"
	"ainamoi-portal-be/models"
	"ainamoi-portal-be/repository"
	"ainamoi-portal-be/routes"
	"ainamoi-portal-be/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		config.Log.Info("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		config.Log.Fatal("Failed to connect to MongoDB")
	}
	config.Log.Info("MongoDB connection established successfully!")

	if err := models.EnsureAdminEmailIndex(config.GetCollection("admins")); err != nil {
		config.Log.WithError(err).Fatal("Failed to create admin email index")
	}

	issueRepo := repository.NewIssueRepo(config.GetCollection("issues"))
	controllers.InitIssueController(services.NewIssueService(issueRepo))
	controllers.InitUploadController(repository.NewBlobRepo(db))

	// Public submissions are rate limited only when Redis is configured
	var submitLimiter gin.HandlerFunc
	if os.Getenv("REDIS_ADDRESS") != "" {
		config.ConnectRedis()
		submitLimiter = middlewares.SubmitRateLimiter(10, config.RedisClient)
	}

	r := gin.Default()

	if origin := os.Getenv("FRONTEND_ORIGIN"); origin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{origin},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	r.Use(middlewares.SessionGuard(middlewares.CookieIdentity))

	routes.IssueRoutes(r, middlewares.CookieIdentity, submitLimiter)
	routes.AuthRoutes(r, middlewares.CookieIdentity)
	routes.ContentRoutes(r, middlewares.CookieIdentity)
	routes.AdminPageRoutes(r)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		config.Log.WithError(err).Fatal("Failed to start server")
	}
}
