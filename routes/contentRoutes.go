package routes

import (
	"ainamoi-portal-be/controllers"
	"ainamoi-portal-be/middlewares"

	"github.com/gin-gonic/gin"
)

// ContentRoutes sets up the public reads and admin CRUD for the site content:
// profile, blog, gallery, CDF records, and attachment blobs.
func ContentRoutes(r *gin.Engine, resolve middlewares.IdentityResolver) {
	api := r.Group("/api")
	{
		api.GET("/politician", controllers.GetPolitician)
		api.GET("/blog", controllers.GetBlogPosts)
		api.GET("/gallery", controllers.GetGallery)
		api.GET("/cdf/allocations", controllers.GetCDFAllocations)
		api.GET("/cdf/projects", controllers.GetCDFProjects)
	}

	r.POST("/api/uploads", controllers.UploadAttachment)
	r.GET("/uploads/:id", controllers.ServeAttachment)

	admin := r.Group("/api/admin", middlewares.AuthMiddleware(resolve))
	{
		admin.POST("/politician", controllers.UpdatePolitician)

		admin.POST("/blog", controllers.CreateBlogPost)
		admin.PUT("/blog/:id", controllers.UpdateBlogPost)
		admin.DELETE("/blog/:id", controllers.DeleteBlogPost)

		admin.POST("/gallery/albums", controllers.CreateAlbum)
		admin.PUT("/gallery/albums/:id", controllers.UpdateAlbum)
		admin.DELETE("/gallery/albums/:id", controllers.DeleteAlbum)
		admin.POST("/gallery/albums/:id/images", controllers.AddAlbumImage)
		admin.DELETE("/gallery/images/:imageId", controllers.DeleteAlbumImage)

		admin.POST("/cdf/allocations", controllers.CreateCDFAllocation)
		admin.PUT("/cdf/allocations/:id", controllers.UpdateCDFAllocation)
		admin.DELETE("/cdf/allocations/:id", controllers.DeleteCDFAllocation)

		admin.POST("/cdf/projects", controllers.CreateCDFProject)
		admin.PUT("/cdf/projects/:id", controllers.UpdateCDFProject)
		admin.DELETE("/cdf/projects/:id", controllers.DeleteCDFProject)
	}
}
