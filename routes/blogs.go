package routes

import (
	"amusicbible-backend/config"
	"amusicbible-backend/handlers/blogs"
	"amusicbible-backend/middleware"

	"github.com/gin-gonic/gin"
)

func BlogsRoutes(r *gin.RouterGroup, cfg config.Config) {
	// Routes publiques
	r.GET("/blog", blogs.GetAllBlogs)
	r.GET("/blog/:id", blogs.GetBlogByID)

	r.POST("/blog/create", middleware.AdminAuth(cfg.JWTSecret), blogs.CreateBlog)
}
