package routes

import (
	"amusicbible-backend/config"
	"amusicbible-backend/handlers/categories"
	"amusicbible-backend/middleware"

	"github.com/gin-gonic/gin"
)

func CategoriesRoutes(r *gin.RouterGroup, cfg config.Config) {
	r.GET("/category", categories.GetAllCategories)
	r.POST("/category/create", middleware.AdminAuth(cfg.JWTSecret), categories.CreateCategory)
}
