package routes

import (
	"amusicbible-backend/config"
	"amusicbible-backend/handlers/upload"
	"amusicbible-backend/middleware"

	"github.com/gin-gonic/gin"
)

func UploadRoutes(r *gin.RouterGroup, cfg config.Config, deps Dependencies) {
	r.POST("/upload", middleware.AdminAuth(cfg.JWTSecret), upload.New(deps.Uploader).UploadFile)
}
