package routes

import (
	"amusicbible-backend/config"
	"amusicbible-backend/handlers/auth"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.RouterGroup, cfg config.Config) {
	h := auth.New(cfg.JWTSecret)
	authRoutes := r.Group("/auth")
	authRoutes.POST("/register", h.Register)
	authRoutes.POST("/login", h.Login)
}
