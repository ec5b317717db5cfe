package routes

import (
	"amusicbible-backend/config"
	"amusicbible-backend/handlers/contacts"
	"amusicbible-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ContactsRoutes(r *gin.RouterGroup, cfg config.Config, deps Dependencies) {
	h := contacts.New(deps.Mailer)

	r.POST("/contact/create", middleware.JWTAuth(cfg.JWTSecret), h.CreateContact)

	adminRoutes := r.Group("/contact")
	adminRoutes.Use(middleware.AdminAuth(cfg.JWTSecret))
	{
		adminRoutes.GET("", h.GetContacts)
		adminRoutes.PATCH("/:contactId/respond", h.MarkResponded)
	}
}
