package routes

import (
	"amusicbible-backend/config"
	"amusicbible-backend/handlers/memberships"
	"amusicbible-backend/middleware"

	"github.com/gin-gonic/gin"
)

func MembershipRoutes(r *gin.RouterGroup, cfg config.Config, deps Dependencies) {
	h := memberships.New(deps.Mailer)

	membershipRoutes := r.Group("/membership")
	membershipRoutes.POST("/create", h.CreateMembership)

	// Routes admin
	adminRoutes := r.Group("/membership")
	adminRoutes.Use(middleware.AdminAuth(cfg.JWTSecret))
	{
		adminRoutes.GET("", h.ListMemberships)
		adminRoutes.PUT("/accept/:membershipId", h.AcceptMembership)
		adminRoutes.DELETE("/reject/:membershipId", h.RejectMembership)
	}
}
