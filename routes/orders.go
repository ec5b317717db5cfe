package routes

import (
	"amusicbible-backend/config"
	"amusicbible-backend/handlers/orders"
	"amusicbible-backend/middleware"

	"github.com/gin-gonic/gin"
)

func OrdersRoutes(r *gin.RouterGroup, cfg config.Config) {
	ordersRoutes := r.Group("/orders")
	ordersRoutes.Use(middleware.JWTAuth(cfg.JWTSecret))
	ordersRoutes.GET("/user/:userId", orders.GetUserOrders)
}
