package routes

import (
	"time"

	"amusicbible-backend/config"
	"amusicbible-backend/handlers/ping"
	"amusicbible-backend/handlers/upload"
	"amusicbible-backend/metrics"
	"amusicbible-backend/middleware"
	"amusicbible-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the outbound services the handlers talk to.
type Dependencies struct {
	Gateway  utils.PaymentGateway
	Mailer   utils.Mailer
	Uploader upload.Uploader
	Database ping.Checker
}

func SetupRouter(cfg config.Config, deps Dependencies) *gin.Engine {
	metrics.Register()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.RequestMetrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ping", ping.New(deps.Database).HandlePing)

	api := r.Group("/api")
	AuthRoutes(api, cfg)
	StripeRoutes(api, cfg, deps)
	OrdersRoutes(api, cfg)
	MembershipRoutes(api, cfg, deps)
	ContactsRoutes(api, cfg, deps)
	CategoriesRoutes(api, cfg)
	BlogsRoutes(api, cfg)
	UploadRoutes(api, cfg, deps)

	return r
}
