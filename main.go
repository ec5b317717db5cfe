package main

import (
	"context"
	"log"

	"amusicbible-backend/config"
	"amusicbible-backend/db"
	_ "amusicbible-backend/docs"
	"amusicbible-backend/routes"
	"amusicbible-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title aMusicBible API
// @version 1.0
// @description Storefront backend: Stripe checkout, orders, memberships, contacts and blog content
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	utils.InitLogger(cfg.Log.Level, cfg.Log.Dir)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = utils.LogWriter()

	if err := db.InitDB(cfg.Database); err != nil {
		utils.LogError(err, "Database initialization failed")
		log.Fatal(err)
	}

	if err := utils.InitCloudinary(cfg.Cloudinary); err != nil {
		utils.Logger.WithField("error", err.Error()).Warn("Cloudinary initialization failed, uploads are disabled")
	}

	if cfg.Stripe.WebhookSecret == "" {
		utils.Logger.Warn("STRIPE_WEBHOOK_SECRET is empty, webhook events will be refused")
	}

	r := routes.SetupRouter(cfg, routes.Dependencies{
		Gateway:  utils.NewStripeGateway(cfg.Stripe.SecretKey),
		Mailer:   utils.NewSMTPMailer(cfg.Mail),
		Uploader: utils.UploadImage,
		Database: pingDatabase,
	})

	utils.LogInfo("Server listening on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}

func pingDatabase(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
