package routes

import (
	"amusicbible-backend/config"
	"amusicbible-backend/handlers/stripe"

	"github.com/gin-gonic/gin"
)

// StripeRoutes are public: checkout is opened before login-gated pages and the
// webhook authenticates with the Stripe-Signature header.
func StripeRoutes(r *gin.RouterGroup, cfg config.Config, deps Dependencies) {
	h := stripe.New(deps.Gateway, deps.Mailer, cfg.Stripe)
	stripeRoutes := r.Group("/stripe")
	stripeRoutes.POST("/create-checkout-session", h.CreateCheckoutSession)
	stripeRoutes.POST("/webhook", h.Webhook)
}
