package stripe

import (
	"amusicbible-backend/config"
	"amusicbible-backend/utils"
)

// Metadata keys stored on the Stripe customer and session so the webhook can
// rebuild the order context.
const (
	metaMusicID = "musicId"
	metaTitle   = "title"
	metaImage   = "image"
	metaUserID  = "userId"
)

type Handler struct {
	gateway utils.PaymentGateway
	mailer  utils.Mailer
	cfg     config.Stripe
}

func New(gateway utils.PaymentGateway, mailer utils.Mailer, cfg config.Stripe) *Handler {
	return &Handler{
		gateway: gateway,
		mailer:  mailer,
		cfg:     cfg,
	}
}
