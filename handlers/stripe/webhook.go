package stripe

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"amusicbible-backend/db"
	"amusicbible-backend/metrics"
	"amusicbible-backend/models"
	"amusicbible-backend/utils"
	mailsmodels "amusicbible-backend/utils/mails-models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"gorm.io/gorm"
)

const maxBodyBytes = int64(65536)

// Webhook receives Stripe events. Every verified event is acknowledged with
// 200; persistence failures are only logged.
// @Summary Stripe webhook
// @Description Verify the Stripe-Signature header and record completed checkout sessions as orders
// @Tags stripe
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} map[string]interface{} "received: true"
// @Failure 400 {object} map[string]string "error: Signature verification failed"
// @Failure 500 {object} map[string]string "error: Webhook secret not configured"
// @Router /api/stripe/webhook [post]
func (h *Handler) Webhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not read request body"})
		return
	}

	if h.cfg.WebhookSecret == "" {
		utils.LogError(nil, "STRIPE_WEBHOOK_SECRET is not configured, refusing webhook")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret not configured"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(payload, c.GetHeader("Stripe-Signature"), h.cfg.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		metrics.RecordWebhookEvent("unknown", "bad_signature")
		utils.LogError(err, "Stripe signature verification failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		outcome, message := h.handleCheckoutSessionCompleted(event)
		metrics.RecordWebhookEvent(string(event.Type), outcome)
		c.JSON(http.StatusOK, gin.H{"received": true, "message": message})
	default:
		metrics.RecordWebhookEvent(string(event.Type), "ignored")
		c.JSON(http.StatusOK, gin.H{"received": true, "message": "Event ignored"})
	}
}

func (h *Handler) handleCheckoutSessionCompleted(event stripe.Event) (string, string) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		utils.LogError(err, "Could not parse checkout session")
		return "invalid", "Invalid checkout session payload"
	}

	metadata := h.purchaseMetadata(&session)
	log := utils.Logger.WithFields(logrus.Fields{
		"source":     "webhook",
		"event_id":   event.ID,
		"session_id": session.ID,
		"user_id":    metadata[metaUserID],
	})

	var order models.Order
	err := db.DB.Where("session_id = ?", session.ID).First(&order).Error
	switch {
	case err == nil && order.Status == models.OrderCompleted:
		log.Info("Order already completed, ignoring redelivery")
		return "duplicate", "Order already recorded"

	case err == nil:
		applyPurchaser(&order, &session)
		order.Status = models.OrderCompleted
		if err := db.DB.Save(&order).Error; err != nil {
			log.WithField("error", err.Error()).Error("Could not complete pending order")
			return "failed", "Order could not be saved"
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		if metadata[metaUserID] == "" || metadata[metaMusicID] == "" {
			log.Error("Checkout session has no purchase metadata")
			return "invalid", "Missing purchase metadata"
		}
		order = models.Order{
			SessionID: session.ID,
			UserID:    metadata[metaUserID],
			Status:    models.OrderCompleted,
			Items: models.OrderItems{
				{MusicID: metadata[metaMusicID], Title: metadata[metaTitle], Image: metadata[metaImage]},
			},
		}
		applyPurchaser(&order, &session)
		if err := db.DB.Create(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				log.WithField("error", err.Error()).Error("Order already exists for this session id")
				return "duplicate", "Order already exists for this session"
			}
			log.WithField("error", err.Error()).Error("Could not save order")
			return "failed", "Order could not be saved"
		}

	default:
		log.WithField("error", err.Error()).Error("Could not load order")
		return "failed", "Order could not be saved"
	}

	if order.Email != "" {
		if err := mailsmodels.OrderConfirmation(h.mailer, order, h.cfg.Currency); err != nil {
			log.WithField("error", err.Error()).Warn("Order confirmation email not sent")
		}
	}

	log.Info("Order completed")
	return "completed", "Order recorded"
}

// purchaseMetadata reads the metadata stored on the customer, falling back
// to the copy kept on the session.
func (h *Handler) purchaseMetadata(session *stripe.CheckoutSession) map[string]string {
	metadata := map[string]string{}
	if session.Customer != nil && session.Customer.ID != "" {
		cust, err := h.gateway.GetCustomer(session.Customer.ID)
		if err != nil {
			utils.LogError(err, "Could not retrieve Stripe customer "+session.Customer.ID)
		} else {
			for key, value := range cust.Metadata {
				metadata[key] = value
			}
		}
	}
	for key, value := range session.Metadata {
		if _, ok := metadata[key]; !ok {
			metadata[key] = value
		}
	}
	return metadata
}

func applyPurchaser(order *models.Order, session *stripe.CheckoutSession) {
	if details := session.CustomerDetails; details != nil {
		order.FirstName, order.LastName = splitName(details.Name)
		order.Email = details.Email
		order.Phone = details.Phone
		if addr := details.Address; addr != nil {
			order.AddressLine1 = addr.Line1
			order.AddressLine2 = addr.Line2
			order.City = addr.City
			order.State = addr.State
			order.PostalCode = addr.PostalCode
			order.Country = addr.Country
		}
	}
	order.Subtotal = decimal.New(session.AmountSubtotal, -2)
	order.Total = decimal.New(session.AmountTotal, -2)
}

// splitName keeps the first whitespace-separated token as the first name.
func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
