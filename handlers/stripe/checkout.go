package stripe

import (
	"net/http"

	"amusicbible-backend/db"
	"amusicbible-backend/metrics"
	"amusicbible-backend/models"
	"amusicbible-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v82"
)

// minimumUnitAmount is the smallest accepted charge in minor units (50 major units).
const minimumUnitAmount int64 = 5000

// maximumUnitAmount is the largest charge Stripe accepts in minor units.
const maximumUnitAmount int64 = 99999999

var hundred = decimal.NewFromInt(100)

// CreateCheckoutSession starts a Stripe hosted checkout for one track
// @Summary Create a Stripe Checkout session
// @Description Create a customer carrying the purchase metadata, open a hosted checkout page for a single track and record a pending order. Returns the URL the browser must be redirected to.
// @Tags stripe
// @Accept json
// @Produce json
// @Param checkout body models.CheckoutSessionCreate true "Track being purchased"
// @Success 200 {object} map[string]string "url: Stripe Checkout URL"
// @Failure 400 {object} map[string]string "error: Missing required fields or amount below minimum"
// @Failure 500 {object} map[string]string "error: Failed to create checkout session"
// @Router /api/stripe/create-checkout-session [post]
func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	var input models.CheckoutSessionCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if !input.HasRequiredFields() {
		metrics.RecordCheckoutSession("invalid")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	minor := input.Price.Mul(hundred).Round(0)
	if minor.GreaterThan(decimal.NewFromInt(maximumUnitAmount)) {
		metrics.RecordCheckoutSession("above_maximum")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Maximum order amount is 999999.99"})
		return
	}
	unitAmount := minor.IntPart()
	if unitAmount < minimumUnitAmount {
		metrics.RecordCheckoutSession("below_minimum")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Minimum order amount is 50"})
		return
	}

	metadata := map[string]string{
		metaMusicID: input.MusicID,
		metaTitle:   input.Title,
		metaImage:   input.Image,
		metaUserID:  input.UserID,
	}

	custParams := &stripe.CustomerParams{}
	for key, value := range metadata {
		custParams.AddMetadata(key, value)
	}
	cust, err := h.gateway.CreateCustomer(custParams)
	if err != nil {
		metrics.RecordCheckoutSession("gateway_error")
		utils.LogErrorWithUser(input.UserID, err, "Stripe customer creation failed in CreateCheckoutSession")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	params := &stripe.CheckoutSessionParams{
		Customer:           stripe.String(cust.ID),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(h.cfg.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:   stripe.String(input.Title),
						Images: stripe.StringSlice([]string{input.Image}),
					},
					UnitAmount: stripe.Int64(unitAmount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		BillingAddressCollection: stripe.String("required"),
		PhoneNumberCollection: &stripe.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripe.Bool(true),
		},
		ClientReferenceID: stripe.String(input.UserID),
		SuccessURL:        stripe.String(h.cfg.SuccessURL),
		CancelURL:         stripe.String(h.cfg.CancelURL),
	}
	for key, value := range metadata {
		params.AddMetadata(key, value)
	}

	s, err := h.gateway.CreateCheckoutSession(params)
	if err != nil {
		metrics.RecordCheckoutSession("gateway_error")
		utils.LogErrorWithUser(input.UserID, err, "Stripe session creation failed in CreateCheckoutSession")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	amount := decimal.New(unitAmount, -2)
	order := models.Order{
		SessionID: s.ID,
		UserID:    input.UserID,
		Status:    models.OrderPending,
		Items: models.OrderItems{
			{MusicID: input.MusicID, Title: input.Title, Image: input.Image},
		},
		Subtotal: amount,
		Total:    amount,
	}
	// the webhook rebuilds the order from the customer metadata when this fails
	if err := db.DB.Create(&order).Error; err != nil {
		utils.LogErrorWithUser(input.UserID, err, "Pending order not saved in CreateCheckoutSession")
	}

	metrics.RecordCheckoutSession("created")
	utils.LogSuccessWithUser(input.UserID, "Checkout session created in CreateCheckoutSession")
	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}
