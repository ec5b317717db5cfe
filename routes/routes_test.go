package routes

import (
	"context"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"testing"

	"amusicbible-backend/config"
	"amusicbible-backend/models"
	"amusicbible-backend/testutils"

	"github.com/stretchr/testify/assert"
	stripe "github.com/stripe/stripe-go/v82"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

type nopGateway struct{}

func (nopGateway) CreateCustomer(*stripe.CustomerParams) (*stripe.Customer, error) {
	return &stripe.Customer{ID: "cus_1"}, nil
}

func (nopGateway) GetCustomer(id string) (*stripe.Customer, error) {
	return &stripe.Customer{ID: id}, nil
}

func (nopGateway) CreateCheckoutSession(*stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return &stripe.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/pay/cs_1"}, nil
}

type nopMailer struct{}

func (nopMailer) Send(string, []byte) error { return nil }

func testRouter() http.Handler {
	cfg := config.Config{
		JWTSecret:   testutils.JWTSecret,
		CORSOrigins: []string{"*"},
		Stripe:      config.Stripe{Currency: "inr"},
	}
	return SetupRouter(cfg, Dependencies{
		Gateway: nopGateway{},
		Mailer:  nopMailer{},
		Uploader: func(*multipart.FileHeader, string, string) (string, error) {
			return "https://res.cloudinary.com/amb/image/upload/x.png", nil
		},
		Database: func(context.Context) error { return nil },
	})
}

func TestPingAndMetrics(t *testing.T) {
	r := testRouter()

	resp := testutils.JSONRequest(r, http.MethodGet, "/ping", "", "")
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = testutils.JSONRequest(r, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, strings.Contains(resp.Body.String(), "amusicbible_http_requests_total"))
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := testRouter()
	userToken := testutils.Token(t, "user-1", models.UserRole)

	adminRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/membership"},
		{http.MethodPut, "/api/membership/accept/m-1"},
		{http.MethodDelete, "/api/membership/reject/m-1"},
		{http.MethodGet, "/api/contact"},
		{http.MethodPatch, "/api/contact/c-1/respond"},
		{http.MethodPost, "/api/category/create"},
		{http.MethodPost, "/api/blog/create"},
		{http.MethodPost, "/api/upload"},
	}

	for _, route := range adminRoutes {
		resp := testutils.JSONRequest(r, route.method, route.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.Code, route.path)

		resp = testutils.JSONRequest(r, route.method, route.path, "", userToken)
		assert.Equal(t, http.StatusForbidden, resp.Code, route.path)
	}
}

func TestAuthenticatedRoutesRequireToken(t *testing.T) {
	r := testRouter()

	resp := testutils.JSONRequest(r, http.MethodPost, "/api/contact/create", `{}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = testutils.JSONRequest(r, http.MethodGet, "/api/orders/user/user-1", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestPublicStripeRoutes(t *testing.T) {
	r := testRouter()

	resp := testutils.JSONRequest(r, http.MethodPost, "/api/stripe/create-checkout-session", `{"title":"Psalm 23"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Missing required fields")

	resp = testutils.JSONRequest(r, http.MethodPost, "/api/stripe/webhook", `{}`, "")
	assert.Equal(t, http.StatusInternalServerError, resp.Code, "no webhook secret configured")
}
