package mailsmodels

import (
	"errors"
	"testing"

	"amusicbible-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type recordingMailer struct {
	to      string
	message string
	err     error
}

func (m *recordingMailer) Send(to string, message []byte) error {
	m.to = to
	m.message = string(message)
	return m.err
}

func TestMembershipAccepted(t *testing.T) {
	mailer := &recordingMailer{}
	err := MembershipAccepted(mailer, MembershipStatusData{Name: "Sri", Email: "sri@example.com", SubscriptionPeriod: "6 months"})

	assert.NoError(t, err)
	assert.Equal(t, "sri@example.com", mailer.to)
	assert.Contains(t, mailer.message, "Subject: Welcome to aMusicBible membership")
	assert.Contains(t, mailer.message, "6 months membership has been accepted")
}

func TestMembershipRejected_PropagatesTransportError(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("smtp down")}
	err := MembershipRejected(mailer, MembershipStatusData{Name: "Sri", Email: "sri@example.com", SubscriptionPeriod: "1 year"})

	assert.EqualError(t, err, "smtp down")
	assert.Contains(t, mailer.message, "could not be accepted")
}

func TestContactConfirmation_EscapesUserInput(t *testing.T) {
	mailer := &recordingMailer{}
	err := ContactConfirmation(mailer, ContactEmailData{Name: "Sri", Email: "sri@example.com", Subject: "Help", Message: "<script>x</script>"})

	assert.NoError(t, err)
	assert.NotContains(t, mailer.message, "<script>")
	assert.Contains(t, mailer.message, "&lt;script&gt;")
}

func TestOrderConfirmation(t *testing.T) {
	mailer := &recordingMailer{}
	order := models.Order{
		FirstName: "Sri",
		Email:     "sri@example.com",
		Items:     models.OrderItems{{MusicID: "music-1", Title: "Psalm 23"}},
		Total:     decimal.RequireFromString("99.5"),
	}

	err := OrderConfirmation(mailer, order, "inr")

	assert.NoError(t, err)
	assert.Contains(t, mailer.message, "<li>Psalm 23</li>")
	assert.Contains(t, mailer.message, "Total: 99.50 INR")
}
