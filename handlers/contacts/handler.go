package contacts

import (
	"errors"
	"net/http"

	"amusicbible-backend/db"
	"amusicbible-backend/models"
	"amusicbible-backend/utils"
	mailsmodels "amusicbible-backend/utils/mails-models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	mailer utils.Mailer
}

func New(mailer utils.Mailer) *Handler {
	return &Handler{mailer: mailer}
}

// @Summary Create a new contact request
// @Description Submit a support request; the user is taken from the token
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body models.ContactCreate true "Contact information"
// @Success 201 {object} map[string]interface{} "message: Contact request submitted successfully, id: contact ID"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Security BearerAuth
// @Router /api/contact/create [post]
func (h *Handler) CreateContact(c *gin.Context) {
	var contactInput models.ContactCreate

	if err := c.ShouldBindJSON(&contactInput); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if !utils.ValidateEmail(contactInput.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid email format",
		})
		return
	}

	userID := c.GetString("user_id")

	contact := models.Contact{
		UserID:    userID,
		Name:      contactInput.Name,
		Email:     contactInput.Email,
		Subject:   contactInput.Subject,
		Message:   contactInput.Message,
		Responded: false,
	}

	if err := db.DB.Create(&contact).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating contact in CreateContact")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error creating contact request",
		})
		return
	}

	if err := mailsmodels.ContactConfirmation(h.mailer, mailsmodels.ContactEmailData{
		Name:    contact.Name,
		Email:   contact.Email,
		Subject: contact.Subject,
		Message: contact.Message,
	}); err != nil {
		utils.LogErrorWithUser(userID, err, "Contact confirmation email not sent")
	}

	utils.LogSuccessWithUser(userID, "Contact request submitted in CreateContact")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Contact request submitted successfully",
		"id":      contact.ID,
	})
}

// @Summary List contact requests
// @Description All contact requests, newest first
// @Tags contacts
// @Produce json
// @Success 200 {array} models.Contact
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Security BearerAuth
// @Router /api/contact [get]
func (h *Handler) GetContacts(c *gin.Context) {
	contacts := []models.Contact{}
	if err := db.DB.Order("created_at DESC").Find(&contacts).Error; err != nil {
		utils.LogError(err, "Error fetching contacts in GetContacts")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error fetching contact requests",
		})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// @Summary Mark a contact request as responded
// @Tags contacts
// @Produce json
// @Param contactId path string true "Contact ID"
// @Success 200 {object} models.Contact
// @Failure 404 {object} map[string]interface{} "error: Contact request not found"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Security BearerAuth
// @Router /api/contact/{contactId}/respond [patch]
func (h *Handler) MarkResponded(c *gin.Context) {
	var contact models.Contact
	id := c.Param("contactId")

	if err := db.DB.First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact request not found"})
			return
		}
		utils.LogError(err, "Error fetching contact in MarkResponded")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching contact request"})
		return
	}

	if !contact.Responded {
		if err := db.DB.Model(&contact).Update("responded", true).Error; err != nil {
			utils.LogError(err, "Error updating contact in MarkResponded")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating contact request"})
			return
		}
	}

	utils.LogSuccessWithUser(c.GetString("user_id"), "Contact "+contact.ID+" marked as responded")
	c.JSON(http.StatusOK, contact)
}
