package memberships

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"amusicbible-backend/db"
	"amusicbible-backend/metrics"
	"amusicbible-backend/models"
	"amusicbible-backend/utils"
	mailsmodels "amusicbible-backend/utils/mails-models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// now is replaced in tests.
var now = time.Now

type Handler struct {
	mailer utils.Mailer
}

func New(mailer utils.Mailer) *Handler {
	return &Handler{mailer: mailer}
}

// @Summary Apply for a membership
// @Description Submit a membership application. The application stays pending until an admin accepts or rejects it.
// @Tags membership
// @Accept json
// @Produce json
// @Param membership body models.MembershipCreate true "Membership application"
// @Success 201 {object} models.Membership
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Error creating membership"
// @Router /api/membership/create [post]
func (h *Handler) CreateMembership(c *gin.Context) {
	var input models.MembershipCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if !utils.ValidateEmail(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	membership := models.Membership{
		Name:               strings.TrimSpace(input.Name),
		Email:              strings.TrimSpace(input.Email),
		Phone:              strings.TrimSpace(input.Phone),
		Country:            strings.TrimSpace(input.Country),
		City:               input.City,
		Address:            input.Address,
		SubscriptionPeriod: input.SubscriptionPeriod,
		IsMember:           false,
	}

	if err := db.DB.Create(&membership).Error; err != nil {
		utils.LogError(err, "Error creating membership in CreateMembership")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating membership"})
		return
	}

	metrics.RecordMembershipTransition("created")
	utils.LogEvent("Membership application received", map[string]interface{}{
		"membership_id":       membership.ID,
		"subscription_period": membership.SubscriptionPeriod,
	})
	c.JSON(http.StatusCreated, membership)
}

// @Summary List membership applications
// @Description Paginated list of memberships with an optional case-insensitive search over name, email and country
// @Tags membership
// @Produce json
// @Param searchTerm query string false "Search term"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} map[string]interface{} "memberships, totalMemberships, lastMonthMemberships, page, limit"
// @Failure 400 {object} map[string]string "error: page and limit must be positive integers"
// @Failure 500 {object} map[string]string "error: Error fetching memberships"
// @Security BearerAuth
// @Router /api/membership [get]
func (h *Handler) ListMemberships(c *gin.Context) {
	page, err := positiveQueryInt(c, "page", defaultPage)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page and limit must be positive integers"})
		return
	}
	limit, err := positiveQueryInt(c, "limit", defaultLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page and limit must be positive integers"})
		return
	}
	searchTerm := strings.TrimSpace(c.Query("searchTerm"))

	var total int64
	if err := searchQuery(searchTerm).Count(&total).Error; err != nil {
		utils.LogError(err, "Error counting memberships in ListMemberships")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching memberships"})
		return
	}

	memberships := []models.Membership{}
	if err := searchQuery(searchTerm).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&memberships).Error; err != nil {
		utils.LogError(err, "Error fetching memberships in ListMemberships")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching memberships"})
		return
	}

	start, end := previousMonth(now())
	var lastMonth int64
	if err := db.DB.Model(&models.Membership{}).
		Where("updated_at >= ? AND updated_at < ?", start, end).
		Count(&lastMonth).Error; err != nil {
		utils.LogError(err, "Error counting last month memberships in ListMemberships")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching memberships"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"memberships":          memberships,
		"totalMemberships":     total,
		"lastMonthMemberships": lastMonth,
		"page":                 page,
		"limit":                limit,
	})
}

// @Summary Accept a membership application
// @Description Mark a pending application as a member and notify the applicant
// @Tags membership
// @Produce json
// @Param membershipId path string true "Membership ID"
// @Success 200 {object} map[string]interface{} "message, membership"
// @Failure 404 {object} map[string]string "error: Membership not found"
// @Failure 409 {object} map[string]string "error: Membership already accepted or no longer pending"
// @Failure 500 {object} map[string]string "error: Error message"
// @Security BearerAuth
// @Router /api/membership/accept/{membershipId} [put]
func (h *Handler) AcceptMembership(c *gin.Context) {
	membership, ok := loadPending(c)
	if !ok {
		return
	}

	result := db.DB.Model(&membership).Where("is_member = ?", false).Update("is_member", true)
	if result.Error != nil {
		utils.LogError(result.Error, "Error accepting membership in AcceptMembership")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error accepting membership"})
		return
	}
	if result.RowsAffected == 0 {
		// decided by a concurrent accept or reject
		c.JSON(http.StatusConflict, gin.H{"error": "Membership is no longer pending"})
		return
	}
	metrics.RecordMembershipTransition("accepted")

	// the flag is already committed when the notification fails
	if err := mailsmodels.MembershipAccepted(h.mailer, statusData(membership)); err != nil {
		utils.LogError(err, "Acceptance email failed for membership "+membership.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Membership accepted but notification email failed"})
		return
	}

	utils.LogSuccess("Membership " + membership.ID + " accepted")
	c.JSON(http.StatusOK, gin.H{
		"message":    "Membership accepted",
		"membership": membership,
	})
}

// @Summary Reject a membership application
// @Description Delete a pending application and notify the applicant
// @Tags membership
// @Produce json
// @Param membershipId path string true "Membership ID"
// @Success 200 {object} map[string]string "message: Membership rejected"
// @Failure 404 {object} map[string]string "error: Membership not found"
// @Failure 409 {object} map[string]string "error: Membership already accepted or no longer pending"
// @Failure 500 {object} map[string]string "error: Error message"
// @Security BearerAuth
// @Router /api/membership/reject/{membershipId} [delete]
func (h *Handler) RejectMembership(c *gin.Context) {
	membership, ok := loadPending(c)
	if !ok {
		return
	}

	result := db.DB.Where("is_member = ?", false).Delete(&membership)
	if result.Error != nil {
		utils.LogError(result.Error, "Error rejecting membership in RejectMembership")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error rejecting membership"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Membership is no longer pending"})
		return
	}
	metrics.RecordMembershipTransition("rejected")

	if err := mailsmodels.MembershipRejected(h.mailer, statusData(membership)); err != nil {
		utils.LogError(err, "Rejection email failed for membership "+membership.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Membership rejected but notification email failed"})
		return
	}

	utils.LogSuccess("Membership " + membership.ID + " rejected")
	c.JSON(http.StatusOK, gin.H{"message": "Membership rejected"})
}

// loadPending writes the error response itself when the membership cannot
// transition.
func loadPending(c *gin.Context) (models.Membership, bool) {
	var membership models.Membership
	id := c.Param("membershipId")

	if err := db.DB.First(&membership, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Membership not found"})
			return membership, false
		}
		utils.LogError(err, "Error fetching membership "+id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching membership"})
		return membership, false
	}

	if membership.IsMember {
		c.JSON(http.StatusConflict, gin.H{"error": "Membership already accepted"})
		return membership, false
	}
	return membership, true
}

func statusData(m models.Membership) mailsmodels.MembershipStatusData {
	return mailsmodels.MembershipStatusData{
		Name:               m.Name,
		Email:              m.Email,
		SubscriptionPeriod: m.SubscriptionPeriod,
	}
}

func searchQuery(term string) *gorm.DB {
	query := db.DB.Model(&models.Membership{})
	if term == "" {
		return query
	}
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	return query.Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\' OR LOWER(country) LIKE ? ESCAPE '\'`,
		pattern, pattern, pattern)
}

// likeEscaper makes the search term match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func positiveQueryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if value < 1 {
		return 0, errors.New(key + " must be positive")
	}
	return value, nil
}

// previousMonth returns [first day of last month, first day of this month).
func previousMonth(t time.Time) (time.Time, time.Time) {
	end := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return end.AddDate(0, -1, 0), end
}
