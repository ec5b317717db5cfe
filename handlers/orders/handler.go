package orders

import (
	"net/http"

	"amusicbible-backend/db"
	"amusicbible-backend/models"
	"amusicbible-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary List the orders of a user
// @Description Orders of the given user, newest first. The caller must be that user or an admin.
// @Tags orders
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} models.Order
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 500 {object} map[string]string "error: Error fetching orders"
// @Security BearerAuth
// @Router /api/orders/user/{userId} [get]
func GetUserOrders(c *gin.Context) {
	userID := c.Param("userId")
	callerID := c.GetString("user_id")

	if callerID != userID && c.GetString("role") != string(models.AdminRole) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only view your own orders"})
		return
	}

	orders := []models.Order{}
	if err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		utils.LogErrorWithUser(callerID, err, "Error fetching orders in GetUserOrders")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}
