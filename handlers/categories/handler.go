package categories

import (
	"errors"
	"net/http"
	"strings"

	"amusicbible-backend/db"
	"amusicbible-backend/models"
	"amusicbible-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Create a new category
// @Description Create a blog category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body models.CategoryCreate true "Category information"
// @Security BearerAuth
// @Success 201 {object} models.Category
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 409 {object} map[string]string "error: Category already exists"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/category/create [post]
func CreateCategory(c *gin.Context) {
	var categoryCreate models.CategoryCreate
	isWellFormatted := c.ShouldBindJSON(&categoryCreate)
	if isWellFormatted != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + isWellFormatted.Error(),
		})
		return
	}

	category := models.Category{
		Name: strings.TrimSpace(categoryCreate.Name),
	}

	result := db.DB.Create(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Category already exists",
			})
			return
		}
		utils.LogError(result.Error, "Error creating category in CreateCategory")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error creating category",
		})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// @Summary Get all categories
// @Description Retrieve all categories sorted by name
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/category [get]
func GetAllCategories(c *gin.Context) {
	categories := []models.Category{}

	result := db.DB.Order("name ASC").Find(&categories)
	if result.Error != nil {
		utils.LogError(result.Error, "Error fetching categories in GetAllCategories")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error fetching categories",
		})
		return
	}

	c.JSON(http.StatusOK, categories)
}
