package blogs

import (
	"errors"
	"net/http"

	"amusicbible-backend/db"
	"amusicbible-backend/models"
	"amusicbible-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Publish a blog article
// @Description Create a blog article attached to existing categories
// @Tags blogs
// @Accept json
// @Produce json
// @Param blog body models.BlogCreate true "Blog article"
// @Security BearerAuth
// @Success 201 {object} models.Blog
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/blog/create [post]
func CreateBlog(c *gin.Context) {
	var blogCreate models.BlogCreate
	if err := c.ShouldBindJSON(&blogCreate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	blog := models.Blog{
		Title:      blogCreate.Title,
		Content:    blogCreate.Content,
		ImageURL:   blogCreate.ImageURL,
		Author:     blogCreate.Author,
		Categories: []models.Category{},
	}

	if len(blogCreate.Categories) > 0 {
		var categories []models.Category
		if err := db.DB.Where("id IN ?", blogCreate.Categories).Find(&categories).Error; err != nil {
			utils.LogError(err, "Error finding categories in CreateBlog")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error finding categories"})
			return
		}
		if len(categories) != len(uniq(blogCreate.Categories)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
		blog.Categories = categories
	}

	if err := db.DB.Create(&blog).Error; err != nil {
		utils.LogError(err, "Error creating blog in CreateBlog")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating blog"})
		return
	}

	utils.LogSuccessWithUser(c.GetString("user_id"), "Blog "+blog.ID+" published")
	c.JSON(http.StatusCreated, blog)
}

// @Summary Get all blog articles
// @Description Articles newest first, optionally filtered by category
// @Tags blogs
// @Produce json
// @Param category query string false "Filter by category ID"
// @Success 200 {array} models.Blog
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/blog [get]
func GetAllBlogs(c *gin.Context) {
	blogs := []models.Blog{}
	query := db.DB.Preload("Categories").Order("blogs.created_at DESC")

	if categoryID := c.Query("category"); categoryID != "" {
		query = query.Joins("JOIN blog_categories ON blogs.id = blog_categories.blog_id").
			Where("blog_categories.category_id = ?", categoryID)
	}

	if err := query.Find(&blogs).Error; err != nil {
		utils.LogError(err, "Error fetching blogs in GetAllBlogs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving blogs"})
		return
	}

	c.JSON(http.StatusOK, blogs)
}

// @Summary Get a blog article by ID
// @Tags blogs
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} models.Blog
// @Failure 404 {object} map[string]string "error: Blog not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/blog/{id} [get]
func GetBlogByID(c *gin.Context) {
	var blog models.Blog

	if err := db.DB.Preload("Categories").First(&blog, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}
		utils.LogError(err, "Error fetching blog in GetBlogByID")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving blog"})
		return
	}

	c.JSON(http.StatusOK, blog)
}

func uniq(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
