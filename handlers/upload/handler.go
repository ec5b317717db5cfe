package upload

import (
	"mime/multipart"
	"net/http"

	"amusicbible-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	uploadFolder = "amusicbible"
	uploadPrefix = "asset"
)

// Uploader stores a file and returns its public URL.
type Uploader func(file *multipart.FileHeader, folder string, prefix string) (string, error)

type Handler struct {
	upload Uploader
}

func New(upload Uploader) *Handler {
	return &Handler{upload: upload}
}

// @Summary Upload an image
// @Description Store an image on Cloudinary and return its secure URL
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image (JPG, PNG, GIF, WEBP, BMP, SVG; 10MB max)"
// @Success 200 {object} map[string]string "url: secure URL"
// @Failure 400 {object} map[string]string "error: File is required or invalid"
// @Failure 500 {object} map[string]string "error: Error uploading file"
// @Security BearerAuth
// @Router /api/upload [post]
func (h *Handler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil || file == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	if err := utils.ValidateImage(file); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := h.upload(file, uploadFolder, uploadPrefix)
	if err != nil {
		utils.LogErrorWithUser(c.GetString("user_id"), err, "Error uploading file in UploadFile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
