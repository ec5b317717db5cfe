package utils

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidImageType(t *testing.T) {
	assert.True(t, IsValidImageType("cover.JPG"))
	assert.True(t, IsValidImageType("cover.webp"))
	assert.False(t, IsValidImageType("track.mp3"))
	assert.False(t, IsValidImageType("noextension"))
}

func TestValidateImage_TooLarge(t *testing.T) {
	err := ValidateImage(&multipart.FileHeader{Filename: "cover.png", Size: maxUploadSize + 1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestPublicIDFromURL(t *testing.T) {
	id, err := publicIDFromURL("https://res.cloudinary.com/amb/image/upload/v1712/blog_images/blog_42.png")
	assert.NoError(t, err)
	assert.Equal(t, "blog_images/blog_42", id)

	id, err = publicIDFromURL("https://res.cloudinary.com/amb/image/upload/uploads/upload_1.jpg")
	assert.NoError(t, err)
	assert.Equal(t, "uploads/upload_1", id)

	_, err = publicIDFromURL("https://example.com/picture.png")
	assert.Error(t, err)
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("sri.ram@example.com"))
	assert.False(t, ValidateEmail("invalid-email"))
	assert.False(t, ValidateEmail("Sri <sri@example.com>"))
	assert.False(t, ValidateEmail("sri@localhost"))
}
