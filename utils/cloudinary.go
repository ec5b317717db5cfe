package utils

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"amusicbible-backend/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const maxUploadSize = 10 * 1024 * 1024

var (
	cld       *cloudinary.Cloudinary
	cloudName string
)

var validImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".svg"}

// InitCloudinary configures the client and checks the credentials with a ping.
func InitCloudinary(cfg config.Cloudinary) error {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return fmt.Errorf("cloudinary credentials are not configured")
	}

	client, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return fmt.Errorf("init cloudinary: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := client.Admin.Ping(ctx); err != nil {
		return fmt.Errorf("ping cloudinary: %w", err)
	}

	cld = client
	cloudName = cfg.CloudName
	LogSuccess("Cloudinary initialized")
	return nil
}

func boolPointer(b bool) *bool {
	return &b
}

func IsValidImageType(filename string) bool {
	lowerFilename := strings.ToLower(filename)
	for _, ext := range validImageExtensions {
		if strings.HasSuffix(lowerFilename, ext) {
			return true
		}
	}
	return false
}

// ValidateImage checks extension and size before anything is sent upstream.
func ValidateImage(file *multipart.FileHeader) error {
	if !IsValidImageType(file.Filename) {
		return fmt.Errorf("unsupported image format, use JPG, PNG, GIF, WEBP, BMP or SVG")
	}
	if file.Size > maxUploadSize {
		return fmt.Errorf("image too large, 10MB maximum")
	}
	return nil
}

// UploadImage stores the file under folder and returns its secure URL.
func UploadImage(file *multipart.FileHeader, folder string, prefix string) (string, error) {
	if err := ValidateImage(file); err != nil {
		return "", err
	}
	if cld == nil {
		return "", fmt.Errorf("cloudinary is not initialized")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		Folder:         folder,
		PublicID:       fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano()),
		UseFilename:    boolPointer(true),
		UniqueFilename: boolPointer(true),
		Overwrite:      boolPointer(true),
		ResourceType:   "auto",
	}

	uploadResult, err := cld.Upload.Upload(ctx, src, uploadParams)
	if err != nil {
		return "", fmt.Errorf("upload to cloudinary: %w", err)
	}

	if uploadResult.SecureURL == "" {
		if uploadResult.PublicID != "" {
			return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/%s", cloudName, uploadResult.PublicID), nil
		}
		return "", fmt.Errorf("cloudinary returned an empty secure url")
	}

	Logger.WithField("folder", folder).Info("Image uploaded")
	return uploadResult.SecureURL, nil
}

// DeleteImage removes an asset given the secure URL returned by UploadImage.
func DeleteImage(imageURL string) error {
	if cld == nil {
		return fmt.Errorf("cloudinary is not initialized")
	}
	publicID, err := publicIDFromURL(imageURL)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err = cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("destroy %s: %w", publicID, err)
	}
	return nil
}

// publicIDFromURL strips the delivery prefix, the optional version segment and
// the extension: .../upload/v123/blog_images/blog_1.png -> blog_images/blog_1
func publicIDFromURL(imageURL string) (string, error) {
	u, err := url.Parse(imageURL)
	if err != nil {
		return "", fmt.Errorf("parse image url: %w", err)
	}
	_, rest, found := strings.Cut(u.Path, "/upload/")
	if !found || rest == "" {
		return "", fmt.Errorf("not a cloudinary upload url: %s", imageURL)
	}
	segments := strings.Split(rest, "/")
	if len(segments) > 1 && isVersionSegment(segments[0]) {
		segments = segments[1:]
	}
	id := strings.Join(segments, "/")
	return strings.TrimSuffix(id, path.Ext(id)), nil
}

func isVersionSegment(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	_, err := strconv.ParseUint(s[1:], 10, 64)
	return err == nil
}
