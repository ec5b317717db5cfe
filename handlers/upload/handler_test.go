package upload

import (
	"bytes"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"amusicbible-backend/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func setupRouter(upload Uploader) *gin.Engine {
	r := testutils.SetupTestRouter()
	r.POST("/api/upload", New(upload).UploadFile)
	return r
}

func multipartRequest(field, filename string) *http.Request {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	if field != "" {
		part, _ := writer.CreateFormFile(field, filename)
		part.Write([]byte("fake image content"))
	}
	writer.Close()

	req, _ := http.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadFile_Success(t *testing.T) {
	var gotFolder string
	r := setupRouter(func(file *multipart.FileHeader, folder string, prefix string) (string, error) {
		gotFolder = folder
		return "https://res.cloudinary.com/amb/image/upload/v1/amusicbible/" + file.Filename, nil
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, multipartRequest("file", "cover.png"))

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "amusicbible/cover.png")
	assert.Equal(t, uploadFolder, gotFolder)
}

func TestUploadFile_MissingFile(t *testing.T) {
	r := setupRouter(func(*multipart.FileHeader, string, string) (string, error) {
		t.Fatal("uploader must not be called")
		return "", nil
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, multipartRequest("", ""))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "File is required")
}

func TestUploadFile_UnsupportedType(t *testing.T) {
	r := setupRouter(func(*multipart.FileHeader, string, string) (string, error) {
		t.Fatal("uploader must not be called")
		return "", nil
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, multipartRequest("file", "track.mp3"))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUploadFile_UploaderError(t *testing.T) {
	r := setupRouter(func(*multipart.FileHeader, string, string) (string, error) {
		return "", errors.New("cloudinary is not initialized")
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, multipartRequest("file", "cover.jpg"))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "cloudinary")
}
