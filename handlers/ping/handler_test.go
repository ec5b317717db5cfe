package ping

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"amusicbible-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func doPing(handler *Handler) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", handler.HandlePing)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHandlePing(t *testing.T) {
	w := doPing(New(func(ctx context.Context) error { return nil }))

	assert.Equal(t, http.StatusOK, w.Code)

	var response utils.Response
	err := json.Unmarshal(w.Body.Bytes(), &response)

	assert.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, "Ping successful", response.Message)

	data, ok := response.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "pong", data["message"])
	assert.Equal(t, "up", data["database"])
}

func TestHandlePing_DatabaseDown(t *testing.T) {
	utils.Logger.SetOutput(io.Discard)
	w := doPing(New(func(ctx context.Context) error { return errors.New("connection refused") }))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response utils.Response
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.False(t, response.Success)
	assert.Equal(t, "Database unreachable", response.Error)
}
