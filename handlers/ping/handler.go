package ping

import (
	"context"
	"net/http"
	"time"

	"amusicbible-backend/utils"

	"github.com/gin-gonic/gin"
)

// Checker reports whether a backing service is reachable.
type Checker func(ctx context.Context) error

type Handler struct {
	database Checker
}

func New(database Checker) *Handler {
	return &Handler{database: database}
}

// HandlePing answers pong and the database reachability
// @Summary Ping test
// @Description Health endpoint, 503 when the database cannot be reached
// @Tags health
// @Produce json
// @Success 200 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /ping [get]
func (h *Handler) HandlePing(c *gin.Context) {
	if h.database != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.database(ctx); err != nil {
			utils.LogError(err, "Database ping failed")
			utils.SendError(c, http.StatusServiceUnavailable, "Database unreachable")
			return
		}
	}

	utils.SendSuccess(c, http.StatusOK, "Ping successful", gin.H{
		"message":  "pong",
		"database": "up",
	})
}
