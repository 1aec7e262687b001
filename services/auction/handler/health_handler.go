package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger reports readiness of the backing store.
type Pinger interface {
	Ping() error
}

type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthHandler handles GET /health
func (h *HealthHandler) HealthHandler(c *gin.Context) {
	if err := h.store.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
