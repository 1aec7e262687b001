package handler

import (
	"auction-backend/internal/realtime"
	"auction-backend/utils"

	"github.com/gin-gonic/gin"
)

type RealtimeHandler struct {
	hub *realtime.Hub
}

func NewRealtimeHandler(hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{hub: hub}
}

// ServeHandler handles GET /ws, upgrading the connection and attaching the
// viewer to the broadcast hub. The upgrader writes its own error response
// on failure.
func (h *RealtimeHandler) ServeHandler(c *gin.Context) {
	if err := h.hub.ServeWS(c.Writer, c.Request); err != nil {
		utils.Warn("ServeHandler: websocket upgrade failed", map[string]any{"error": err.Error()})
	}
}
