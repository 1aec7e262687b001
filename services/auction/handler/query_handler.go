package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	model "auction-backend/internal/models"
	query "auction-backend/internal/queryService"
	"auction-backend/services/auction/helpers"
	"auction-backend/utils"

	"github.com/gin-gonic/gin"
)

type QueryServiceInterface interface {
	ListPlayers() ([]model.Player, error)
	PlayerDetail(playerID uint) (model.Player, []model.Bid, error)
	PollResults() ([]model.PollOption, error)
	People() (query.People, error)
	RecentActivity() ([]model.ActivityLogEntry, error)
	Status() (query.Status, error)
}

type QueryHandler struct {
	service QueryServiceInterface
}

func NewQueryHandler(service QueryServiceInterface) *QueryHandler {
	return &QueryHandler{service: service}
}

// ListPlayersHandler handles GET /api/players
func (h *QueryHandler) ListPlayersHandler(c *gin.Context) {
	players, err := h.service.ListPlayers()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListPlayersHandler: failed to list players", map[string]any{"error": err.Error()})
		return
	}
	if players == nil {
		players = []model.Player{}
	}
	utils.JSONResponse(c, http.StatusOK, players, "players retrieved successfully")
}

// PlayerDetailHandler handles GET /api/players/:player_id
func (h *QueryHandler) PlayerDetailHandler(c *gin.Context) {
	playerID, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		helpers.HandleBindError(c, "PlayerDetailHandler", fmt.Errorf("invalid player id: %w", err))
		return
	}

	player, history, err := h.service.PlayerDetail(uint(playerID))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PlayerDetailHandler: failed to get player", map[string]any{
			"player_id": playerID,
			"error":     err.Error(),
		})
		return
	}
	if history == nil {
		history = []model.Bid{}
	}

	resp := helpers.PlayerDetailResponse{Player: player, BidHistory: history}
	utils.JSONResponse(c, http.StatusOK, resp, "player retrieved successfully")
}

// PollResultsHandler handles GET /api/poll
func (h *QueryHandler) PollResultsHandler(c *gin.Context) {
	options, err := h.service.PollResults()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PollResultsHandler: failed to list poll options", map[string]any{"error": err.Error()})
		return
	}
	if options == nil {
		options = []model.PollOption{}
	}
	utils.JSONResponse(c, http.StatusOK, options, "poll results retrieved successfully")
}

// PeopleHandler handles GET /api/people
func (h *QueryHandler) PeopleHandler(c *gin.Context) {
	people, err := h.service.People()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PeopleHandler: failed to list people", map[string]any{"error": err.Error()})
		return
	}
	utils.JSONResponse(c, http.StatusOK, people, "people retrieved successfully")
}

// ActivityHandler handles GET /api/activity
func (h *QueryHandler) ActivityHandler(c *gin.Context) {
	entries, err := h.service.RecentActivity()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ActivityHandler: failed to list activity", map[string]any{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []model.ActivityLogEntry{}
	}
	utils.JSONResponse(c, http.StatusOK, entries, "activity retrieved successfully")
}

// StatusHandler handles GET /api/status
func (h *QueryHandler) StatusHandler(c *gin.Context) {
	status, err := h.service.Status()
	if err != nil {
		code, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, code, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("StatusHandler: failed to compute status", map[string]any{"error": err.Error()})
		return
	}

	resp := helpers.StatusResponse{
		EndTime:       status.EndTime.Format(time.RFC3339),
		TimeRemaining: status.TimeRemaining,
		TotalBids:     status.TotalBids,
		TotalValue:    status.TotalValue,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "status retrieved successfully")
}
