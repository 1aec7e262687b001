package handler

import (
	"fmt"
	"net/http"

	model "auction-backend/internal/models"
	"auction-backend/services/auction/helpers"
	"auction-backend/utils"

	"github.com/gin-gonic/gin"
)

type PollServiceInterface interface {
	Vote(teamName string) (model.PollOption, error)
}

type PollHandler struct {
	service PollServiceInterface
}

func NewPollHandler(service PollServiceInterface) *PollHandler {
	return &PollHandler{service: service}
}

// VoteHandler handles POST /api/poll/vote
func (h *PollHandler) VoteHandler(c *gin.Context) {
	var req helpers.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "VoteHandler", err)
		return
	}

	option, err := h.service.Vote(req.TeamName)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("VoteHandler: failed to record vote", map[string]any{
			"team_name": req.TeamName,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"team_name": option.TeamName, "votes": option.Votes}, "vote recorded successfully")
	helpers.LogSuccess("VoteHandler", "vote recorded successfully", map[string]any{
		"team_name": option.TeamName,
		"votes":     option.Votes,
	})
}
