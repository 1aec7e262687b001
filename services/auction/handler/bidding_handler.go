package handler

import (
	"fmt"
	"net/http"

	model "auction-backend/internal/models"
	"auction-backend/services/auction/helpers"
	"auction-backend/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	PlaceBid(playerID uint, bidderName string, amount int) (model.Player, model.Bid, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceBidHandler handles POST /api/bid
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	player, bid, err := h.service.PlaceBid(req.PlayerID, req.BidderName, req.BidAmount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PlaceBidHandler: failed to place bid", map[string]any{
			"player_id":   req.PlayerID,
			"bidder_name": req.BidderName,
			"bid_amount":  req.BidAmount,
			"error":       err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"bid_id": bid.ID, "current_bid": player.CurrentBid}, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":      bid.ID,
		"player_id":   player.ID,
		"bidder_name": bid.BidderName,
		"bid_amount":  bid.Amount,
	})
}
