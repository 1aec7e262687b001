package helpers

import (
	model "auction-backend/internal/models"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	PlayerID   uint   `json:"player_id" binding:"required"`
	BidderName string `json:"bidder_name" binding:"required"`
	BidAmount  int    `json:"bid_amount" binding:"required,gt=0"`
}

type VoteRequest struct {
	TeamName string `json:"team_name" binding:"required"`
}

type EnquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

type PlayerDetailResponse struct {
	model.Player
	BidHistory []model.Bid `json:"bid_history"`
}

type StatusResponse struct {
	EndTime       string  `json:"end_time"`
	TimeRemaining float64 `json:"time_remaining"`
	TotalBids     int64   `json:"total_bids"`
	TotalValue    int64   `json:"total_value"`
}
