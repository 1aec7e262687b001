package bidding

import (
	"fmt"

	"auction-backend/internal/auctionerrors"
	model "auction-backend/internal/models"
	"auction-backend/internal/realtime"
	"auction-backend/internal/repository"
	"auction-backend/utils"
)

// BiddingService defines the business logic for auction bidding
type BiddingService struct {
	store     repository.AuctionStore
	publisher realtime.Publisher
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(store repository.AuctionStore, publisher realtime.Publisher) *BiddingService {
	return &BiddingService{
		store:     store,
		publisher: publisher,
	}
}

// PlaceBid validates and applies a bid for a player. On success it appends
// a bid activity entry and broadcasts the update to all viewers; failures
// of those side effects are logged but never fail an accepted bid.
func (s *BiddingService) PlaceBid(playerID uint, bidderName string, amount int) (model.Player, model.Bid, error) {
	if playerID == 0 || bidderName == "" {
		return model.Player{}, model.Bid{}, fmt.Errorf("service: %w - missing player id or bidder name", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return model.Player{}, model.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	player, bid, err := s.store.PlaceBid(playerID, bidderName, amount)
	if err != nil {
		return model.Player{}, model.Bid{}, fmt.Errorf("service: failed to place bid on player %d by %s: %w", playerID, bidderName, err)
	}

	s.logActivity(model.ActivityBid, fmt.Sprintf("%s bid %d on %s", bidderName, amount, player.Name))

	s.publisher.Publish(realtime.Event{
		Name: realtime.EventBidUpdate,
		Payload: realtime.BidUpdate{
			PlayerID:   player.ID,
			PlayerName: player.Name,
			BidderName: bidderName,
			BidAmount:  amount,
		},
	})

	return player, bid, nil
}

// logActivity appends an audit entry and broadcasts it to viewers.
func (s *BiddingService) logActivity(entryType, description string) {
	entry, err := s.store.AppendActivity(entryType, description)
	if err != nil {
		utils.Warn("failed to append activity entry", map[string]any{
			"type":        entryType,
			"description": description,
			"error":       err.Error(),
		})
		return
	}
	s.publisher.Publish(realtime.Event{Name: realtime.EventActivityUpdate, Payload: entry})
}
