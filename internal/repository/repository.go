package repository

import (
	model "auction-backend/internal/models"
)

// AuctionStore defines the persistence interface for the auction system.
// It is the single owner of all entity state; services hold no copies
// across requests.
type AuctionStore interface {
	// PlaceBid applies a bid inside one transaction: the player row is
	// locked for the read-validate-write span, so two concurrent bids on
	// the same player are serialized and the "strictly greater than the
	// current bid" check never runs against a stale value.
	PlaceBid(playerID uint, bidderName string, amount int) (model.Player, model.Bid, error)

	GetPlayer(playerID uint) (model.Player, error)
	ListPlayers() ([]model.Player, error)
	BidHistory(playerID uint, limit int) ([]model.Bid, error)

	CreateEnquiry(enquiry *model.Enquiry) error

	ListPollOptions() ([]model.PollOption, error)
	IncrementVote(teamName string) (model.PollOption, error)
	ResetVotes() error

	ListPeopleByRole(role string) ([]model.Person, error)

	AppendActivity(entryType, description string) (model.ActivityLogEntry, error)
	RecentActivity(limit int) ([]model.ActivityLogEntry, error)

	CountBids() (int64, error)
	TotalCurrentValue() (int64, error)
	Settings() (model.AuctionSetting, error)

	Ping() error
	Close() error
}
