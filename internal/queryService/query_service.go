package query

import (
	"fmt"
	"time"

	model "auction-backend/internal/models"
	"auction-backend/internal/repository"
)

// Read-layer caps: bid history per player and activity feed length.
const (
	BidHistoryLimit = 10
	ActivityLimit   = 30
)

// People is the read-API grouping of event participants by role tag.
type People struct {
	Coordinators []model.Person `json:"coordinators"`
	Teams        []model.Person `json:"teams"`
	Faculty      []model.Person `json:"faculty"`
}

// Status is the computed auction state returned by the status endpoint.
type Status struct {
	EndTime       time.Time `json:"end_time"`
	TimeRemaining float64   `json:"time_remaining"` // seconds, never negative
	TotalBids     int64     `json:"total_bids"`
	TotalValue    int64     `json:"total_value"`
}

// QueryService exposes the read-only API: parameterized retrievals with no
// business logic beyond ordering, limiting, and the status aggregate.
type QueryService struct {
	store repository.AuctionStore
}

// NewQueryService creates a new QueryService instance
func NewQueryService(store repository.AuctionStore) *QueryService {
	return &QueryService{store: store}
}

// ListPlayers returns all players ordered by current bid descending.
func (s *QueryService) ListPlayers() ([]model.Player, error) {
	players, err := s.store.ListPlayers()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list players: %w", err)
	}
	return players, nil
}

// PlayerDetail returns one player plus its most recent bids, newest first.
func (s *QueryService) PlayerDetail(playerID uint) (model.Player, []model.Bid, error) {
	player, err := s.store.GetPlayer(playerID)
	if err != nil {
		return model.Player{}, nil, fmt.Errorf("service: failed to get player %d: %w", playerID, err)
	}
	history, err := s.store.BidHistory(playerID, BidHistoryLimit)
	if err != nil {
		return model.Player{}, nil, fmt.Errorf("service: failed to get bid history for player %d: %w", playerID, err)
	}
	return player, history, nil
}

// PollResults returns all poll options ordered by votes descending.
func (s *QueryService) PollResults() ([]model.PollOption, error) {
	options, err := s.store.ListPollOptions()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list poll options: %w", err)
	}
	return options, nil
}

// People returns participants grouped into the three role buckets.
func (s *QueryService) People() (People, error) {
	coordinators, err := s.store.ListPeopleByRole(model.RoleCoordinator)
	if err != nil {
		return People{}, fmt.Errorf("service: failed to list coordinators: %w", err)
	}
	teams, err := s.store.ListPeopleByRole(model.RoleTeam)
	if err != nil {
		return People{}, fmt.Errorf("service: failed to list teams: %w", err)
	}
	faculty, err := s.store.ListPeopleByRole(model.RoleFaculty)
	if err != nil {
		return People{}, fmt.Errorf("service: failed to list faculty: %w", err)
	}
	return People{Coordinators: coordinators, Teams: teams, Faculty: faculty}, nil
}

// RecentActivity returns the most recent activity entries, newest first.
func (s *QueryService) RecentActivity() ([]model.ActivityLogEntry, error) {
	entries, err := s.store.RecentActivity(ActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list activity: %w", err)
	}
	return entries, nil
}

// Status computes remaining time, total bid count, and the sum of all
// players' current bids (0 with no players).
func (s *QueryService) Status() (Status, error) {
	setting, err := s.store.Settings()
	if err != nil {
		return Status{}, fmt.Errorf("service: failed to load settings: %w", err)
	}
	totalBids, err := s.store.CountBids()
	if err != nil {
		return Status{}, fmt.Errorf("service: failed to count bids: %w", err)
	}
	totalValue, err := s.store.TotalCurrentValue()
	if err != nil {
		return Status{}, fmt.Errorf("service: failed to compute total value: %w", err)
	}

	remaining := time.Until(setting.EndTime).Seconds()
	if remaining < 0 {
		remaining = 0
	}

	return Status{
		EndTime:       setting.EndTime,
		TimeRemaining: remaining,
		TotalBids:     totalBids,
		TotalValue:    totalValue,
	}, nil
}
