package poll

import (
	"fmt"

	model "auction-backend/internal/models"
	"auction-backend/internal/realtime"
	"auction-backend/internal/repository"
	"auction-backend/utils"
)

// PollService defines the business logic for team voting
type PollService struct {
	store     repository.AuctionStore
	publisher realtime.Publisher
}

// NewPollService creates a new PollService instance
func NewPollService(store repository.AuctionStore, publisher realtime.Publisher) *PollService {
	return &PollService{
		store:     store,
		publisher: publisher,
	}
}

// Vote adds exactly one vote to the named team. Viewers are notified that
// poll data changed with no payload; they re-fetch the results.
func (s *PollService) Vote(teamName string) (model.PollOption, error) {
	option, err := s.store.IncrementVote(teamName)
	if err != nil {
		return model.PollOption{}, fmt.Errorf("service: failed to record vote for %q: %w", teamName, err)
	}

	s.logActivity(model.ActivityPoll, fmt.Sprintf("Vote cast for %s", teamName))
	s.publisher.Publish(realtime.Event{Name: realtime.EventPollUpdate})

	return option, nil
}

// ResetAllVotes sets every option's counter to zero. Invoked by the daily
// maintenance job; resets are idempotent, so a missed run is simply skipped.
func (s *PollService) ResetAllVotes() error {
	if err := s.store.ResetVotes(); err != nil {
		return fmt.Errorf("service: failed to reset votes: %w", err)
	}

	s.publisher.Publish(realtime.Event{Name: realtime.EventPollUpdate})
	utils.Info("poll votes reset", nil)
	return nil
}

// logActivity appends an audit entry and broadcasts it to viewers.
func (s *PollService) logActivity(entryType, description string) {
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
