package poll

import (
	"errors"
	"sync"
	"testing"

	"auction-backend/internal/auctionerrors"
	model "auction-backend/internal/models"
	"auction-backend/internal/realtime"
	"auction-backend/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// capturePublisher records published events for assertions.
type capturePublisher struct {
	mu     sync.Mutex
	events []realtime.Event
}

func (p *capturePublisher) Publish(event realtime.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *capturePublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, 0, len(p.events))
	for _, e := range p.events {
		names = append(names, e.Name)
	}
	return names
}

// Tests Vote
func TestPollService_Vote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		teamName      string
		mockSetup     func(mockStore *repository.MockAuctionStore)
		expectError   bool
		expectedError error
		expectEvents  []string
	}{
		{
			name:     "valid_vote",
			teamName: "Java Jesters",
			mockSetup: func(mockStore *repository.MockAuctionStore) {
				mockStore.EXPECT().IncrementVote("Java Jesters").
					Return(model.PollOption{ID: 1, TeamName: "Java Jesters", Votes: 4}, nil)
				mockStore.EXPECT().AppendActivity(model.ActivityPoll, "Vote cast for Java Jesters").
					Return(model.ActivityLogEntry{ID: 1, Type: model.ActivityPoll}, nil)
			},
			expectEvents: []string{realtime.EventActivityUpdate, realtime.EventPollUpdate},
		},
		{
			name:     "unknown_team",
			teamName: "No Such Team",
			mockSetup: func(mockStore *repository.MockAuctionStore) {
				mockStore.EXPECT().IncrementVote("No Such Team").
					Return(model.PollOption{}, auctionerrors.ErrTeamNotFound)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrTeamNotFound,
		},
		{
			name:     "store_fails",
			teamName: "Java Jesters",
			mockSetup: func(mockStore *repository.MockAuctionStore) {
				mockStore.EXPECT().IncrementVote("Java Jesters").
					Return(model.PollOption{}, errors.New("store write failed"))
			},
			expectError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockStore := repository.NewMockAuctionStore(ctrl)
			publisher := &capturePublisher{}
			service := NewPollService(mockStore, publisher)
			tc.mockSetup(mockStore)

			option, err := service.Vote(tc.teamName)
			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.ErrorIs(t, err, tc.expectedError)
				}
				require.Empty(t, publisher.names())
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.teamName, option.TeamName)
			require.Equal(t, tc.expectEvents, publisher.names())
		})
	}
}

// Tests ResetAllVotes
func TestPollService_ResetAllVotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("reset_publishes_poll_update", func(t *testing.T) {
		mockStore := repository.NewMockAuctionStore(ctrl)
		publisher := &capturePublisher{}
		service := NewPollService(mockStore, publisher)

		mockStore.EXPECT().ResetVotes().Return(nil)

		require.NoError(t, service.ResetAllVotes())
		require.Equal(t, []string{realtime.EventPollUpdate}, publisher.names())
	})

	t.Run("reset_failure_suppresses_broadcast", func(t *testing.T) {
		mockStore := repository.NewMockAuctionStore(ctrl)
		publisher := &capturePublisher{}
		service := NewPollService(mockStore, publisher)

		mockStore.EXPECT().ResetVotes().Return(errors.New("store write failed"))

		require.Error(t, service.ResetAllVotes())
		require.Empty(t, publisher.names())
	})
}
