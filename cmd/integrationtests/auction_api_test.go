package integrationtests

import (
	"net/http"
	"testing"

	"auction-backend/services/auction/helpers"

	"github.com/stretchr/testify/require"
)

func TestListPlayersEndpoint(t *testing.T) {
	router, _ := SetupTestApp(t)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/api/players", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, resp["success"])

	players := resp["data"].([]any)
	require.Len(t, players, 4)

	// Seeded players come back ordered by current bid, highest first.
	top := players[0].(map[string]any)
	require.Equal(t, "Michael Brown", top["name"])
	require.Equal(t, 15000.0, top["current_bid"])
}

func TestPlayerDetailEndpoint(t *testing.T) {
	router, _ := SetupTestApp(t)

	t.Run("seeded_player", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/api/players/1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, "Alex Chen", data["name"])
		require.Equal(t, "ByteMaster", data["nickname"])
		require.Len(t, data["bid_history"].([]any), 0)
	})

	t.Run("unknown_player", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/api/players/999", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, false, resp["success"])
		require.Contains(t, resp["message"], "player not found")
	})
}

func TestBidFlow(t *testing.T) {
	router, _ := SetupTestApp(t)

	// First raise on Alex Chen (seeded at 10000).
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/bid", helpers.PlaceBidRequest{
		PlayerID:   1,
		BidderName: "Java Jesters",
		BidAmount:  10500,
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, 10500.0, data["current_bid"])

	// A bid at or below the current price is rejected.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/api/bid", helpers.PlaceBidRequest{
		PlayerID:   1,
		BidderName: "Quantum Coder",
		BidAmount:  10500,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, resp["message"], "bid amount too low")

	// A higher raise goes through and the player record reflects it.
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/api/bid", helpers.PlaceBidRequest{
		PlayerID:   1,
		BidderName: "Quantum Coder",
		BidAmount:  11000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/api/players/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	player := resp["data"].(map[string]any)
	require.Equal(t, 11000.0, player["current_bid"])
	require.Equal(t, "Quantum Coder", player["highest_bidder"])
	require.Equal(t, 2.0, player["total_bids"])

	history := player["bid_history"].([]any)
	require.Len(t, history, 2)
	require.Equal(t, 11000.0, history[0].(map[string]any)["bid_amount"])
	require.Equal(t, 10500.0, history[1].(map[string]any)["bid_amount"])

	// Unknown players yield 404 without touching anything.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/api/bid", helpers.PlaceBidRequest{
		PlayerID:   999,
		BidderName: "Java Jesters",
		BidAmount:  50000,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, resp["message"], "player not found")
}

func TestStatusEndpoint(t *testing.T) {
	router, _ := SetupTestApp(t)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/api/status", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	require.Greater(t, data["time_remaining"].(float64), 0.0)
	require.Equal(t, 0.0, data["total_bids"])
	// Sum of the four seeded base prices.
	require.Equal(t, 48000.0, data["total_value"])

	// A bid moves both aggregates.
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/api/bid", helpers.PlaceBidRequest{
		PlayerID:   1,
		BidderName: "Java Jesters",
		BidAmount:  10500,
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/api/status", nil)
	data = resp["data"].(map[string]any)
	require.Equal(t, 1.0, data["total_bids"])
	require.Equal(t, 48500.0, data["total_value"])
}

func TestPeopleEndpoint(t *testing.T) {
	router, _ := SetupTestApp(t)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/api/people", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	require.Len(t, data["coordinators"].([]any), 5)
	require.Len(t, data["teams"].([]any), 3)
	require.Len(t, data["faculty"].([]any), 3)
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := SetupTestApp(t)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "healthy", resp["status"])
}
