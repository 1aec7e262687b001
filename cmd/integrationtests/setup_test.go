package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	bidding "auction-backend/internal/biddingService"
	"auction-backend/internal/config"
	enquiry "auction-backend/internal/enquiryService"
	poll "auction-backend/internal/pollService"
	query "auction-backend/internal/queryService"
	"auction-backend/internal/realtime"
	"auction-backend/internal/repository"
	"auction-backend/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestApp wires the full application against a temporary seeded SQLite
// store and returns the router plus the hub for websocket tests.
func SetupTestApp(t *testing.T) (*gin.Engine, *realtime.Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := repository.Open(config.DatabaseConfig{
		DSN: filepath.Join(t.TempDir(), "auction.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Seed(72*time.Hour))

	hub := realtime.NewHub()
	go hub.Run()

	biddingService := bidding.NewBiddingService(store, hub)
	pollService := poll.NewPollService(store, hub)
	enquiryService := enquiry.NewEnquiryService(store, hub)
	queryService := query.NewQueryService(store)

	router := server.SetupRouter(biddingService, pollService, enquiryService, queryService, store, hub)
	return router, hub
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}
