package perftests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	bidding "auction-backend/internal/biddingService"
	enquiry "auction-backend/internal/enquiryService"
	poll "auction-backend/internal/pollService"
	query "auction-backend/internal/queryService"
	"auction-backend/internal/server"
	"auction-backend/services/auction/helpers"

	"github.com/gin-gonic/gin"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name            string
	ReadRatio       int // reads per 10 ops
	MaxBidIncrement int
}

// setupRouter wires the full HTTP stack against a seeded store.
func setupRouter(b *testing.B) *gin.Engine {
	b.Helper()
	gin.SetMode(gin.TestMode)

	store := setupStore(b)
	pub := nopPublisher{}
	return server.SetupRouter(
		bidding.NewBiddingService(store, pub),
		poll.NewPollService(store, pub),
		enquiry.NewEnquiryService(store, pub),
		query.NewQueryService(store),
		store,
		nil,
	)
}

// Benchmark_Load_AuctionAPI runs mixed read/write scenarios through the
// router, including the rejected-bid path that real contention produces.
func Benchmark_Load_AuctionAPI(b *testing.B) {
	scenarios := []LoadScenario{
		{"WriteHeavy", 2, 50},
		{"Mixed-Workload", 7, 30},
		{"ReadHeavy", 9, 20},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runScenario(b, s)
		})
	}
}

func runScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	router := setupRouter(b)

	var totalOps, successfulBids, failedBids, totalReads int64
	var lastBid int64 = 20000

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

		for pb.Next() {
			if rnd.Intn(10) < s.ReadRatio {
				paths := []string{"/api/players", "/api/players/1", "/api/poll", "/api/status", "/api/activity"}
				w := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodGet, paths[rnd.Intn(len(paths))], nil)
				router.ServeHTTP(w, req)
				atomic.AddInt64(&totalReads, 1)
			} else {
				nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(s.MaxBidIncrement)+1))
				body, _ := json.Marshal(helpers.PlaceBidRequest{
					PlayerID:   uint(rnd.Intn(4) + 1),
					BidderName: fmt.Sprintf("team_%d", rnd.Intn(100)),
					BidAmount:  int(nextBid),
				})
				w := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodPost, "/api/bid", bytes.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				router.ServeHTTP(w, req)
				if w.Code == http.StatusOK {
					atomic.AddInt64(&successfulBids, 1)
				} else {
					atomic.AddInt64(&failedBids, 1)
				}
			}
			atomic.AddInt64(&totalOps, 1)
		}
	})

	elapsed := time.Since(start)
	b.Logf(
		"Scenario: %s | Total Ops: %d | Success Bids: %d | Failed Bids: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec",
		s.Name, totalOps, successfulBids, failedBids, totalReads, elapsed,
		float64(totalOps)/elapsed.Seconds(),
	)
}
