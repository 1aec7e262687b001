package main

import (
	"fmt"

	bidding "auction-backend/internal/biddingService"
	"auction-backend/internal/config"
	enquiry "auction-backend/internal/enquiryService"
	poll "auction-backend/internal/pollService"
	query "auction-backend/internal/queryService"
	"auction-backend/internal/realtime"
	"auction-backend/internal/repository"
	"auction-backend/internal/scheduler"
	"auction-backend/internal/server"
	"auction-backend/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	gin.SetMode(cfg.Server.Mode)

	// An unready store is fatal; Open retries the connection a bounded
	// number of times before giving up.
	store, err := repository.Open(cfg.Database)
	if err != nil {
		utils.Fatal("failed to open auction store", map[string]any{"error": err.Error()})
	}
	defer store.Close()

	if err := store.Seed(cfg.Auction.DefaultDuration); err != nil {
		utils.Fatal("failed to seed auction store", map[string]any{"error": err.Error()})
	}

	hub := realtime.NewHub()
	go hub.Run()

	biddingSvc := bidding.NewBiddingService(store, hub)
	pollSvc := poll.NewPollService(store, hub)
	enquirySvc := enquiry.NewEnquiryService(store, hub)
	querySvc := query.NewQueryService(store)

	sched, err := scheduler.New(cfg.Poll.ResetCron, pollSvc)
	if err != nil {
		utils.Fatal("failed to build scheduler", map[string]any{"error": err.Error()})
	}
	sched.Start()
	defer sched.Stop()

	router := server.SetupRouter(biddingSvc, pollSvc, enquirySvc, querySvc, store, hub)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	utils.Info("starting auction server", map[string]any{"addr": addr, "mode": cfg.Server.Mode})
	if err := router.Run(addr); err != nil {
		utils.Fatal("server stopped", map[string]any{"error": err.Error()})
	}
}
