package server

import (
	"auction-backend/internal/realtime"
	handler "auction-backend/services/auction/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	biddingService handler.BiddingServiceInterface,
	pollService handler.PollServiceInterface,
	enquiryService handler.EnquiryServiceInterface,
	queryService handler.QueryServiceInterface,
	store handler.Pinger,
	hub *realtime.Hub,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(cors.Default())          // the frontend is served from a separate origin
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(biddingService)
	pollHandler := handler.NewPollHandler(pollService)
	enquiryHandler := handler.NewEnquiryHandler(enquiryService)
	queryHandler := handler.NewQueryHandler(queryService)
	healthHandler := handler.NewHealthHandler(store)
	realtimeHandler := handler.NewRealtimeHandler(hub)

	api := router.Group("/api")
	{
		api.GET("/players", queryHandler.ListPlayersHandler)
		api.GET("/players/:player_id", queryHandler.PlayerDetailHandler)
		api.POST("/bid", biddingHandler.PlaceBidHandler)
		api.POST("/enquiry", enquiryHandler.SubmitEnquiryHandler)
		api.GET("/poll", queryHandler.PollResultsHandler)
		api.POST("/poll/vote", pollHandler.VoteHandler)
		api.GET("/people", queryHandler.PeopleHandler)
		api.GET("/activity", queryHandler.ActivityHandler)
		api.GET("/status", queryHandler.StatusHandler)
	}

	router.GET("/health", healthHandler.HealthHandler)
	router.GET("/ws", realtimeHandler.ServeHandler)

	return router
}
