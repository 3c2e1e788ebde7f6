package rest

import (
	"net/http"

	"salvage-bidding-service/internal/adapters/auth"
	"salvage-bidding-service/internal/ports/inbound"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type RouterParams struct {
	BiddingService inbound.BiddingService
	AuctionService inbound.AuctionService
	Verifier       *auth.TokenVerifier
	Logger         zerolog.Logger
}

// NewRouter configures the gin routes for the REST gateway
func NewRouter(params RouterParams) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(RequestLogger(params.Logger))

	bidHandler := NewBidHandler(params.BiddingService, params.Logger)
	auctionHandler := NewAuctionHandler(params.AuctionService, params.Logger)

	authRequired := AuthRequired(params.Verifier)

	bids := router.Group("/bids")
	{
		bids.POST("", authRequired, bidHandler.PlaceBid)
		bids.GET("/auction/:auctionId", bidHandler.AuctionBids)
		bids.GET("/my", authRequired, bidHandler.MyBids)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("/:auctionId", auctionHandler.GetAuction)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "salvage-bidding-api"})
	})

	return router
}
