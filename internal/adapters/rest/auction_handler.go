package rest

import (
	"net/http"

	"salvage-bidding-service/internal/domain/auction"
	"salvage-bidding-service/internal/domain/bid"
	"salvage-bidding-service/internal/ports/inbound"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AuctionHandler serves the auction read surface: the full state a client
// re-fetches after missing room events
type AuctionHandler struct {
	auctions inbound.AuctionService
	logger   zerolog.Logger
}

// NewAuctionHandler creates a new auction handler
func NewAuctionHandler(auctions inbound.AuctionService, logger zerolog.Logger) *AuctionHandler {
	return &AuctionHandler{
		auctions: auctions,
		logger:   logger.With().Str("component", "auction_handler").Logger(),
	}
}

type auctionResponse struct {
	Auction    *auction.Auction `json:"auction"`
	RecentBids []publicBid      `json:"recentBids"`
}

// GetAuction handles GET /auctions/:auctionId
func (h *AuctionHandler) GetAuction(c *gin.Context) {
	auctionID, err := uuid.Parse(c.Param("auctionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid auction id"})
		return
	}

	record, recent, err := h.auctions.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		status, message := mapError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	projected := make([]publicBid, 0, len(recent))
	for _, b := range recent {
		projected = append(projected, publicBid{
			ID:              b.ID,
			AuctionID:       b.AuctionID,
			Amount:          b.Amount,
			BidderDisplayID: bid.DisplayTag(b.BidderID),
			CreatedAt:       b.CreatedAt,
			UpdatedAt:       b.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, auctionResponse{Auction: record, RecentBids: projected})
}
