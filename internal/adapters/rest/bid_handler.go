package rest

import (
	"net/http"
	"time"

	"salvage-bidding-service/internal/domain/bid"
	"salvage-bidding-service/internal/ports/inbound"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BidHandler serves the bid submission and history endpoints
type BidHandler struct {
	bidding inbound.BiddingService
	logger  zerolog.Logger
}

// NewBidHandler creates a new bid handler
func NewBidHandler(bidding inbound.BiddingService, logger zerolog.Logger) *BidHandler {
	return &BidHandler{
		bidding: bidding,
		logger:  logger.With().Str("component", "bid_handler").Logger(),
	}
}

// PlaceBidRequest is the POST /bids body
type PlaceBidRequest struct {
	AuctionID uuid.UUID `json:"auctionId" binding:"required"`
	Amount    float64   `json:"amount" binding:"required,gt=0"`
	MaxBid    *float64  `json:"maxBid,omitempty"`
}

// publicBid is the pseudonymized projection returned by the public history
// endpoint: the bidder's identity is replaced by a stable display tag.
type publicBid struct {
	ID              uuid.UUID `json:"id"`
	AuctionID       uuid.UUID `json:"auctionId"`
	Amount          float64   `json:"amount"`
	BidderDisplayID string    `json:"bidderDisplayId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// PlaceBid handles POST /bids
func (h *BidHandler) PlaceBid(c *gin.Context) {
	bidderID, ok := currentBidderID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: auctionId and a positive amount are required"})
		return
	}

	placed, err := h.bidding.PlaceBid(c.Request.Context(), inbound.PlaceBidRequest{
		AuctionID: req.AuctionID,
		BidderID:  bidderID,
		Amount:    req.Amount,
		MaxBid:    req.MaxBid,
	})
	if err != nil {
		status, message := mapError(err)
		h.logger.Warn().Err(err).
			Str("auction_id", req.AuctionID.String()).
			Str("bidder_id", bidderID.String()).
			Int("status", status).
			Msg("Bid rejected")
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, placed)
}

// AuctionBids handles GET /bids/auction/:auctionId (public, pseudonymized)
func (h *BidHandler) AuctionBids(c *gin.Context) {
	auctionID, err := uuid.Parse(c.Param("auctionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid auction id"})
		return
	}

	bids, err := h.bidding.AuctionBids(c.Request.Context(), auctionID)
	if err != nil {
		status, message := mapError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	projected := make([]publicBid, 0, len(bids))
	for _, b := range bids {
		projected = append(projected, publicBid{
			ID:              b.ID,
			AuctionID:       b.AuctionID,
			Amount:          b.Amount,
			BidderDisplayID: bid.DisplayTag(b.BidderID),
			CreatedAt:       b.CreatedAt,
			UpdatedAt:       b.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, projected)
}

// MyBids handles GET /bids/my
func (h *BidHandler) MyBids(c *gin.Context) {
	bidderID, ok := currentBidderID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	history, err := h.bidding.BidderHistory(c.Request.Context(), bidderID)
	if err != nil {
		status, message := mapError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	if history == nil {
		history = []bid.WithAuction{}
	}
	c.JSON(http.StatusOK, history)
}
