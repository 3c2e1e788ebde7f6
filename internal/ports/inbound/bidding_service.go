package inbound

import (
	"context"
	"time"

	"salvage-bidding-service/internal/domain/auction"
	"salvage-bidding-service/internal/domain/bid"
	"salvage-bidding-service/internal/domain/shared"

	"github.com/google/uuid"
)

// BiddingService defines the bid submission and history use cases
type BiddingService interface {
	// PlaceBid evaluates and places a bid, broadcasting to the auction room
	// on acceptance
	PlaceBid(ctx context.Context, req PlaceBidRequest) (*PlacedBid, error)

	// AuctionBids retrieves recent live bids for an auction with bidder info
	AuctionBids(ctx context.Context, auctionID uuid.UUID) ([]bid.WithBidder, error)

	// BidderHistory retrieves the caller's live bids with auction linkage
	BidderHistory(ctx context.Context, bidderID uuid.UUID) ([]bid.WithAuction, error)
}

// AuctionService defines the auction read and close use cases
type AuctionService interface {
	// GetAuction retrieves an auction together with its recent bids
	GetAuction(ctx context.Context, auctionID uuid.UUID) (*auction.Auction, []bid.WithBidder, error)

	// EndExpired closes an auction whose deadline has passed and reports the
	// winner. Returns ErrAuctionNotDue when the deadline moved, so the caller
	// can reschedule.
	EndExpired(ctx context.Context, auctionID uuid.UUID, now time.Time) (*shared.AuctionCloseResult, error)
}

// request to place a bid
type PlaceBidRequest struct {
	AuctionID uuid.UUID `json:"auction_id"`
	BidderID  uuid.UUID `json:"bidder_id"`
	Amount    float64   `json:"amount"`
	MaxBid    *float64  `json:"max_bid,omitempty"`
}

// PlacedBid is the accepted-bid projection returned to the submitter
type PlacedBid struct {
	Bid          bid.WithBidder `json:"bid"`
	CurrentPrice float64        `json:"current_price"`
	EndsAt       *time.Time     `json:"ends_at,omitempty"`
	Extended     bool           `json:"extended"`
}
