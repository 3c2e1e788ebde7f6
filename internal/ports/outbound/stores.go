package outbound

import (
	"context"
	"time"

	"salvage-bidding-service/internal/domain/auction"
	"salvage-bidding-service/internal/domain/bid"
	"salvage-bidding-service/internal/domain/bidder"

	"github.com/google/uuid"
)

// Placement is the committed result of a bid placement transaction: the
// upserted ledger row plus the auction price and deadline as of the commit.
type Placement struct {
	Bid          bid.Bid
	CurrentPrice float64
	EndsAt       *time.Time
}

// AuctionStore defines the interface for auction record operations
type AuctionStore interface {
	// GetByID retrieves an auction by ID
	GetByID(ctx context.Context, id uuid.UUID) (*auction.Auction, error)

	// MarkEnded transitions an ACTIVE auction whose deadline has passed to
	// ENDED. Returns false when the row was not transitioned (already closed,
	// cancelled, or the deadline moved).
	MarkEnded(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
}

// BidLedger defines the interface for the per-bidder live bid rows
type BidLedger interface {
	// PlaceBid applies an accepted bid in one transaction: the conditional
	// auction price/deadline update (the sole arbiter under concurrent
	// submissions) and the (auction_id, bidder_id) upsert. A bid that lost
	// the race surfaces as a fresh price rejection, never a silent overwrite.
	PlaceBid(ctx context.Context, newBid *bid.Bid, now time.Time) (*Placement, error)

	// ListByAuction retrieves the most recent live bids for an auction,
	// joined with bidder display info, newest first
	ListByAuction(ctx context.Context, auctionID uuid.UUID, limit int) ([]bid.WithBidder, error)

	// ListByBidder retrieves a bidder's live bids across auctions, joined
	// with the auction record, newest first
	ListByBidder(ctx context.Context, bidderID uuid.UUID) ([]bid.WithAuction, error)

	// GetHighest retrieves the standing high bid for an auction
	GetHighest(ctx context.Context, auctionID uuid.UUID) (*bid.Bid, error)
}

// BidderStore defines read access to bidder identities and their
// verification state
type BidderStore interface {
	// GetByID retrieves a bidder by ID
	GetByID(ctx context.Context, id uuid.UUID) (*bidder.Bidder, error)
}
