package bid

import (
	"strings"
	"time"

	"salvage-bidding-service/internal/domain/auction"

	"github.com/google/uuid"
)

// Bid is a bidder's live standing on one auction. The ledger keeps a single
// row per (auction, bidder) pair, updated in place on every accepted raise,
// so Amount always reflects the bidder's latest accepted bid.
type Bid struct {
	ID        uuid.UUID `json:"id"`
	AuctionID uuid.UUID `json:"auction_id"`
	BidderID  uuid.UUID `json:"bidder_id"`
	Amount    float64   `json:"amount"`
	MaxBid    *float64  `json:"max_bid,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BidderInfo is the display projection of the bidder attached to a bid
type BidderInfo struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// WithBidder is a bid joined with its bidder's display info
type WithBidder struct {
	Bid
	Bidder BidderInfo `json:"user"`
}

// WithAuction is a bid joined with the auction it was placed on
type WithAuction struct {
	Bid
	Auction auction.Auction `json:"auction"`
}

// DisplayTag returns the stable pseudonym shown in public bid history in
// place of the bidder's identity: "Bidder #" plus the last six characters of
// the bidder id, uppercased.
func DisplayTag(bidderID uuid.UUID) string {
	s := bidderID.String()
	return "Bidder #" + strings.ToUpper(s[len(s)-6:])
}
