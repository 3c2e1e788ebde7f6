package auction

import (
	"fmt"
	"time"

	"salvage-bidding-service/internal/domain/shared"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of an auction
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusActive    Status = "ACTIVE"
	StatusEnded     Status = "ENDED"
	StatusCancelled Status = "CANCELLED"
)

// Auction represents a single salvage lot up for competitive bidding
type Auction struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	StartPrice    float64    `json:"start_price"`
	CurrentPrice  float64    `json:"current_price"`
	ReservePrice  *float64   `json:"reserve_price,omitempty"`
	BidIncrement  float64    `json:"bid_increment"`
	StartsAt      *time.Time `json:"starts_at,omitempty"`
	EndsAt        *time.Time `json:"ends_at,omitempty"`
	ExtendMinutes int        `json:"extend_minutes"`
	Status        Status     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Decision is the accepted outcome of evaluating a proposed bid: the price the
// auction advances to and, when the bid landed inside the anti-sniping window,
// the extended deadline.
type Decision struct {
	NewPrice  float64
	NewEndsAt *time.Time
}

// IsActive returns true if the auction is currently accepting bids
func (a *Auction) IsActive() bool {
	return a.Status == StatusActive
}

// IsEnded returns true if the auction has ended
func (a *Auction) IsEnded() bool {
	return a.Status == StatusEnded
}

// DecideBid evaluates a proposed bid against the auction state at `now`.
// Preconditions are checked in order, each with its own rejection: the auction
// must be ACTIVE, the amount must be strictly greater than the current price
// (the bid increment is advisory, not a hard floor), and a supplied max bid
// must be at least the amount.
//
// On acceptance the current price advances to the bid amount. If the bid lands
// within ExtendMinutes of the deadline, the deadline is pushed out by
// ExtendMinutes from its current value, not from now, so a run of late bids
// keeps extending the auction.
func (a *Auction) DecideBid(amount float64, maxBid *float64, now time.Time) (*Decision, error) {
	if !a.IsActive() {
		return nil, shared.ErrAuctionNotActive
	}
	if amount <= 0 {
		return nil, shared.ErrBidAmountInvalid
	}
	if amount <= a.CurrentPrice {
		return nil, fmt.Errorf("%w (current price %.2f)", shared.ErrBidTooLow, a.CurrentPrice)
	}
	if maxBid != nil && *maxBid < amount {
		return nil, shared.ErrMaxBidBelowAmount
	}

	decision := &Decision{NewPrice: amount}
	if a.ExtendMinutes > 0 && a.EndsAt != nil {
		window := time.Duration(a.ExtendMinutes) * time.Minute
		if a.EndsAt.Sub(now) <= window {
			extended := a.EndsAt.Add(window)
			decision.NewEndsAt = &extended
		}
	}

	return decision, nil
}

// ApplyDecision folds an accepted decision back into the auction state
func (a *Auction) ApplyDecision(d *Decision, now time.Time) {
	a.CurrentPrice = d.NewPrice
	if d.NewEndsAt != nil {
		a.EndsAt = d.NewEndsAt
	}
	a.UpdatedAt = now
}
