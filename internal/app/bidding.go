package app

import (
	"context"
	"errors"
	"time"

	"salvage-bidding-service/internal/domain/bid"
	"salvage-bidding-service/internal/domain/shared"
	"salvage-bidding-service/internal/ports/inbound"
	"salvage-bidding-service/internal/ports/outbound"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ExpirationScheduler reschedules an auction's close when an accepted bid
// moves the deadline
type ExpirationScheduler interface {
	ScheduleAuction(auctionID uuid.UUID, endTime time.Time) error
}

// BiddingService implements the bid submission use cases. Both the REST and
// WebSocket gateways call into it identically; they differ only in how they
// obtain identity and deliver the result.
type BiddingService struct {
	auctions    outbound.AuctionStore
	ledger      outbound.BidLedger
	bidders     outbound.BidderStore
	broadcaster outbound.Broadcaster
	scheduler   ExpirationScheduler
	logger      zerolog.Logger
}

type BiddingServiceParams struct {
	Auctions    outbound.AuctionStore
	Ledger      outbound.BidLedger
	Bidders     outbound.BidderStore
	Broadcaster outbound.Broadcaster
	Logger      zerolog.Logger
}

// NewBiddingService creates a new bidding service
func NewBiddingService(params BiddingServiceParams) *BiddingService {
	return &BiddingService{
		auctions:    params.Auctions,
		ledger:      params.Ledger,
		bidders:     params.Bidders,
		broadcaster: params.Broadcaster,
		logger:      params.Logger.With().Str("component", "bidding_service").Logger(),
	}
}

// SetScheduler wires the expiration scheduler after construction
func (s *BiddingService) SetScheduler(scheduler ExpirationScheduler) {
	s.scheduler = scheduler
}

// PlaceBid runs the full acceptance path: capability gate, engine decision,
// transactional placement, then fan-out. The ledger transaction is the sole
// arbiter under concurrent submissions; the broadcast happens strictly after
// commit.
func (s *BiddingService) PlaceBid(ctx context.Context, req inbound.PlaceBidRequest) (*inbound.PlacedBid, error) {
	s.logger.Info().
		Str("auction_id", req.AuctionID.String()).
		Str("bidder_id", req.BidderID.String()).
		Float64("amount", req.Amount).
		Msg("Attempting to place bid")

	submitter, err := s.bidders.GetByID(ctx, req.BidderID)
	if err != nil {
		s.logger.Error().Err(err).Str("bidder_id", req.BidderID.String()).Msg("Bidder not found")
		return nil, shared.ErrBidderNotFound
	}

	if !submitter.CanBid() {
		s.logger.Warn().
			Str("bidder_id", submitter.ID.String()).
			Str("kyc_status", string(submitter.KycStatus)).
			Msg("Bidder failed capability gate")
		return nil, shared.ErrBiddingNotAllowed
	}

	current, err := s.auctions.GetByID(ctx, req.AuctionID)
	if err != nil {
		s.logger.Warn().Err(err).Str("auction_id", req.AuctionID.String()).Msg("Auction lookup failed")
		return nil, err
	}

	now := time.Now().UTC()
	if _, err := current.DecideBid(req.Amount, req.MaxBid, now); err != nil {
		s.logger.Warn().
			Err(err).
			Str("auction_id", req.AuctionID.String()).
			Float64("current_price", current.CurrentPrice).
			Float64("amount", req.Amount).
			Msg("Bid rejected")
		return nil, err
	}

	newBid := &bid.Bid{
		ID:        uuid.New(),
		AuctionID: req.AuctionID,
		BidderID:  submitter.ID,
		Amount:    req.Amount,
		MaxBid:    req.MaxBid,
		CreatedAt: now,
		UpdatedAt: now,
	}

	placement, err := s.ledger.PlaceBid(ctx, newBid, now)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("auction_id", req.AuctionID.String()).
			Str("bidder_id", submitter.ID.String()).
			Msg("Bid placement did not commit")
		return nil, err
	}

	extended := deadlineMoved(current.EndsAt, placement.EndsAt)
	if placement.EndsAt != nil && s.scheduler != nil {
		// Every accepted bid arms the close schedule with the committed
		// deadline. The ZAdd re-scores in place, so repeats with an
		// unchanged deadline are no-ops and extensions push the entry out.
		if err := s.scheduler.ScheduleAuction(req.AuctionID, *placement.EndsAt); err != nil {
			s.logger.Error().Err(err).
				Str("auction_id", req.AuctionID.String()).
				Time("ends_at", *placement.EndsAt).
				Msg("Failed to schedule auction close")
		}
	}

	result := &inbound.PlacedBid{
		Bid: bid.WithBidder{
			Bid: placement.Bid,
			Bidder: bid.BidderInfo{
				ID:    submitter.ID,
				Email: submitter.Email,
				Name:  submitter.Name,
			},
		},
		CurrentPrice: placement.CurrentPrice,
		EndsAt:       placement.EndsAt,
		Extended:     extended,
	}

	s.publishBidUpdate(ctx, result)

	s.logger.Info().
		Str("bid_id", placement.Bid.ID.String()).
		Str("auction_id", req.AuctionID.String()).
		Str("bidder_id", submitter.ID.String()).
		Float64("current_price", placement.CurrentPrice).
		Bool("extended", extended).
		Msg("Bid placed")

	return result, nil
}

// publishBidUpdate fans an accepted bid out to the auction room. Broadcast
// failures are logged, never surfaced to the bidder: the bid is committed.
func (s *BiddingService) publishBidUpdate(ctx context.Context, placed *inbound.PlacedBid) {
	if s.broadcaster == nil {
		return
	}

	event := outbound.Event{
		Type:      outbound.EventTypeBidUpdate,
		AuctionID: placed.Bid.AuctionID,
		Data: map[string]interface{}{
			"bid": map[string]interface{}{
				"id":         placed.Bid.ID,
				"amount":     placed.Bid.Amount,
				"userId":     placed.Bid.BidderID,
				"createdAt":  placed.Bid.CreatedAt,
				"user":       placed.Bid.Bidder,
				"displayTag": bid.DisplayTag(placed.Bid.BidderID),
			},
			"currentPrice": placed.CurrentPrice,
		},
		Timestamp: placed.Bid.UpdatedAt.Unix(),
	}

	if err := s.broadcaster.Publish(ctx, placed.Bid.AuctionID, event); err != nil {
		s.logger.Error().Err(err).
			Str("bid_id", placed.Bid.ID.String()).
			Str("auction_id", placed.Bid.AuctionID.String()).
			Msg("Failed to broadcast bid update")
	}
}

// AuctionBids retrieves recent live bids for an auction
func (s *BiddingService) AuctionBids(ctx context.Context, auctionID uuid.UUID) ([]bid.WithBidder, error) {
	if _, err := s.auctions.GetByID(ctx, auctionID); err != nil {
		return nil, err
	}
	return s.ledger.ListByAuction(ctx, auctionID, 0)
}

// BidderHistory retrieves the caller's live bids across auctions
func (s *BiddingService) BidderHistory(ctx context.Context, bidderID uuid.UUID) ([]bid.WithAuction, error) {
	return s.ledger.ListByBidder(ctx, bidderID)
}

// deadlineMoved reports whether the committed deadline differs from the one
// read before the transaction
func deadlineMoved(before, after *time.Time) bool {
	if after == nil {
		return false
	}
	if before == nil {
		return true
	}
	return !after.Equal(*before)
}

// IsRejection reports whether an error is a bidder-recoverable rejection as
// opposed to a transient or unexpected failure
func IsRejection(err error) bool {
	for _, rejection := range []error{
		shared.ErrAuctionNotFound,
		shared.ErrAuctionNotActive,
		shared.ErrBidTooLow,
		shared.ErrBidAmountInvalid,
		shared.ErrMaxBidBelowAmount,
		shared.ErrBidderNotFound,
		shared.ErrBiddingNotAllowed,
	} {
		if errors.Is(err, rejection) {
			return true
		}
	}
	return false
}
