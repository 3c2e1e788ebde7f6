package app

import (
	"context"
	"errors"
	"time"

	"salvage-bidding-service/internal/domain/auction"
	"salvage-bidding-service/internal/domain/bid"
	"salvage-bidding-service/internal/domain/shared"
	"salvage-bidding-service/internal/ports/outbound"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const recentBidsLimit = 10

// AuctionService implements the auction read and close use cases. It never
// advances prices; lifecycle transitions other than the deadline close are
// owned by external admin tooling.
type AuctionService struct {
	auctions outbound.AuctionStore
	ledger   outbound.BidLedger
	logger   zerolog.Logger
}

type AuctionServiceParams struct {
	Auctions outbound.AuctionStore
	Ledger   outbound.BidLedger
	Logger   zerolog.Logger
}

// NewAuctionService creates a new auction service
func NewAuctionService(params AuctionServiceParams) *AuctionService {
	return &AuctionService{
		auctions: params.Auctions,
		ledger:   params.Ledger,
		logger:   params.Logger.With().Str("component", "auction_service").Logger(),
	}
}

// GetAuction retrieves an auction with its most recent bids. This is the
// state a client re-fetches after missing room events.
func (s *AuctionService) GetAuction(ctx context.Context, auctionID uuid.UUID) (*auction.Auction, []bid.WithBidder, error) {
	record, err := s.auctions.GetByID(ctx, auctionID)
	if err != nil {
		return nil, nil, err
	}

	recent, err := s.ledger.ListByAuction(ctx, auctionID, recentBidsLimit)
	if err != nil {
		return nil, nil, err
	}

	return record, recent, nil
}

// EndExpired transitions an auction past its deadline to ENDED and resolves
// the winner from the ledger. When the deadline was pushed out by a late bid
// it returns ErrAuctionNotDue so the scheduler can re-arm.
func (s *AuctionService) EndExpired(ctx context.Context, auctionID uuid.UUID, now time.Time) (*shared.AuctionCloseResult, error) {
	closed, err := s.auctions.MarkEnded(ctx, auctionID, now)
	if err != nil {
		s.logger.Error().Err(err).Str("auction_id", auctionID.String()).Msg("Failed to close auction")
		return nil, err
	}

	if !closed {
		record, err := s.auctions.GetByID(ctx, auctionID)
		if err != nil {
			return nil, err
		}
		if record.IsActive() && record.EndsAt != nil && record.EndsAt.After(now) {
			return nil, shared.ErrAuctionNotDue
		}
		// already ENDED or CANCELLED by another actor
		return &shared.AuctionCloseResult{
			AuctionID: auctionID,
			Status:    string(record.Status),
		}, nil
	}

	result := &shared.AuctionCloseResult{
		AuctionID: auctionID,
		Status:    string(auction.StatusEnded),
	}

	highest, err := s.ledger.GetHighest(ctx, auctionID)
	if err != nil {
		if !errors.Is(err, shared.ErrNoBidsFound) {
			s.logger.Error().Err(err).Str("auction_id", auctionID.String()).Msg("Failed to resolve winning bid")
			return nil, err
		}
	} else {
		result.WinnerID = &highest.BidderID
		result.FinalPrice = &highest.Amount
	}

	s.logger.Info().
		Str("auction_id", auctionID.String()).
		Bool("has_winner", result.WinnerID != nil).
		Msg("Auction closed")

	return result, nil
}
