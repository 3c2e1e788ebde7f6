package app

import (
	"context"
	"testing"
	"time"

	"salvage-bidding-service/internal/domain/auction"
	"salvage-bidding-service/internal/domain/bid"
	"salvage-bidding-service/internal/domain/shared"
	"salvage-bidding-service/internal/ports/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type auctionFixture struct {
	auctions *mocks.MockAuctionStore
	ledger   *mocks.MockBidLedger
	service  *AuctionService
}

func newAuctionFixture(t *testing.T) *auctionFixture {
	ctrl := gomock.NewController(t)
	f := &auctionFixture{
		auctions: mocks.NewMockAuctionStore(ctrl),
		ledger:   mocks.NewMockBidLedger(ctrl),
	}
	f.service = NewAuctionService(AuctionServiceParams{
		Auctions: f.auctions,
		Ledger:   f.ledger,
		Logger:   zerolog.Nop(),
	})
	return f
}

func TestGetAuction(t *testing.T) {
	f := newAuctionFixture(t)

	auctionID := uuid.New()
	record := &auction.Auction{ID: auctionID, Status: auction.StatusActive, CurrentPrice: 4200}
	recent := []bid.WithBidder{
		{Bid: bid.Bid{ID: uuid.New(), AuctionID: auctionID, Amount: 4200}},
	}

	f.auctions.EXPECT().GetByID(gomock.Any(), auctionID).Return(record, nil)
	f.ledger.EXPECT().ListByAuction(gomock.Any(), auctionID, 10).Return(recent, nil)

	got, bids, err := f.service.GetAuction(context.Background(), auctionID)
	require.NoError(t, err)
	require.Equal(t, record, got)
	require.Len(t, bids, 1)
}

func TestEndExpired_ClosesWithWinner(t *testing.T) {
	f := newAuctionFixture(t)

	auctionID := uuid.New()
	winnerID := uuid.New()
	now := time.Now()

	f.auctions.EXPECT().MarkEnded(gomock.Any(), auctionID, now).Return(true, nil)
	f.ledger.EXPECT().GetHighest(gomock.Any(), auctionID).Return(&bid.Bid{
		ID:        uuid.New(),
		AuctionID: auctionID,
		BidderID:  winnerID,
		Amount:    8800,
	}, nil)

	result, err := f.service.EndExpired(context.Background(), auctionID, now)
	require.NoError(t, err)
	require.Equal(t, string(auction.StatusEnded), result.Status)
	require.Equal(t, winnerID, *result.WinnerID)
	require.Equal(t, 8800.0, *result.FinalPrice)
}

func TestEndExpired_ClosesWithoutBids(t *testing.T) {
	f := newAuctionFixture(t)

	auctionID := uuid.New()
	now := time.Now()

	f.auctions.EXPECT().MarkEnded(gomock.Any(), auctionID, now).Return(true, nil)
	f.ledger.EXPECT().GetHighest(gomock.Any(), auctionID).Return(nil, shared.ErrNoBidsFound)

	result, err := f.service.EndExpired(context.Background(), auctionID, now)
	require.NoError(t, err)
	require.Nil(t, result.WinnerID)
	require.Nil(t, result.FinalPrice)
}

func TestEndExpired_DeadlineMovedNotDue(t *testing.T) {
	// A late bid pushed the deadline past now, so the conditional close is a
	// no-op and the caller must re-arm.
	f := newAuctionFixture(t)

	auctionID := uuid.New()
	now := time.Now()
	newDeadline := now.Add(4 * time.Minute)

	f.auctions.EXPECT().MarkEnded(gomock.Any(), auctionID, now).Return(false, nil)
	f.auctions.EXPECT().GetByID(gomock.Any(), auctionID).Return(&auction.Auction{
		ID:     auctionID,
		Status: auction.StatusActive,
		EndsAt: &newDeadline,
	}, nil)

	_, err := f.service.EndExpired(context.Background(), auctionID, now)
	require.ErrorIs(t, err, shared.ErrAuctionNotDue)
}

func TestEndExpired_AlreadyClosed(t *testing.T) {
	f := newAuctionFixture(t)

	auctionID := uuid.New()
	now := time.Now()

	f.auctions.EXPECT().MarkEnded(gomock.Any(), auctionID, now).Return(false, nil)
	f.auctions.EXPECT().GetByID(gomock.Any(), auctionID).Return(&auction.Auction{
		ID:     auctionID,
		Status: auction.StatusCancelled,
	}, nil)

	result, err := f.service.EndExpired(context.Background(), auctionID, now)
	require.NoError(t, err)
	require.Equal(t, string(auction.StatusCancelled), result.Status)
	require.Nil(t, result.WinnerID)
}
