package auction

import (
	"testing"
	"time"

	"salvage-bidding-service/internal/domain/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func activeAuction(currentPrice float64, endsAt *time.Time, extendMinutes int) *Auction {
	return &Auction{
		ID:            uuid.New(),
		Title:         "2019 Ford F-150 (flood damage)",
		StartPrice:    1000,
		CurrentPrice:  currentPrice,
		BidIncrement:  100,
		EndsAt:        endsAt,
		ExtendMinutes: extendMinutes,
		Status:        StatusActive,
	}
}

func ptr(f float64) *float64 { return &f }

func TestDecideBid_Preconditions(t *testing.T) {
	now := time.Now()
	endsAt := now.Add(1 * time.Hour)

	tests := []struct {
		name    string
		status  Status
		amount  float64
		maxBid  *float64
		wantErr error
	}{
		{
			name:    "draft auction rejects bids",
			status:  StatusDraft,
			amount:  1500,
			wantErr: shared.ErrAuctionNotActive,
		},
		{
			name:    "ended auction rejects bids",
			status:  StatusEnded,
			amount:  1500,
			wantErr: shared.ErrAuctionNotActive,
		},
		{
			name:    "cancelled auction rejects bids",
			status:  StatusCancelled,
			amount:  1500,
			wantErr: shared.ErrAuctionNotActive,
		},
		{
			name:    "zero amount rejected",
			status:  StatusActive,
			amount:  0,
			wantErr: shared.ErrBidAmountInvalid,
		},
		{
			name:    "negative amount rejected",
			status:  StatusActive,
			amount:  -50,
			wantErr: shared.ErrBidAmountInvalid,
		},
		{
			name:    "amount below current price rejected",
			status:  StatusActive,
			amount:  900,
			wantErr: shared.ErrBidTooLow,
		},
		{
			name:    "amount equal to current price rejected",
			status:  StatusActive,
			amount:  1000,
			wantErr: shared.ErrBidTooLow,
		},
		{
			name:    "max bid below amount rejected",
			status:  StatusActive,
			amount:  1500,
			maxBid:  ptr(1200),
			wantErr: shared.ErrMaxBidBelowAmount,
		},
		{
			name:   "max bid equal to amount accepted",
			status: StatusActive,
			amount: 1500,
			maxBid: ptr(1500),
		},
		{
			name:   "valid raise accepted",
			status: StatusActive,
			amount: 1001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := activeAuction(1000, &endsAt, 5)
			a.Status = tt.status

			decision, err := a.DecideBid(tt.amount, tt.maxBid, now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, decision)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.amount, decision.NewPrice)
		})
	}
}

func TestDecideBid_TooLowCarriesCurrentPrice(t *testing.T) {
	endsAt := time.Now().Add(1 * time.Hour)
	a := activeAuction(2350.50, &endsAt, 5)

	_, err := a.DecideBid(2000, nil, time.Now())
	require.ErrorIs(t, err, shared.ErrBidTooLow)
	require.Contains(t, err.Error(), "2350.50")
}

func TestDecideBid_NoExtensionOutsideWindow(t *testing.T) {
	now := time.Now()
	endsAt := now.Add(30 * time.Minute)
	a := activeAuction(1000, &endsAt, 5)

	decision, err := a.DecideBid(1100, nil, now)
	require.NoError(t, err)
	require.Nil(t, decision.NewEndsAt)
}

func TestDecideBid_ExtensionInsideWindow(t *testing.T) {
	now := time.Now()
	endsAt := now.Add(3 * time.Minute)
	a := activeAuction(1000, &endsAt, 5)

	decision, err := a.DecideBid(1100, nil, now)
	require.NoError(t, err)
	require.NotNil(t, decision.NewEndsAt)
	// Extension is from the old deadline, not from now
	require.Equal(t, endsAt.Add(5*time.Minute), *decision.NewEndsAt)
}

func TestDecideBid_ExtensionAtExactBoundary(t *testing.T) {
	now := time.Now()
	endsAt := now.Add(5 * time.Minute)
	a := activeAuction(1000, &endsAt, 5)

	decision, err := a.DecideBid(1100, nil, now)
	require.NoError(t, err)
	require.NotNil(t, decision.NewEndsAt)
	require.Equal(t, endsAt.Add(5*time.Minute), *decision.NewEndsAt)
}

func TestDecideBid_ExtensionsCompound(t *testing.T) {
	// A run of late bids keeps pushing the deadline: each extension is
	// computed from the already-extended deadline.
	start := time.Now()
	endsAt := start.Add(3 * time.Minute)
	a := activeAuction(1000, &endsAt, 5)

	decision, err := a.DecideBid(1100, nil, start)
	require.NoError(t, err)
	require.NotNil(t, decision.NewEndsAt)
	require.Equal(t, endsAt.Add(5*time.Minute), *decision.NewEndsAt)
	a.ApplyDecision(decision, start)

	// Second bid four minutes later, again inside the window of the new
	// deadline (start+8m).
	second := start.Add(4 * time.Minute)
	decision, err = a.DecideBid(1200, nil, second)
	require.NoError(t, err)
	require.NotNil(t, decision.NewEndsAt)
	require.Equal(t, endsAt.Add(10*time.Minute), *decision.NewEndsAt)
}

func TestDecideBid_ZeroExtendMinutesNeverExtends(t *testing.T) {
	now := time.Now()
	endsAt := now.Add(30 * time.Second)
	a := activeAuction(1000, &endsAt, 0)

	decision, err := a.DecideBid(1100, nil, now)
	require.NoError(t, err)
	require.Nil(t, decision.NewEndsAt)
}

func TestDecideBid_NoDeadlineNeverExtends(t *testing.T) {
	a := activeAuction(1000, nil, 5)

	decision, err := a.DecideBid(1100, nil, time.Now())
	require.NoError(t, err)
	require.Nil(t, decision.NewEndsAt)
}

func TestApplyDecision(t *testing.T) {
	now := time.Now()
	endsAt := now.Add(2 * time.Minute)
	a := activeAuction(1000, &endsAt, 5)

	decision, err := a.DecideBid(1250, nil, now)
	require.NoError(t, err)

	a.ApplyDecision(decision, now)
	require.Equal(t, 1250.0, a.CurrentPrice)
	require.Equal(t, endsAt.Add(5*time.Minute), *a.EndsAt)
	require.Equal(t, now, a.UpdatedAt)
}
