package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"salvage-bidding-service/internal/domain/auction"
	"salvage-bidding-service/internal/domain/bid"
	"salvage-bidding-service/internal/domain/shared"
	"salvage-bidding-service/internal/ports/outbound"

	"github.com/google/uuid"
)

// BidLedger implements the bid ledger interface over Postgres. The ledger
// holds one live row per (auction_id, bidder_id), upserted in place on every
// accepted raise.
type BidLedger struct {
	conn *Connection
}

// NewBidLedger creates a new bid ledger
func NewBidLedger(conn *Connection) *BidLedger {
	return &BidLedger{conn: conn}
}

/*
PlaceBid commits an accepted bid as one atomic unit:
 1. A single conditional write advances the auction price, and the deadline
    when the bid lands inside the anti-sniping window. The WHERE clause
    (status ACTIVE, current_price still below the amount) makes this write
    the sole arbiter of concurrent submissions; zero rows affected means the
    bid lost the race or the auction closed mid-flight.
 2. The (auction_id, bidder_id) row is upserted with the new amount.

The extension is computed in SQL off the row's committed ends_at, so a losing
read never writes a stale deadline: the new deadline is always the previous
one plus extend_minutes.
*/
func (l *BidLedger) PlaceBid(ctx context.Context, newBid *bid.Bid, now time.Time) (*outbound.Placement, error) {
	placement := &outbound.Placement{Bid: *newBid}

	err := l.conn.ExecuteTransaction(func(tx *sql.Tx) error {
		advanceQuery := `
			UPDATE auctions
			SET current_price = $2,
			    ends_at = CASE
			        WHEN extend_minutes > 0 AND ends_at IS NOT NULL
			             AND ends_at <= $3::timestamptz + (extend_minutes * interval '1 minute')
			        THEN ends_at + (extend_minutes * interval '1 minute')
			        ELSE ends_at
			    END,
			    updated_at = $3
			WHERE id = $1 AND status = $4 AND current_price < $2
			RETURNING current_price, ends_at
		`

		err := tx.QueryRowContext(ctx, advanceQuery,
			newBid.AuctionID,
			newBid.Amount,
			now,
			auction.StatusActive,
		).Scan(&placement.CurrentPrice, &placement.EndsAt)

		if err == sql.ErrNoRows {
			return l.rejectStale(ctx, tx, newBid)
		}
		if err != nil {
			return fmt.Errorf("failed to advance auction price: %w", err)
		}

		upsertQuery := `
			INSERT INTO bids (id, auction_id, bidder_id, amount, max_bid, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
			ON CONFLICT (auction_id, bidder_id) DO UPDATE
			SET amount = EXCLUDED.amount,
			    max_bid = COALESCE(EXCLUDED.max_bid, bids.max_bid),
			    updated_at = EXCLUDED.updated_at
			RETURNING id, created_at, updated_at
		`

		err = tx.QueryRowContext(ctx, upsertQuery,
			newBid.ID,
			newBid.AuctionID,
			newBid.BidderID,
			newBid.Amount,
			newBid.MaxBid,
			now,
		).Scan(&placement.Bid.ID, &placement.Bid.CreatedAt, &placement.Bid.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to upsert bid: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return placement, nil
}

// rejectStale maps a lost conditional write to a rejection off the auction's
// committed state. The losing bidder sees the fresh current price, never a
// silent overwrite.
func (l *BidLedger) rejectStale(ctx context.Context, tx *sql.Tx, newBid *bid.Bid) error {
	var status auction.Status
	var currentPrice float64

	err := tx.QueryRowContext(ctx,
		`SELECT status, current_price FROM auctions WHERE id = $1`,
		newBid.AuctionID,
	).Scan(&status, &currentPrice)
	if err != nil {
		if err == sql.ErrNoRows {
			return shared.ErrAuctionNotFound
		}
		return fmt.Errorf("failed to re-read auction after conflict: %w", err)
	}

	if status != auction.StatusActive {
		return shared.ErrAuctionNotActive
	}

	return fmt.Errorf("%w (current price %.2f)", shared.ErrBidTooLow, currentPrice)
}

// ListByAuction retrieves the live bids for an auction joined with bidder
// display info, newest first. A limit of 0 returns all rows.
func (l *BidLedger) ListByAuction(ctx context.Context, auctionID uuid.UUID, limit int) ([]bid.WithBidder, error) {
	query := `
		SELECT b.id, b.auction_id, b.bidder_id, b.amount, b.max_bid, b.created_at, b.updated_at,
		       u.id, u.email, u.name
		FROM bids b
		JOIN users u ON u.id = b.bidder_id
		WHERE b.auction_id = $1
		ORDER BY b.created_at DESC
	`
	args := []interface{}{auctionID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := l.conn.GetDB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}
	defer rows.Close()

	var bids []bid.WithBidder
	for rows.Next() {
		var row bid.WithBidder
		err := rows.Scan(
			&row.ID,
			&row.AuctionID,
			&row.BidderID,
			&row.Amount,
			&row.MaxBid,
			&row.CreatedAt,
			&row.UpdatedAt,
			&row.Bidder.ID,
			&row.Bidder.Email,
			&row.Bidder.Name,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bid: %w", err)
		}
		bids = append(bids, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bids: %w", err)
	}

	return bids, nil
}

// ListByBidder retrieves a bidder's live bids joined with their auctions,
// newest first
func (l *BidLedger) ListByBidder(ctx context.Context, bidderID uuid.UUID) ([]bid.WithAuction, error) {
	query := `
		SELECT b.id, b.auction_id, b.bidder_id, b.amount, b.max_bid, b.created_at, b.updated_at,
		       a.id, a.title, a.start_price, a.current_price, a.reserve_price, a.bid_increment,
		       a.starts_at, a.ends_at, a.extend_minutes, a.status, a.created_at, a.updated_at
		FROM bids b
		JOIN auctions a ON a.id = b.auction_id
		WHERE b.bidder_id = $1
		ORDER BY b.created_at DESC
	`

	rows, err := l.conn.GetDB().QueryContext(ctx, query, bidderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bidder history: %w", err)
	}
	defer rows.Close()

	var bids []bid.WithAuction
	for rows.Next() {
		var row bid.WithAuction
		err := rows.Scan(
			&row.ID,
			&row.AuctionID,
			&row.BidderID,
			&row.Amount,
			&row.MaxBid,
			&row.CreatedAt,
			&row.UpdatedAt,
			&row.Auction.ID,
			&row.Auction.Title,
			&row.Auction.StartPrice,
			&row.Auction.CurrentPrice,
			&row.Auction.ReservePrice,
			&row.Auction.BidIncrement,
			&row.Auction.StartsAt,
			&row.Auction.EndsAt,
			&row.Auction.ExtendMinutes,
			&row.Auction.Status,
			&row.Auction.CreatedAt,
			&row.Auction.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bid: %w", err)
		}
		bids = append(bids, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bidder history: %w", err)
	}

	return bids, nil
}

// GetHighest retrieves the standing high bid for an auction
func (l *BidLedger) GetHighest(ctx context.Context, auctionID uuid.UUID) (*bid.Bid, error) {
	query := `
		SELECT id, auction_id, bidder_id, amount, max_bid, created_at, updated_at
		FROM bids
		WHERE auction_id = $1
		ORDER BY amount DESC, updated_at ASC
		LIMIT 1
	`

	var row bid.Bid
	err := l.conn.GetDB().QueryRowContext(ctx, query, auctionID).Scan(
		&row.ID,
		&row.AuctionID,
		&row.BidderID,
		&row.Amount,
		&row.MaxBid,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrNoBidsFound
		}
		return nil, fmt.Errorf("failed to get highest bid: %w", err)
	}

	return &row, nil
}
