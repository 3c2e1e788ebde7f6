package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"salvage-bidding-service/internal/domain/auction"
	"salvage-bidding-service/internal/domain/shared"

	"github.com/google/uuid"
)

// AuctionStore implements the auction store interface over Postgres
type AuctionStore struct {
	conn *Connection
}

// NewAuctionStore creates a new auction store
func NewAuctionStore(conn *Connection) *AuctionStore {
	return &AuctionStore{conn: conn}
}

const auctionColumns = `
	id, title, start_price, current_price, reserve_price, bid_increment,
	starts_at, ends_at, extend_minutes, status, created_at, updated_at
`

// GetByID retrieves an auction by ID
func (s *AuctionStore) GetByID(ctx context.Context, id uuid.UUID) (*auction.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE id = $1`

	record, err := scanAuction(s.conn.GetDB().QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrAuctionNotFound
		}
		return nil, fmt.Errorf("failed to get auction: %w", err)
	}

	return record, nil
}

// MarkEnded transitions an ACTIVE auction past its deadline to ENDED. The
// deadline re-check inside the WHERE clause loses gracefully to a concurrent
// anti-sniping extension.
func (s *AuctionStore) MarkEnded(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	query := `
		UPDATE auctions
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status = $4 AND ends_at IS NOT NULL AND ends_at <= $3
	`

	result, err := s.conn.GetDB().ExecContext(ctx, query, id, auction.StatusEnded, now, auction.StatusActive)
	if err != nil {
		return false, fmt.Errorf("failed to close auction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAuction(row rowScanner) (*auction.Auction, error) {
	var record auction.Auction
	err := row.Scan(
		&record.ID,
		&record.Title,
		&record.StartPrice,
		&record.CurrentPrice,
		&record.ReservePrice,
		&record.BidIncrement,
		&record.StartsAt,
		&record.EndsAt,
		&record.ExtendMinutes,
		&record.Status,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
