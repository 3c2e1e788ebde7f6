package db

import (
	"context"
	"database/sql"
	"fmt"

	"salvage-bidding-service/internal/domain/bidder"
	"salvage-bidding-service/internal/domain/shared"

	"github.com/google/uuid"
)

// BidderStore implements read access to bidder identities. Registration and
// verification flows write these rows; the bidding core only reads them for
// the capability gate and display info.
type BidderStore struct {
	conn *Connection
}

// NewBidderStore creates a new bidder store
func NewBidderStore(conn *Connection) *BidderStore {
	return &BidderStore{conn: conn}
}

// GetByID retrieves a bidder by ID
func (s *BidderStore) GetByID(ctx context.Context, id uuid.UUID) (*bidder.Bidder, error) {
	query := `
		SELECT id, email, name, email_verified_at, mobile_verified_at,
		       reservation_proof_verified_at, kyc_status
		FROM users
		WHERE id = $1
	`

	var record bidder.Bidder
	err := s.conn.GetDB().QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&record.Email,
		&record.Name,
		&record.EmailVerifiedAt,
		&record.MobileVerifiedAt,
		&record.ReservationProofVerifiedAt,
		&record.KycStatus,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrBidderNotFound
		}
		return nil, fmt.Errorf("failed to get bidder: %w", err)
	}

	return &record, nil
}
