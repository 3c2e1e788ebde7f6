package bidder

import (
	"time"

	"github.com/google/uuid"
)

// KycStatus represents the outcome of the bidder's KYC review
type KycStatus string

const (
	KycPending  KycStatus = "PENDING"
	KycApproved KycStatus = "APPROVED"
	KycRejected KycStatus = "REJECTED"
)

// Bidder is the slice of a platform user the bidding core cares about: the
// verification milestones and KYC state that gate bid submission. Account
// registration and the verification flows themselves live outside this
// service.
type Bidder struct {
	ID                         uuid.UUID  `json:"id"`
	Email                      string     `json:"email"`
	Name                       string     `json:"name"`
	EmailVerifiedAt            *time.Time `json:"email_verified_at,omitempty"`
	MobileVerifiedAt           *time.Time `json:"mobile_verified_at,omitempty"`
	ReservationProofVerifiedAt *time.Time `json:"reservation_proof_verified_at,omitempty"`
	KycStatus                  KycStatus  `json:"kyc_status"`
}

// IsAccountActive returns true once email, mobile and reservation proof are
// all verified
func (b *Bidder) IsAccountActive() bool {
	return b.EmailVerifiedAt != nil && b.MobileVerifiedAt != nil && b.ReservationProofVerifiedAt != nil
}

// CanBid reports whether this identity may place bids: a fully verified
// account with an approved KYC review
func (b *Bidder) CanBid() bool {
	return b.IsAccountActive() && b.KycStatus == KycApproved
}
