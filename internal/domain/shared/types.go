package shared

import "github.com/google/uuid"

// AuctionCloseResult represents the outcome of closing an expired auction
type AuctionCloseResult struct {
	AuctionID  uuid.UUID
	WinnerID   *uuid.UUID
	FinalPrice *float64
	Status     string
}
