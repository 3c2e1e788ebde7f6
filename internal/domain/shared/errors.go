package shared

import "errors"

// Domain-specific errors
var (
	// Auction errors
	ErrAuctionNotFound  = errors.New("auction not found")
	ErrAuctionNotActive = errors.New("auction is not active for bidding")
	ErrAuctionNotDue    = errors.New("auction deadline has not passed")

	// Bid errors
	ErrBidTooLow         = errors.New("bid must be greater than current price")
	ErrBidAmountInvalid  = errors.New("bid amount must be greater than 0")
	ErrMaxBidBelowAmount = errors.New("maxBid must be >= amount")
	ErrNoBidsFound       = errors.New("no bids found")

	// Bidder errors
	ErrBidderNotFound    = errors.New("bidder not found")
	ErrBiddingNotAllowed = errors.New("bidding is not enabled: complete account verification (email, mobile, reservation proof) and KYC approval")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")

	// Database errors
	ErrDatabaseConnection  = errors.New("database connection failed")
	ErrDatabaseTransaction = errors.New("database transaction failed")

	// WebSocket message validation errors
	ErrMessageTypeRequired = errors.New("message type is required")
	ErrAuctionIDRequired   = errors.New("auction_id is required")
	ErrInvalidAmount       = errors.New("valid amount is required")
	ErrUnknownMessageType  = errors.New("unknown message type")

	// Broadcasting errors
	ErrClientEventChannelNotFound = errors.New("client event channel not found")
)
