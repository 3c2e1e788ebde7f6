package db

import (
	"salvage-bidding-service/internal/ports/outbound"
)

// StoreFactory creates the database-backed stores
type StoreFactory struct {
	conn *Connection
}

// NewStoreFactory creates a new store factory
func NewStoreFactory(conn *Connection) *StoreFactory {
	return &StoreFactory{conn: conn}
}

// GetAuctionStore returns the auction store
func (f *StoreFactory) GetAuctionStore() outbound.AuctionStore {
	return NewAuctionStore(f.conn)
}

// GetBidLedger returns the bid ledger
func (f *StoreFactory) GetBidLedger() outbound.BidLedger {
	return NewBidLedger(f.conn)
}

// GetBidderStore returns the bidder store
func (f *StoreFactory) GetBidderStore() outbound.BidderStore {
	return NewBidderStore(f.conn)
}
