package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"salvage-bidding-service/internal/domain/shared"
	"salvage-bidding-service/internal/ports/inbound"
	"salvage-bidding-service/internal/ports/outbound"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const expirationsKey = "auction:expirations"

// AuctionCloser watches the deadline schedule and closes auctions whose time
// has passed. Deadlines live in a Redis sorted set keyed by auction id and
// scored by ends_at; an accepted bid that extends the deadline re-scores the
// entry, so a closer that fires early simply loses the conditional close and
// leaves the re-scored entry in place.
type AuctionCloser struct {
	redis       *redis.Client
	auctions    inbound.AuctionService
	broadcaster outbound.Broadcaster
	logger      zerolog.Logger
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
}

type AuctionCloserParams struct {
	RedisClient    *redis.Client
	AuctionService inbound.AuctionService
	Broadcaster    outbound.Broadcaster
	Logger         zerolog.Logger
}

// NewAuctionCloser creates a new auction closer
func NewAuctionCloser(params AuctionCloserParams) *AuctionCloser {
	ctx, cancel := context.WithCancel(context.Background())

	return &AuctionCloser{
		redis:       params.RedisClient,
		auctions:    params.AuctionService,
		broadcaster: params.Broadcaster,
		logger:      params.Logger.With().Str("component", "auction_closer").Logger(),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// ScheduleAuction adds an auction to the deadline schedule, or re-scores the
// existing entry when the deadline moved
func (c *AuctionCloser) ScheduleAuction(auctionID uuid.UUID, endTime time.Time) error {
	err := c.redis.ZAdd(c.ctx, expirationsKey, redis.Z{
		Score:  float64(endTime.Unix()),
		Member: auctionID.String(),
	}).Err()
	if err != nil {
		c.logger.Error().Err(err).Str("auction_id", auctionID.String()).Msg("Failed to schedule auction close")
		return fmt.Errorf("failed to schedule auction close: %w", err)
	}

	c.logger.Info().
		Str("auction_id", auctionID.String()).
		Time("ends_at", endTime).
		Msg("Auction close scheduled")
	return nil
}

// Start begins the closer loop
func (c *AuctionCloser) Start() {
	c.logger.Info().Msg("Starting auction closer")

	c.wg.Add(1)
	go c.closerLoop()
}

// Stop gracefully stops the closer
func (c *AuctionCloser) Stop() {
	c.logger.Info().Msg("Stopping auction closer")
	c.cancel()
	c.wg.Wait()
}

func (c *AuctionCloser) closerLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.checkDueAuctions()
		case <-c.ctx.Done():
			c.logger.Info().Msg("Closer loop stopped")
			return
		}
	}
}

// checkDueAuctions finds auctions whose scheduled deadline has passed
func (c *AuctionCloser) checkDueAuctions() {
	now := time.Now()

	due, err := c.redis.ZRangeByScore(c.ctx, expirationsKey, &redis.ZRangeBy{
		Min:   "0",
		Max:   strconv.FormatInt(now.Unix(), 10),
		Count: 10,
	}).Result()
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to read due auctions")
		return
	}

	for _, idStr := range due {
		auctionID, err := uuid.Parse(idStr)
		if err != nil {
			c.logger.Error().Err(err).Str("auction_id", idStr).Msg("Invalid auction ID in schedule")
			c.redis.ZRem(c.ctx, expirationsKey, idStr)
			continue
		}

		go c.closeAuction(auctionID, now)
	}
}

// closeAuction ends one due auction and broadcasts the result to its room
func (c *AuctionCloser) closeAuction(auctionID uuid.UUID, now time.Time) {
	result, err := c.auctions.EndExpired(c.ctx, auctionID, now)
	if err != nil {
		if errors.Is(err, shared.ErrAuctionNotDue) {
			// a late bid moved the deadline; the re-scored entry stays
			c.logger.Debug().Str("auction_id", auctionID.String()).Msg("Auction deadline moved, close deferred")
			return
		}
		if errors.Is(err, shared.ErrAuctionNotFound) {
			c.redis.ZRem(c.ctx, expirationsKey, auctionID.String())
			return
		}
		c.logger.Error().Err(err).Str("auction_id", auctionID.String()).Msg("Failed to close auction")
		return
	}

	c.redis.ZRem(c.ctx, expirationsKey, auctionID.String())

	eventData := map[string]interface{}{
		"auction_id": auctionID.String(),
		"status":     result.Status,
	}
	if result.WinnerID != nil {
		eventData["winner_id"] = result.WinnerID.String()
	}
	if result.FinalPrice != nil {
		eventData["final_price"] = *result.FinalPrice
	}

	event := outbound.Event{
		Type:      outbound.EventTypeAuctionEnded,
		AuctionID: auctionID,
		Data:      eventData,
		Timestamp: time.Now().Unix(),
	}

	if err := c.broadcaster.Publish(c.ctx, auctionID, event); err != nil {
		c.logger.Error().Err(err).Str("auction_id", auctionID.String()).Msg("Failed to broadcast auction end")
	}

	logEvent := c.logger.Info().Str("auction_id", auctionID.String()).Str("status", result.Status)
	if result.WinnerID != nil {
		logEvent = logEvent.Str("winner_id", result.WinnerID.String())
	}
	if result.FinalPrice != nil {
		logEvent = logEvent.Float64("final_price", *result.FinalPrice)
	}
	logEvent.Msg("Auction closed")
}
