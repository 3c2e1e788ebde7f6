package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"salvage-bidding-service/internal/adapters/auth"
	"salvage-bidding-service/internal/adapters/broadcaster"
	"salvage-bidding-service/internal/adapters/db"
	"salvage-bidding-service/internal/adapters/redis"
	"salvage-bidding-service/internal/adapters/rest"
	"salvage-bidding-service/internal/adapters/scheduler"
	"salvage-bidding-service/internal/adapters/ws"
	"salvage-bidding-service/internal/app"
	"salvage-bidding-service/internal/config"
	"salvage-bidding-service/internal/ports/outbound"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	initLogging(cfg)

	log.Info().Msg("Starting Salvage Bidding Service...")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbConn, err := db.NewConnection(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbConn.Close()

	log.Info().Msg("Database connection established")

	storeFactory := db.NewStoreFactory(dbConn)
	auctionStore := storeFactory.GetAuctionStore()
	bidLedger := storeFactory.GetBidLedger()
	bidderStore := storeFactory.GetBidderStore()

	log.Info().Msg("Database stores initialized")

	redisClient := redis.NewClient(cfg)
	if err := redis.PingRedis(redisClient); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	log.Info().Msg("Redis connection established")

	var eventBroadcaster outbound.Broadcaster
	switch cfg.Broadcast.Driver {
	case config.BroadcastRedis:
		eventBroadcaster = broadcaster.NewRedisBroadcaster(broadcaster.RedisBroadcasterParams{
			RedisClient: redisClient,
			Logger:      log.Logger,
		})
		log.Info().Msg("Redis broadcaster initialized")
	default:
		eventBroadcaster = broadcaster.NewHub(broadcaster.HubParams{
			Logger: log.Logger,
		})
		log.Info().Msg("In-process broadcaster initialized")
	}

	biddingService := app.NewBiddingService(app.BiddingServiceParams{
		Auctions:    auctionStore,
		Ledger:      bidLedger,
		Bidders:     bidderStore,
		Broadcaster: eventBroadcaster,
		Logger:      log.Logger,
	})
	auctionService := app.NewAuctionService(app.AuctionServiceParams{
		Auctions: auctionStore,
		Ledger:   bidLedger,
		Logger:   log.Logger,
	})

	log.Info().Msg("Business services initialized")

	auctionCloser := scheduler.NewAuctionCloser(scheduler.AuctionCloserParams{
		RedisClient:    redisClient,
		AuctionService: auctionService,
		Broadcaster:    eventBroadcaster,
		Logger:         log.Logger,
	})

	auctionCloser.Start()
	log.Info().Msg("Auction closer started")

	// Deadline extensions re-schedule the close through the bidding service
	biddingService.SetScheduler(auctionCloser)

	tokenVerifier := auth.NewTokenVerifier(cfg.Auth.JWTSecret)

	restServer := rest.NewServer(rest.ServerParams{
		Config: cfg,
		Router: rest.NewRouter(rest.RouterParams{
			BiddingService: biddingService,
			AuctionService: auctionService,
			Verifier:       tokenVerifier,
			Logger:         log.Logger,
		}),
		Logger: log.Logger,
	})

	wsServer := ws.NewServer(ws.ServerParams{
		Config:         cfg,
		BiddingService: biddingService,
		Broadcaster:    eventBroadcaster,
		Tokens:         tokenVerifier,
		Logger:         log.Logger,
	})

	go func() {
		if err := restServer.Start(); err != nil {
			log.Error().Err(err).Msg("Failed to start REST server")
			cancel()
		}
	}()

	go func() {
		if err := wsServer.Start(); err != nil {
			log.Error().Err(err).Msg("Failed to start WebSocket server")
			cancel()
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case <-ctx.Done():
		log.Info().Msg("Context cancelled")
	}

	log.Info().Msg("Starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	auctionCloser.Stop()
	log.Info().Msg("Auction closer stopped")

	if err := wsServer.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error stopping WebSocket server")
	}

	if err := restServer.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error stopping REST server")
	}

	if err := eventBroadcaster.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing broadcaster")
	}

	log.Info().Msg("Graceful shutdown completed")
}

func initLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Logging.Format == "json" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		// Console format for development
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	zerolog.DefaultContextLogger = &log.Logger
}
