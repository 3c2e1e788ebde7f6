package rest

import (
	"net/http"
	"strings"
	"time"

	"salvage-bidding-service/internal/adapters/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const bidderIDKey = "bidder_id"

// RequestLogger logs each request with timing
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("HTTP request")
	}
}

// AuthRequired rejects requests without a valid bearer token and attaches
// the caller's bidder identity to the request context
func AuthRequired(verifier *auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		bidderID, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(bidderIDKey, bidderID)
		c.Next()
	}
}

// currentBidderID returns the authenticated identity set by AuthRequired
func currentBidderID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(bidderIDKey)
	if !exists {
		return uuid.Nil, false
	}
	bidderID, ok := value.(uuid.UUID)
	return bidderID, ok
}
