package rest

import (
	"errors"
	"net/http"

	"salvage-bidding-service/internal/domain/shared"
)

// mapError translates a service error into an HTTP status and a
// caller-safe message. Unexpected errors collapse to a generic 500; the
// detail stays in the server log.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, shared.ErrAuctionNotFound):
		return http.StatusNotFound, shared.ErrAuctionNotFound.Error()
	case errors.Is(err, shared.ErrBidderNotFound):
		return http.StatusNotFound, shared.ErrBidderNotFound.Error()
	case errors.Is(err, shared.ErrAuctionNotActive):
		return http.StatusBadRequest, "Auction is not active for bidding"
	case errors.Is(err, shared.ErrBidTooLow),
		errors.Is(err, shared.ErrBidAmountInvalid),
		errors.Is(err, shared.ErrMaxBidBelowAmount):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, shared.ErrBiddingNotAllowed):
		return http.StatusForbidden, shared.ErrBiddingNotAllowed.Error()
	case errors.Is(err, shared.ErrUnauthorized):
		return http.StatusUnauthorized, shared.ErrUnauthorized.Error()
	case errors.Is(err, shared.ErrDatabaseConnection),
		errors.Is(err, shared.ErrDatabaseTransaction):
		return http.StatusServiceUnavailable, "service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
