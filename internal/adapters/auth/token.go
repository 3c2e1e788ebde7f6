package auth

import (
	"fmt"

	"salvage-bidding-service/internal/domain/shared"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the token payload this service cares about: the platform auth
// service puts the bidder id in the standard subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenVerifier validates bearer tokens issued by the platform's auth
// service. Issuance, refresh and blacklisting live there; this side only
// verifies the HMAC signature and expiry.
type TokenVerifier struct {
	secret []byte
}

// NewTokenVerifier creates a new token verifier
func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

// Verify parses a bearer token and returns the bidder identity it carries
func (v *TokenVerifier) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", shared.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, shared.ErrUnauthorized
	}

	bidderID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid subject", shared.ErrUnauthorized)
	}

	return bidderID, nil
}
