package auth

import (
	"testing"
	"time"

	"salvage-bidding-service/internal/domain/shared"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, secret string, subject string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerify_ValidToken(t *testing.T) {
	verifier := NewTokenVerifier(testSecret)
	bidderID := uuid.New()

	tokenString := signToken(t, jwt.SigningMethodHS256, testSecret, bidderID.String(), time.Now().Add(1*time.Hour))

	got, err := verifier.Verify(tokenString)
	require.NoError(t, err)
	require.Equal(t, bidderID, got)
}

func TestVerify_Rejections(t *testing.T) {
	verifier := NewTokenVerifier(testSecret)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "wrong secret",
			token: signToken(t, jwt.SigningMethodHS256, "other-secret", uuid.New().String(), time.Now().Add(1*time.Hour)),
		},
		{
			name:  "expired",
			token: signToken(t, jwt.SigningMethodHS256, testSecret, uuid.New().String(), time.Now().Add(-1*time.Minute)),
		},
		{
			name:  "subject is not a uuid",
			token: signToken(t, jwt.SigningMethodHS256, testSecret, "someone", time.Now().Add(1*time.Hour)),
		},
		{
			name:  "garbage",
			token: "not.a.token",
		},
		{
			name:  "empty",
			token: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(tt.token)
			require.ErrorIs(t, err, shared.ErrUnauthorized)
		})
	}
}

func TestVerify_RejectsNonHMACAlgorithm(t *testing.T) {
	verifier := NewTokenVerifier(testSecret)

	// alg "none" must never pass
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
	})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = verifier.Verify(unsigned)
	require.ErrorIs(t, err, shared.ErrUnauthorized)
}
