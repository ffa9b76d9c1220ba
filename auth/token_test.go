package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	req := require.New(t)
	manager := NewTokenManager("test-secret")

	token, issuedAt, err := manager.GenerateToken("user-123")
	req.NoError(err)
	req.False(issuedAt.IsZero())

	claims, err := manager.ValidateToken(token)
	req.NoError(err)
	req.Equal("user-123", claims.UserID)
	req.Equal("user-123", claims.Subject)
	req.Equal(issuer, claims.Issuer)
	req.WithinDuration(issuedAt.Add(CredentialLifetime), claims.ExpiresAt.Time, time.Second)
}

func TestTokenManager_Expired(t *testing.T) {
	req := require.New(t)
	manager := NewTokenManager("test-secret")

	// Given a token issued more than a lifetime ago
	manager.now = func() time.Time { return time.Now().Add(-2 * CredentialLifetime) }
	token, _, err := manager.GenerateToken("user-123")
	req.NoError(err)

	// When validating it now
	manager.now = time.Now
	_, err = manager.ValidateToken(token)

	// Then it is refused
	req.ErrorIs(err, jwt.ErrTokenExpired)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	req := require.New(t)

	token, _, err := NewTokenManager("secret-a").GenerateToken("user-123")
	req.NoError(err)

	_, err = NewTokenManager("secret-b").ValidateToken(token)
	req.ErrorIs(err, jwt.ErrTokenSignatureInvalid)
}

func TestTokenManager_RejectsNoneAlgorithm(t *testing.T) {
	req := require.New(t)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &CustomClaims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	req.NoError(err)

	_, err = NewTokenManager("test-secret").ValidateToken(token)
	req.Error(err)
}
