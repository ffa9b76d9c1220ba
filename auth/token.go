package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CredentialLifetime is how long an issued token stays valid. The credential
// sweeper expires its bookkeeping after the same duration.
const CredentialLifetime = time.Hour

const issuer = "candidate-notes"

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenManager signs and validates credentials with a shared secret.
type TokenManager struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), lifetime: CredentialLifetime, now: time.Now}
}

// GenerateToken creates a signed JWT for a specific user.
// It returns the token and the instant it was issued at.
func (m *TokenManager) GenerateToken(userID string) (string, time.Time, error) {
	issuedAt := m.now()
	claims := &CustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(m.lifetime)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    issuer,
		},
	}

	// Create the token using the HS256 algorithm (HMAC with SHA256).
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, issuedAt, nil
}

// ValidateToken parses and validates the signature and expiration of a JWT string.
func (m *TokenManager) ValidateToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Reject anything that is not HMAC, "none" included
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired(), jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, err
	}

	// Verify if the token is valid and extract the claims.
	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
