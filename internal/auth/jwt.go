// Package auth implement local authentication, access token issuing and logout.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// JwtIssuer is the issuer of every access token signed by this service
const JwtIssuer = "ats-backend"

// DefaultTokenTTL is used when no TTL is configured
const DefaultTokenTTL = 7 * 24 * time.Hour

// TokenService signs and validates HS256 access tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService. A non-positive ttl falls back to DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns lifetime of issued tokens
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// GenerateToken issues an access token for the user with the configured lifetime.
func (s *TokenService) GenerateToken(userID uuid.UUID) (string, error) {
	return s.GenerateTokenWithDuration(userID, s.ttl, JwtIssuer)
}

// GenerateTokenWithDuration issues an access token with explicit lifetime and issuer.
// Every token gets a random ID so it can be revoked on its own.
func (s *TokenService) GenerateTokenWithDuration(userID uuid.UUID, duration time.Duration, issuer string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses the token into *jwt.RegisteredClaims and checks signature and expiry.
// Issuer is left to the caller.
func (s *TokenService) ValidateToken(encoded string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(encoded, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
}
