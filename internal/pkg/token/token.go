// Package token signs and verifies the access tokens handed out at login.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avick-dev/bizmarket-service/internal/pkg/clock"
)

// ErrInvalidToken indicates an unparseable, expired, or tampered token.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the access token payload.
type Claims struct {
	UserID string `json:"user_id"`

	jwt.RegisteredClaims
}

// Manager issues and validates HS256-signed access tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	issuer string
	clock  clock.Clock
}

// NewManager creates a token manager.
func NewManager(secret string, ttl time.Duration, issuer string, clk clock.Clock) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		clock:  clk,
	}
}

// Issue signs an access token for the user.
func (m *Manager) Issue(userID string) (string, error) {
	now := m.clock.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Validate parses the token and returns its claims.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.clock.Now))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
