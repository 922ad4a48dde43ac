package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carried by an access token. The token is self-contained: there is
// no persisted session list, a token stays valid until its expiry.
type Claims struct {
	Username    string `json:"username"`
	Role        string `json:"role"`
	IsSuperuser bool   `json:"is_superuser"`
	jwt.RegisteredClaims
}

// Manager mints and parses HS256 access tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, expiryHours int) *Manager {
	if expiryHours <= 0 {
		expiryHours = 24
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    time.Duration(expiryHours) * time.Hour,
	}
}

func (m *Manager) Mint(userID uuid.UUID, username, role string, isSuperuser bool) (string, error) {
	now := time.Now()
	claims := Claims{
		Username:    username,
		Role:        role,
		IsSuperuser: isSuperuser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func (m *Manager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
