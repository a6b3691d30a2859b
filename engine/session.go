package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims identifies the user a session token was issued to.
type SessionClaims struct {
	UserID string `json:"userID"`
	jwt.RegisteredClaims
}

// IssueSession signs an HS256 token for userID, valid for ttl.
func IssueSession(userID, secret string, ttl time.Duration) (string, error) {
	claims := &SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("engine: sign session token: %w", err)
	}
	return signed, nil
}

// ParseSession validates tokenString against secret and returns the user
// ID it was issued to.
func ParseSession(tokenString, secret string) (string, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("engine: unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("engine: parse session token: %w", err)
	}
	if !token.Valid {
		return "", errors.New("engine: session token not valid")
	}
	return claims.UserID, nil
}
