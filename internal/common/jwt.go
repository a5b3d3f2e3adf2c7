package common

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the identity data carried by a session token. Tokens are
// issued by the marketplace auth service; the chat side only validates them.
type Claims struct {
	ViewerID    string `json:"viewer_id"`
	DisplayName string `json:"display_name,omitempty"`
	jwt.RegisteredClaims
}

// ErrEmptySecret is returned when no signing key is configured. An empty
// HMAC key would let anyone mint tokens.
var ErrEmptySecret = errors.New("jwt secret is empty")

// TokenValidator checks HS256 session tokens.
type TokenValidator struct {
	secret []byte
}

func NewTokenValidator(secret string) *TokenValidator {
	return &TokenValidator{secret: []byte(secret)}
}

// GenerateToken is used by tests and local tooling.
func (v *TokenValidator) GenerateToken(viewerID, displayName string, ttl time.Duration) (string, error) {
	if len(v.secret) == 0 {
		return "", ErrEmptySecret
	}
	claims := &Claims{
		ViewerID:    viewerID,
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "gomarket",
			Subject:   viewerID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}

func (v *TokenValidator) Validate(tokenString string) (*Claims, error) {
	if len(v.secret) == 0 {
		return nil, ErrEmptySecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ViewerID == "" {
		return nil, errors.New("token has no viewer id")
	}
	return claims, nil
}
